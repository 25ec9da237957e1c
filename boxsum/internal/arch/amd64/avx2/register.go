//go:build amd64 && !purego

// Package avx2 registers the lane-group box-sum kernels for AVX2-capable CPUs.
package avx2

import (
	"github.com/cwbudde/algo-boxsum/boxsum/internal/arch/lanes"
	"github.com/cwbudde/algo-boxsum/boxsum/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the 16-lane kernels at the AVX2 level. The block layout
// (two 8-lane halves of 16-bit scans, 32-bit interior differences) mirrors
// the 256-bit register split.
//
// Priority: 20 (preferred over generic when available)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,
		Prefix:    lanes.Prefix,
		Interior:  lanes.Interior,
	})
}
