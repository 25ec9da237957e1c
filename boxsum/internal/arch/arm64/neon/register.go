//go:build arm64 && !purego

// Package neon registers the lane-group box-sum kernels for ARM NEON.
package neon

import (
	"github.com/cwbudde/algo-boxsum/boxsum/internal/arch/lanes"
	"github.com/cwbudde/algo-boxsum/boxsum/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,
		Prefix:    lanes.Prefix,
		Interior:  lanes.Interior,
	})
}
