package boxsum

import (
	"sync"

	"github.com/cwbudde/algo-boxsum/boxsum/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

var (
	kernelImpl     *registry.OpEntry
	kernelInitOnce sync.Once
)

func initKernel() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("boxsum: no kernel registered (missing generic fallback?)")
	}

	if entry.Prefix == nil || entry.Interior == nil {
		panic("boxsum: selected kernel " + entry.Name + " is incomplete")
	}

	kernelImpl = entry
}

func activeKernel() *registry.OpEntry {
	kernelInitOnce.Do(initKernel)
	return kernelImpl
}

// ActiveKernel returns the name of the kernel used by [Evaluate] and
// [PrefixSum] on this machine.
func ActiveKernel() string {
	return activeKernel().Name
}

// Kernels returns the names of all registered kernels, highest priority first.
func Kernels() []string {
	entries := registry.Global.ListEntries()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}
