package generic

import (
	"github.com/cwbudde/algo-boxsum/boxsum/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the pure Go scalar kernels. They are the fallback when no
// lane backend is supported or when ForceGeneric is set.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Prefix:    Prefix,
		Interior:  Interior,
	})
}
