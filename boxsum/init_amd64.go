//go:build amd64 && !purego

package boxsum

import (
	_ "github.com/cwbudde/algo-boxsum/boxsum/internal/arch/amd64/avx2" // register AVX2 backend
	_ "github.com/cwbudde/algo-boxsum/boxsum/internal/arch/generic"    // register generic backend
	_ "github.com/cwbudde/algo-boxsum/boxsum/internal/arch/registry"   // initialize backend registry
)
