//go:build (!amd64 && !arm64) || purego

package boxsum

import (
	_ "github.com/cwbudde/algo-boxsum/boxsum/internal/arch/generic"
	_ "github.com/cwbudde/algo-boxsum/boxsum/internal/arch/registry"
)
