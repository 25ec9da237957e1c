//go:build arm64 && !purego

package boxsum

import (
	_ "github.com/cwbudde/algo-boxsum/boxsum/internal/arch/arm64/neon"
	_ "github.com/cwbudde/algo-boxsum/boxsum/internal/arch/generic"
	_ "github.com/cwbudde/algo-boxsum/boxsum/internal/arch/registry"
)
