package boxsum

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-boxsum/boxsum/internal/arch/generic"
	"github.com/cwbudde/algo-boxsum/boxsum/internal/arch/registry"
)

// Errors returned by NewFilter.
var (
	ErrUnknownKernel      = errors.New("boxsum: unknown kernel")
	ErrConflictingOptions = errors.New("boxsum: conflicting options")
)

// ScalarReferenceName is reported by [Filter.Kernel] for filters built with
// [WithScalarReference].
const ScalarReferenceName = "scalar-reference"

type config struct {
	kernel   string
	scalar   bool
	capacity int
}

// Option configures a Filter.
type Option func(*config)

// WithKernel pins the filter to the named kernel instead of the one selected
// for this CPU. See [Kernels] for the registered names.
func WithKernel(name string) Option {
	return func(cfg *config) {
		cfg.kernel = name
	}
}

// WithScalarReference makes the filter use [EvaluateScalar].
func WithScalarReference() Option {
	return func(cfg *config) {
		cfg.scalar = true
	}
}

// WithCapacity pre-sizes the filter's scratch for inputs of n samples.
func WithCapacity(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.capacity = n
		}
	}
}

// Filter evaluates box sums with a fixed radius and keeps its prefix scratch
// between calls. A Filter is not safe for concurrent use.
type Filter struct {
	radius uint8
	scalar bool
	kernel *registry.OpEntry
	prefix []uint32
}

// NewFilter returns a Filter for the given radius.
func NewFilter(radius uint8, opts ...Option) (*Filter, error) {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.scalar && cfg.kernel != "" {
		return nil, fmt.Errorf("%w: kernel %q with scalar reference", ErrConflictingOptions, cfg.kernel)
	}

	f := &Filter{radius: radius, scalar: cfg.scalar}

	if cfg.capacity > 0 {
		f.prefix = make([]uint32, 0, cfg.capacity)
	}

	if !f.scalar {
		if cfg.kernel == "" {
			f.kernel = activeKernel()
		} else {
			f.kernel = registry.Global.Find(cfg.kernel)
			if f.kernel == nil {
				return nil, fmt.Errorf("%w: %q", ErrUnknownKernel, cfg.kernel)
			}
		}
	}

	return f, nil
}

// Radius returns the filter radius.
func (f *Filter) Radius() uint8 {
	return f.radius
}

// Kernel returns the name of the kernel the filter runs.
func (f *Filter) Kernel() string {
	if f.scalar {
		return ScalarReferenceName
	}
	return f.kernel.Name
}

// Process returns the box sums of input, reusing out when its capacity allows.
func (f *Filter) Process(input []uint8, out []uint16) []uint16 {
	if f.scalar {
		return EvaluateScalar(input, f.radius, out)
	}

	n := len(input)
	out = resize(out, n)
	if n == 0 {
		return out
	}

	f.prefix = resize(f.prefix, n)
	f.kernel.Prefix(f.prefix, input)
	evaluateRegions(f.kernel.Interior, f.prefix, int(f.radius), out)

	return out
}

// Means is [Means] computed with the filter's radius and kernel. Filters built
// with [WithScalarReference] build their prefix with the generic kernel.
func (f *Filter) Means(input []uint8, dst []float64) []float64 {
	n := len(input)
	dst = resize(dst, n)
	if n == 0 {
		return dst
	}

	f.prefix = resize(f.prefix, n)
	if f.scalar {
		generic.Prefix(f.prefix, input)
	} else {
		f.kernel.Prefix(f.prefix, input)
	}

	return meansFromPrefix(dst, f.prefix, int(f.radius))
}
