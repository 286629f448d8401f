package sim

import (
	"fmt"
	"math"
)

// Kernel scores the collision propensity between two particle masses.
// Implementations must be symmetric (K(a,b) == K(b,a)) and nonnegative for
// all positive integer masses; evaluation must stay side-effect free since
// it runs directly inside the O(S) loops in rateindex.go and sampler.go.
type Kernel interface {
	Eval(a, b int) float64
}

// ConstantKernel implements K(a,b) = 1 for all masses.
type ConstantKernel struct{}

func (ConstantKernel) Eval(_, _ int) float64 { return 1 }

// MultiplicativeKernel implements K(a,b) = a*b / C for a fixed
// normalization constant C.
type MultiplicativeKernel struct {
	C float64
}

func (k MultiplicativeKernel) Eval(a, b int) float64 {
	return float64(a) * float64(b) / k.C
}

// BallisticKernel implements K(a,b) = (a^(1/3)+b^(1/3))^2 * (1/a + 1/b)^(1/2),
// the geometric-cross-section-times-relative-velocity kernel for ballistic
// aggregation.
type BallisticKernel struct{}

func (BallisticKernel) Eval(a, b int) float64 {
	fa, fb := float64(a), float64(b)
	cross := math.Cbrt(fa) + math.Cbrt(fb)
	return cross * cross * math.Sqrt(1/fa+1/fb)
}

// BrownianKernel implements K(a,b) = (a/b)^alpha + (b/a)^alpha for a fixed
// alpha in (0,1), the free-molecular/Brownian coagulation kernel.
type BrownianKernel struct {
	Alpha float64
}

func (k BrownianKernel) Eval(a, b int) float64 {
	fa, fb := float64(a), float64(b)
	return math.Pow(fa/fb, k.Alpha) + math.Pow(fb/fa, k.Alpha)
}

// KernelParams carries the per-variant parameters needed to construct a
// Kernel via NewKernel. Only the fields relevant to the selected variant
// are read.
type KernelParams struct {
	// MultiplicativeC is the normalization constant for "multiplicative".
	MultiplicativeC float64
	// BrownianAlpha is the exponent for "brownian", must lie in (0,1).
	BrownianAlpha float64
}

// NewKernel builds a Kernel by name. Valid names: "constant",
// "multiplicative", "ballistic", "brownian". Returns an error for an
// unrecognized name or an out-of-range parameter (spec error kind:
// bad-input, surfaced to the caller — never retried internally).
func NewKernel(name string, params KernelParams) (Kernel, error) {
	switch name {
	case "constant":
		return ConstantKernel{}, nil
	case "multiplicative":
		c := params.MultiplicativeC
		if c == 0 {
			c = 1e5
		}
		return MultiplicativeKernel{C: c}, nil
	case "ballistic":
		return BallisticKernel{}, nil
	case "brownian":
		if params.BrownianAlpha <= 0 || params.BrownianAlpha >= 1 {
			return nil, fmt.Errorf("sim: brownian kernel alpha must lie in (0,1), got %v", params.BrownianAlpha)
		}
		return BrownianKernel{Alpha: params.BrownianAlpha}, nil
	default:
		return nil, fmt.Errorf("sim: unknown kernel type %q", name)
	}
}
