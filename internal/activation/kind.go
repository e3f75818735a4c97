package activation

import (
	"fmt"
	"strings"

	"github.com/born-ml/dnninfer/internal/parallel"
)

// Kind selects a GELU kernel.
type Kind int

// Available GELU kernels.
const (
	Exp    Kind = iota // single-precision exponential form (default)
	Tanh               // direct tanh
	Exp64              // double-precision exponential form
	Vector             // lane-blocked exponential form
)

// String returns the kernel name accepted by ParseKind.
func (k Kind) String() string {
	switch k {
	case Exp:
		return "exp"
	case Tanh:
		return "tanh"
	case Exp64:
		return "exp64"
	case Vector:
		return "vector"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Valid reports whether k names a known kernel.
func (k Kind) Valid() bool {
	return k >= Exp && k <= Vector
}

// Kinds lists every kernel.
func Kinds() []Kind {
	return []Kind{Exp, Tanh, Exp64, Vector}
}

// ParseKind parses a kernel name as returned by Kind.String.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown GELU kernel %q (want one of exp, tanh, exp64, vector)", s)
}

// Apply runs the kernel selected by k over data in place.
func Apply(k Kind, data []float32, cfg parallel.Config) error {
	switch k {
	case Exp:
		GELUExp(data, cfg)
	case Tanh:
		GELUTanh(data, cfg)
	case Exp64:
		GELUExp64(data, cfg)
	case Vector:
		GELUVector(data, cfg)
	default:
		return fmt.Errorf("apply %v: unknown GELU kernel", k)
	}
	return nil
}
