package pcaplot

import (
	"errors"
	"fmt"
)

// Error kinds reported by the assemblers. All errors are synchronous and
// final: nothing here is retried, and no partial chart is returned alongside
// an error.
//
// Match with errors.Is:
//
//	chart, err := pcaplot.ComponentScatter(res, dep, 1, 2, pcaplot.ScatterConfig{})
//	if errors.Is(err, pcaplot.ErrIndexOutOfRange) {
//	    // asked for a component the result does not have
//	}
var (
	// ErrMissingParameter reports a required argument that was not supplied.
	// The wrapped message names the specific parameter.
	ErrMissingParameter = errors.New("pcaplot: missing required parameter")

	// ErrInsufficientData reports fewer components or observations than an
	// operation requires.
	ErrInsufficientData = errors.New("pcaplot: insufficient data")

	// ErrIndexOutOfRange reports a 1-based component index beyond the
	// available columns of the score matrix.
	ErrIndexOutOfRange = errors.New("pcaplot: component index out of range")

	// ErrLengthMismatch reports a dependent-variable vector whose length
	// does not match the observation count. Alignment between observations
	// and the dependent variable is positional, so a silent mismatch would
	// color points with the wrong values.
	ErrLengthMismatch = errors.New("pcaplot: length mismatch")
)

// missingParam wraps ErrMissingParameter with the parameter name, so the
// caller learns exactly which argument was absent.
func missingParam(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingParameter, name)
}
