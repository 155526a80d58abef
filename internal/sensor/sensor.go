// Package sensor decodes raw tracker packages into workout records.
package sensor

import (
	"errors"
	"fmt"

	"github.com/claude/fittrack/internal/training"
)

// ErrUnsupportedType reports a workout type tag outside the recognized set.
var ErrUnsupportedType = errors.New("workout type not supported")

// Package is one raw reading from the tracker: a short workout type tag and
// the positional numeric tuple for that kind.
type Package struct {
	Type string
	Data []float64
}

// constructors maps each tag to the variant constructor its data tuple is
// spread into. Initialized once, never mutated.
var constructors = map[string]func([]float64) training.Training{
	"SWM": func(d []float64) training.Training {
		return training.NewSwimming(d[0], d[1], d[2], d[3], d[4])
	},
	"RUN": func(d []float64) training.Training {
		return training.NewRunning(d[0], d[1], d[2])
	},
	"WLK": func(d []float64) training.Training {
		return training.NewWalking(d[0], d[1], d[2], d[3])
	},
}

// Read maps a raw package to a workout record of the matching kind. The data
// tuple is spread positionally; supplying the right number of values is the
// caller's contract and is not validated here. An unrecognized tag returns
// an error wrapping ErrUnsupportedType.
func Read(pkg Package) (training.Training, error) {
	construct, ok := constructors[pkg.Type]
	if !ok {
		return training.Training{}, fmt.Errorf("reading package %q: %w", pkg.Type, ErrUnsupportedType)
	}
	return construct(pkg.Data), nil
}
