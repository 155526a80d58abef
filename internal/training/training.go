// Package training computes derived workout metrics (distance, mean speed,
// spent calories) from raw tracker readings for the supported workout kinds.
package training

import "math"

// Kind identifies one of the supported workout variants.
type Kind int

const (
	Running Kind = iota
	Walking
	Swimming
)

// String returns the display name used in the workout report line.
func (k Kind) String() string {
	switch k {
	case Running:
		return "Running"
	case Walking:
		return "SportsWalking"
	case Swimming:
		return "Swimming"
	}
	return "Unknown"
}

// Unit conversions shared by all formulas.
const (
	mInKm  = 1000 // meters per kilometer
	minInH = 60   // minutes per hour
)

// Stride length in meters. Swimming counts strokes, which are longer.
const (
	lenStep   = 0.65
	lenStroke = 1.38
)

// Calorie coefficients, carried over from the tracker vendor's reference
// formulas.
const (
	runSpeedFactor = 18
	runSpeedShift  = 20

	walkWeightFactor = 0.035
	walkHeightFactor = 0.029

	swimSpeedShift   = 1.1
	swimWeightFactor = 2
)

// Training is one recorded workout: the raw sensor readings plus the kind
// that selects the formula set. A Training is immutable once constructed.
type Training struct {
	Kind     Kind
	Action   float64 // step or stroke count
	Duration float64 // hours
	Weight   float64 // kg

	Height     float64 // cm, walking only
	LengthPool float64 // meters, swimming only
	CountPool  float64 // pool lengths completed, swimming only
}

// NewRunning builds a running workout record.
func NewRunning(action, duration, weight float64) Training {
	return Training{Kind: Running, Action: action, Duration: duration, Weight: weight}
}

// NewWalking builds a sports-walking workout record.
func NewWalking(action, duration, weight, height float64) Training {
	return Training{Kind: Walking, Action: action, Duration: duration, Weight: weight, Height: height}
}

// NewSwimming builds a swimming workout record.
func NewSwimming(action, duration, weight, lengthPool, countPool float64) Training {
	return Training{
		Kind:       Swimming,
		Action:     action,
		Duration:   duration,
		Weight:     weight,
		LengthPool: lengthPool,
		CountPool:  countPool,
	}
}

// Distance returns the covered distance in kilometers.
func (t Training) Distance() float64 { return formulas[t.Kind].distance(t) }

// MeanSpeed returns the average speed in km/h. A zero duration is not
// guarded; the division propagates per IEEE 754.
func (t Training) MeanSpeed() float64 { return formulas[t.Kind].meanSpeed(t) }

// SpentCalories returns the calories burned during the workout.
func (t Training) SpentCalories() float64 { return formulas[t.Kind].spentCalories(t) }

// formulaSet is the complete metric triple for one workout kind. Every kind
// registers all three functions, so a missing formula cannot occur at
// runtime.
type formulaSet struct {
	distance      func(Training) float64
	meanSpeed     func(Training) float64
	spentCalories func(Training) float64
}

// formulas maps each kind to its formula set. Initialized once, read-only
// afterwards.
var formulas = map[Kind]formulaSet{
	Running: {
		distance:  strideDistance,
		meanSpeed: strideSpeed,
		spentCalories: func(t Training) float64 {
			return (runSpeedFactor*strideSpeed(t) - runSpeedShift) *
				t.Weight / mInKm * (t.Duration * minInH)
		},
	},
	Walking: {
		distance:  strideDistance,
		meanSpeed: strideSpeed,
		spentCalories: func(t Training) float64 {
			speed := strideSpeed(t)
			// The squared speed is floor-divided by height, matching the
			// vendor formula. The truncation is intentional.
			return (walkWeightFactor*t.Weight +
				math.Floor(speed*speed/t.Height)*walkHeightFactor*t.Weight) *
				(t.Duration * minInH)
		},
	},
	Swimming: {
		distance: func(t Training) float64 {
			return t.Action * lenStroke / mInKm
		},
		meanSpeed: poolSpeed,
		spentCalories: func(t Training) float64 {
			return (poolSpeed(t) + swimSpeedShift) * swimWeightFactor * t.Weight
		},
	},
}

func strideDistance(t Training) float64 { return t.Action * lenStep / mInKm }

func strideSpeed(t Training) float64 { return strideDistance(t) / t.Duration }

func poolSpeed(t Training) float64 { return t.LengthPool * t.CountPool / mInKm / t.Duration }
