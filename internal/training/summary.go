package training

import "fmt"

// Summary holds the derived metrics of one workout, ready for rendering.
type Summary struct {
	TrainingType string
	Duration     float64 // hours
	Distance     float64 // km
	Speed        float64 // km/h
	Calories     float64
}

// Summary computes all derived metrics for the workout.
func (t Training) Summary() Summary {
	return Summary{
		TrainingType: t.Kind.String(),
		Duration:     t.Duration,
		Distance:     t.Distance(),
		Speed:        t.MeanSpeed(),
		Calories:     t.SpentCalories(),
	}
}

// String renders the single-line workout report. All numeric fields use
// fixed-point notation with exactly three decimal places.
func (s Summary) String() string {
	return fmt.Sprintf(
		"Workout type: %s; Duration: %.3f h.; Distance: %.3f km; Avg speed: %.3f km/h; Calories burned: %.3f.",
		s.TrainingType, s.Duration, s.Distance, s.Speed, s.Calories)
}
