package domain

// WorkoutDay is a named, ordered collection of exercise entries representing
// one training session template. The order of the Exercises slice IS the
// workout order; the store persists a sort position per entry purely to
// reconstruct this order on read.
type WorkoutDay struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	DayOfWeek string        `json:"dayOfWeek"` // "Monday".."Sunday" or "" when unscheduled
	Exercises []DayExercise `json:"exercises"`
}

// DayExercise is one occurrence of a catalog exercise within a specific
// workout day. Name and BodyPart are snapshots taken from the catalog when
// the exercise was added; they are never re-synced if the catalog changes.
type DayExercise struct {
	InstanceID string `json:"instanceId"` // unique per occurrence, distinct from ExerciseID
	ExerciseID string `json:"exerciseId"`
	Name       string `json:"name"`
	BodyPart   string `json:"bodyPart"`
	Reps       int    `json:"reps"`
	Sets       int    `json:"sets"`
}

// weekdays holds the accepted dayOfWeek values (empty string excluded).
var weekdays = map[string]struct{}{
	"Monday":    {},
	"Tuesday":   {},
	"Wednesday": {},
	"Thursday":  {},
	"Friday":    {},
	"Saturday":  {},
	"Sunday":    {},
}

// ValidDayOfWeek reports whether s is a weekday name or the empty
// "unscheduled" sentinel.
func ValidDayOfWeek(s string) bool {
	if s == "" {
		return true
	}
	_, ok := weekdays[s]
	return ok
}
