// Package catalog holds the static exercise catalog. The catalog is compiled
// in, loaded once, and never mutated at runtime; day entries copy the fields
// they need out of it at selection time.
package catalog

import "ironplan/workout-planner/internal/domain"

type entry struct {
	id, name, bodyPart string
}

var exerciseList = []entry{
	// Chest
	{"che01", "Bench Press Flat", "Chest"},
	{"che02", "Bench Press Incline", "Chest"},
	{"che03", "Bench Press Decline", "Chest"},
	{"che04", "Close-Grip Bench Press", "Chest"},
	{"che05", "Reverse-Grip Bench Press", "Chest"},
	{"che06", "Dumbbell Press Flat", "Chest"},
	{"che07", "Dumbbell Press Incline", "Chest"},
	{"che08", "Dumbbell Press Decline", "Chest"},
	{"che09", "Dumbbell Flyes Flat", "Chest"},
	{"che10", "Dumbbell Flyes Incline", "Chest"},
	{"che11", "Dumbbell Flyes Decline", "Chest"},
	{"che12", "Dumbbell Pullover", "Chest"},
	{"che13", "Chest Press Machine Flat", "Chest"},
	{"che14", "Chest Press Machine Incline", "Chest"},
	{"che15", "Pec Deck Machine", "Chest"},
	{"che16", "Hammer Strength Press", "Chest"},
	{"che17", "Cable Crossover High", "Chest"},
	{"che18", "Cable Crossover Mid", "Chest"},
	{"che19", "Cable Crossover Low", "Chest"},
	{"che20", "Single Arm Cable Fly", "Chest"},
	{"che21", "Cable Press", "Chest"},
	{"che22", "Push-Up Standard", "Chest"},
	{"che23", "Push-Up Incline", "Chest"},
	{"che24", "Push-Up Decline", "Chest"},
	{"che25", "Chest Dips", "Chest"},

	// Shoulders
	{"sho01", "Overhead Press Barbell", "Shoulders"},
	{"sho02", "Behind-the-Neck Press", "Shoulders"},
	{"sho03", "Front Press", "Shoulders"},
	{"sho04", "Seated Dumbbell Press", "Shoulders"},
	{"sho05", "Standing Dumbbell Press", "Shoulders"},
	{"sho06", "Dumbbell Lateral Raise", "Shoulders"},
	{"sho07", "Dumbbell Front Raise", "Shoulders"},
	{"sho08", "Dumbbell Rear Delt Fly", "Shoulders"},
	{"sho09", "Arnold Press", "Shoulders"},
	{"sho10", "Shoulder Press Machine", "Shoulders"},
	{"sho11", "Lateral Raise Machine", "Shoulders"},
	{"sho12", "Reverse Pec Deck", "Shoulders"},
	{"sho13", "Cable Lateral Raise Front", "Shoulders"},
	{"sho14", "Cable Lateral Raise Side", "Shoulders"},
	{"sho15", "Cable Lateral Raise Rear", "Shoulders"},
	{"sho16", "Cable Face Pull", "Shoulders"},
	{"sho17", "Pike Push-Up", "Shoulders"},
	{"sho18", "Handstand Push-Up", "Shoulders"},

	// Biceps
	{"bic01", "Barbell Curl", "Biceps"},
	{"bic02", "EZ-Bar Curl", "Biceps"},
	{"bic03", "Drag Curl", "Biceps"},
	{"bic04", "Reverse Curl", "Biceps"},
	{"bic05", "Alternating Dumbbell Curl", "Biceps"},
	{"bic06", "Hammer Curl", "Biceps"},
	{"bic07", "Concentration Curl", "Biceps"},
	{"bic08", "Zottman Curl", "Biceps"},
	{"bic09", "Preacher Curl Machine", "Biceps"},
	{"bic10", "Cable Curl", "Biceps"},
	{"bic11", "Rope Hammer Curl", "Biceps"},
	{"bic12", "Concentration Cable Curl", "Biceps"},
	{"bic13", "Chin-Up", "Biceps"},
	{"bic14", "Bar Isometric Hold", "Biceps"},

	// Triceps
	{"tri01", "Close-Grip Bench Press", "Triceps"},
	{"tri02", "Skull Crushers", "Triceps"},
	{"tri03", "JM Press", "Triceps"},
	{"tri04", "Overhead Dumbbell Extension", "Triceps"},
	{"tri05", "Triceps Kickback", "Triceps"},
	{"tri06", "Tate Press", "Triceps"},
	{"tri07", "Triceps Pushdown Machine", "Triceps"},
	{"tri08", "Assisted Dip Machine", "Triceps"},
	{"tri09", "Rope Pushdown", "Triceps"},
	{"tri10", "Straight Bar Pushdown", "Triceps"},
	{"tri11", "Overhead Cable Extension Rope", "Triceps"},
	{"tri12", "Overhead Cable Extension Bar", "Triceps"},
	{"tri13", "Dips", "Triceps"},
	{"tri14", "Bench Dips", "Triceps"},
	{"tri15", "Diamond Push-Up", "Triceps"},

	// Back
	{"bac01", "Deadlift", "Back"},
	{"bac02", "Romanian Deadlift", "Back"},
	{"bac03", "Bent Over Row", "Back"},
	{"bac04", "Pendlay Row", "Back"},
	{"bac05", "T-Bar Row", "Back"},
	{"bac06", "Single Arm Dumbbell Row", "Back"},
	{"bac07", "Chest-Supported Dumbbell Row", "Back"},
	{"bac08", "Renegade Row", "Back"},
	{"bac09", "Lat Pulldown", "Back"},
	{"bac10", "Seated Cable Row", "Back"},
	{"bac11", "Hammer Strength Row", "Back"},
	{"bac12", "Cable Straight Arm Pulldown", "Back"},
	{"bac13", "Low Pulley Row", "Back"},
	{"bac14", "Pull-Up Wide", "Back"},
	{"bac15", "Pull-Up Neutral", "Back"},
	{"bac16", "Chin-Up", "Back"},
	{"bac17", "Inverted Row", "Back"},

	// Quads
	{"qua01", "Back Squat", "Quads"},
	{"qua02", "Front Squat", "Quads"},
	{"qua03", "Hack Squat Barbell", "Quads"},
	{"qua04", "Zercher Squat", "Quads"},
	{"qua05", "Goblet Squat", "Quads"},
	{"qua06", "Bulgarian Split Squat", "Quads"},
	{"qua07", "Dumbbell Step-Up", "Quads"},
	{"qua08", "Leg Press", "Quads"},
	{"qua09", "Hack Squat Machine", "Quads"},
	{"qua10", "Leg Extension Machine", "Quads"},
	{"qua11", "Cable Step-Up", "Quads"},
	{"qua12", "Cable Leg Extension", "Quads"},
	{"qua13", "Pistol Squat", "Quads"},
	{"qua14", "Wall Sit", "Quads"},
	{"qua15", "Jump Squat", "Quads"},

	// Hamstrings
	{"ham01", "Romanian Deadlift", "Hamstrings"},
	{"ham02", "Good Morning", "Hamstrings"},
	{"ham03", "Dumbbell Romanian Deadlift", "Hamstrings"},
	{"ham04", "Swiss Ball Dumbbell Curl", "Hamstrings"},
	{"ham05", "Lying Leg Curl Machine", "Hamstrings"},
	{"ham06", "Seated Leg Curl Machine", "Hamstrings"},
	{"ham07", "Standing Leg Curl Machine", "Hamstrings"},
	{"ham08", "Cable Leg Curl", "Hamstrings"},
	{"ham09", "Glute-Ham Raise", "Hamstrings"},
	{"ham10", "Nordic Curl", "Hamstrings"},

	// Glutes
	{"glu01", "Hip Thrust Barbell", "Glutes"},
	{"glu02", "Glute Bridge Barbell", "Glutes"},
	{"glu03", "Sumo Deadlift", "Glutes"},
	{"glu04", "Hip Thrust Dumbbell", "Glutes"},
	{"glu05", "Glute Bridge Dumbbell", "Glutes"},
	{"glu06", "Glute Kickback Machine", "Glutes"},
	{"glu07", "Cable Glute Kickback", "Glutes"},
	{"glu08", "Cable Pull-Through", "Glutes"},

	// Calves
	{"cal01", "Standing Calf Raise Barbell", "Calves"},
	{"cal02", "Seated Calf Raise Barbell", "Calves"},
	{"cal03", "Standing Calf Raise Dumbbell", "Calves"},
	{"cal04", "Single-Leg Calf Raise Dumbbell", "Calves"},
	{"cal05", "Standing Calf Raise Machine", "Calves"},
	{"cal06", "Seated Calf Raise Machine", "Calves"},
	{"cal07", "Donkey Calf Raise Machine", "Calves"},
	{"cal08", "Double-Leg Calf Raise", "Calves"},
	{"cal09", "Single-Leg Calf Raise", "Calves"},
	{"cal10", "Stair Calf Raise", "Calves"},

	// Core / Abs
	{"cor01", "Crunch", "Core / Abs"},
	{"cor02", "Leg Raise", "Core / Abs"},
	{"cor03", "Plank", "Core / Abs"},
	{"cor04", "V-Up", "Core / Abs"},
	{"cor05", "Russian Twist", "Core / Abs"},
	{"cor06", "Weighted Sit-Up", "Core / Abs"},
	{"cor07", "Landmine Twist", "Core / Abs"},
	{"cor08", "Overhead Carry", "Core / Abs"},
	{"cor09", "Barbell Rollout", "Core / Abs"},
	{"cor10", "Ab Crunch Machine", "Core / Abs"},
	{"cor11", "Cable Ab Pulldown", "Core / Abs"},
	{"cor12", "Cable Rope Crunch", "Core / Abs"},
	{"cor13", "Cable Oblique Twist", "Core / Abs"},
	{"cor14", "Cable Woodchopper", "Core / Abs"},
}

var (
	exercises []domain.CatalogExercise
	byID      map[string]domain.CatalogExercise
)

func init() {
	exercises = make([]domain.CatalogExercise, len(exerciseList))
	byID = make(map[string]domain.CatalogExercise, len(exerciseList))
	for i, e := range exerciseList {
		ex := domain.CatalogExercise{
			ID:            e.id,
			Name:          e.name,
			BodyPart:      e.bodyPart,
			ImageFilename: e.id + ".png",
		}
		exercises[i] = ex
		byID[e.id] = ex
	}
}

// All returns the full catalog in its defined order. The returned slice is a
// copy, so callers cannot disturb the catalog itself.
func All() []domain.CatalogExercise {
	out := make([]domain.CatalogExercise, len(exercises))
	copy(out, exercises)
	return out
}

// ByID looks up a single catalog exercise.
func ByID(id string) (domain.CatalogExercise, bool) {
	ex, ok := byID[id]
	return ex, ok
}
