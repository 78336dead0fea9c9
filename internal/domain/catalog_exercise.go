package domain

// CatalogExercise is a static, predefined exercise definition available for
// selection. The catalog is loaded once at process start and never mutated;
// edits to it do not back-propagate into previously saved DayExercise rows.
type CatalogExercise struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	BodyPart      string `json:"bodyPart"`
	ImageFilename string `json:"imageFilename"`
}
