package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ironplan/workout-planner/internal/domain"
	"ironplan/workout-planner/internal/service"
)

// DayHandler holds the day service dependency.
type DayHandler struct {
	dayService service.DayService
}

// NewDayHandler creates a new DayHandler.
func NewDayHandler(dayService service.DayService) *DayHandler {
	return &DayHandler{dayService: dayService}
}

// --- DTOs for API (Data Transfer Objects) ---

// DayExerciseRequest is one exercise entry as submitted by the client. The
// instance id is optional; the server generates one when it is absent.
type DayExerciseRequest struct {
	InstanceID string `json:"instanceId"`
	ExerciseID string `json:"exerciseId"`
	Name       string `json:"name"`
	BodyPart   string `json:"bodyPart"`
	Reps       int    `json:"reps"`
	Sets       int    `json:"sets"`
}

// WorkoutDayRequest defines the expected JSON for creating or fully
// replacing a workout day. The exercises array order is the workout order.
type WorkoutDayRequest struct {
	Name      string               `json:"name" binding:"required"`
	DayOfWeek string               `json:"dayOfWeek"`
	Exercises []DayExerciseRequest `json:"exercises"`
}

// DayExerciseResponse mirrors domain.DayExercise on the wire.
type DayExerciseResponse struct {
	InstanceID string `json:"instanceId"`
	ExerciseID string `json:"exerciseId"`
	Name       string `json:"name"`
	BodyPart   string `json:"bodyPart"`
	Reps       int    `json:"reps"`
	Sets       int    `json:"sets"`
}

// WorkoutDayResponse is the DTO for returning a workout day.
type WorkoutDayResponse struct {
	ID        string                `json:"id"`
	Name      string                `json:"name"`
	DayOfWeek string                `json:"dayOfWeek"`
	Exercises []DayExerciseResponse `json:"exercises"`
}

func mapRequestToInput(req WorkoutDayRequest) service.DayInput {
	exercises := make([]domain.DayExercise, len(req.Exercises))
	for i, ex := range req.Exercises {
		exercises[i] = domain.DayExercise{
			InstanceID: ex.InstanceID,
			ExerciseID: ex.ExerciseID,
			Name:       ex.Name,
			BodyPart:   ex.BodyPart,
			Reps:       ex.Reps,
			Sets:       ex.Sets,
		}
	}
	return service.DayInput{
		Name:      req.Name,
		DayOfWeek: req.DayOfWeek,
		Exercises: exercises,
	}
}

// MapDayToResponse converts a domain.WorkoutDay to WorkoutDayResponse DTO.
func MapDayToResponse(day *domain.WorkoutDay) WorkoutDayResponse {
	if day == nil {
		return WorkoutDayResponse{Exercises: []DayExerciseResponse{}}
	}
	exercises := make([]DayExerciseResponse, len(day.Exercises))
	for i, ex := range day.Exercises {
		exercises[i] = DayExerciseResponse{
			InstanceID: ex.InstanceID,
			ExerciseID: ex.ExerciseID,
			Name:       ex.Name,
			BodyPart:   ex.BodyPart,
			Reps:       ex.Reps,
			Sets:       ex.Sets,
		}
	}
	return WorkoutDayResponse{
		ID:        day.ID,
		Name:      day.Name,
		DayOfWeek: day.DayOfWeek,
		Exercises: exercises,
	}
}

// MapDaysToResponse converts a slice of domain.WorkoutDay to response DTOs.
func MapDaysToResponse(days []domain.WorkoutDay) []WorkoutDayResponse {
	responses := make([]WorkoutDayResponse, len(days))
	for i := range days {
		responses[i] = MapDayToResponse(&days[i])
	}
	return responses
}

// --- Handler Methods ---

// ListDays godoc
// @Summary List all workout days
// @Description Returns every workout day sorted by name, exercises in stored order.
// @Tags WorkoutDays
// @Produce json
// @Success 200 {array} WorkoutDayResponse "List of workout days"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /workout-days [get]
func (h *DayHandler) ListDays(c *gin.Context) {
	days, err := h.dayService.ListDays(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch workout days: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, MapDaysToResponse(days))
}

// CreateDay godoc
// @Summary Create a workout day
// @Description Creates a new workout day with its ordered exercise list.
// @Tags WorkoutDays
// @Accept json
// @Produce json
// @Param day body WorkoutDayRequest true "Workout day details"
// @Success 201 {object} WorkoutDayResponse "Workout day created"
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /workout-days [post]
func (h *DayHandler) CreateDay(c *gin.Context) {
	var req WorkoutDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Name is required")
		return
	}

	day, err := h.dayService.CreateDay(c.Request.Context(), mapRequestToInput(req))
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create workout day: "+err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, MapDayToResponse(day))
}

// GetDay godoc
// @Summary Get one workout day
// @Tags WorkoutDays
// @Produce json
// @Success 200 {object} WorkoutDayResponse "Workout day"
// @Failure 404 {object} gin.H "Workout day not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /workout-days/{dayId} [get]
func (h *DayHandler) GetDay(c *gin.Context) {
	day, err := h.dayService.GetDay(c.Request.Context(), c.Param("dayId"))
	if err != nil {
		if errors.Is(err, service.ErrDayNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout day not found")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to fetch workout day: "+err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, MapDayToResponse(day))
}

// UpdateDay godoc
// @Summary Replace a workout day
// @Description Full replacement: name, dayOfWeek and the entire exercise list
// @Description are re-supplied; the response is the day reloaded from storage.
// @Tags WorkoutDays
// @Accept json
// @Produce json
// @Param day body WorkoutDayRequest true "Workout day details"
// @Success 200 {object} WorkoutDayResponse "Updated workout day"
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 404 {object} gin.H "Workout day not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /workout-days/{dayId} [put]
func (h *DayHandler) UpdateDay(c *gin.Context) {
	var req WorkoutDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Name is required")
		return
	}

	day, err := h.dayService.UpdateDay(c.Request.Context(), c.Param("dayId"), mapRequestToInput(req))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrDayNotFound):
			abortWithError(c, http.StatusNotFound, "Workout day not found")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update workout day: "+err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, MapDayToResponse(day))
}

// DeleteDay godoc
// @Summary Delete a workout day
// @Description Deletes the day; its exercise entries are removed by cascade.
// @Tags WorkoutDays
// @Produce json
// @Success 200 {object} gin.H "Confirmation message"
// @Failure 404 {object} gin.H "Workout day not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /workout-days/{dayId} [delete]
func (h *DayHandler) DeleteDay(c *gin.Context) {
	err := h.dayService.DeleteDay(c.Request.Context(), c.Param("dayId"))
	if err != nil {
		if errors.Is(err, service.ErrDayNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout day not found")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete workout day: "+err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Workout day deleted successfully"})
}
