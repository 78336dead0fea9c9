package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ironplan/workout-planner/internal/repository/sqlite"
	"ironplan/workout-planner/internal/service"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := zap.NewNop()
	dayRepo := sqlite.NewWorkoutDayRepository(db, logger)
	dayService := service.NewDayService(dayRepo, logger)

	router := gin.New()
	SetupRoutes(router, "", nil, dayService)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeDay(t *testing.T, w *httptest.ResponseRecorder) WorkoutDayResponse {
	t.Helper()
	var day WorkoutDayResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &day))
	return day
}

func TestCreateThenReorderScenario(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/workout-days", WorkoutDayRequest{
		Name:      "Leg Day",
		DayOfWeek: "Monday",
		Exercises: []DayExerciseRequest{
			{ExerciseID: "qua01", Name: "Back Squat", BodyPart: "Quads", Reps: 8, Sets: 4},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeDay(t, w)
	assert.NotEmpty(t, created.ID)
	require.Len(t, created.Exercises, 1)
	assert.NotEmpty(t, created.Exercises[0].InstanceID)

	// Replace with two exercises, new one first.
	w = doJSON(t, router, http.MethodPut, "/api/v1/workout-days/"+created.ID, WorkoutDayRequest{
		Name:      "Leg Day",
		DayOfWeek: "Monday",
		Exercises: []DayExerciseRequest{
			{ExerciseID: "ham01", Name: "Romanian Deadlift", BodyPart: "Hamstrings", Reps: 10, Sets: 3},
			{InstanceID: created.Exercises[0].InstanceID, ExerciseID: "qua01", Name: "Back Squat", BodyPart: "Quads", Reps: 8, Sets: 4},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeDay(t, w)
	require.Len(t, updated.Exercises, 2)
	assert.Equal(t, "ham01", updated.Exercises[0].ExerciseID)
	assert.Equal(t, "qua01", updated.Exercises[1].ExerciseID)
	assert.NotEmpty(t, updated.Exercises[0].InstanceID, "server must generate missing instance ids")

	// GET returns the new order.
	w = doJSON(t, router, http.MethodGet, "/api/v1/workout-days/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	fetched := decodeDay(t, w)
	assert.Equal(t, []string{"ham01", "qua01"}, []string{fetched.Exercises[0].ExerciseID, fetched.Exercises[1].ExerciseID})
}

func TestCreateDayMissingName(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/workout-days", gin.H{"dayOfWeek": "Monday"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Nothing persisted.
	w = doJSON(t, router, http.MethodGet, "/api/v1/workout-days", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestCreateDayRejectsBadWeekday(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/workout-days", WorkoutDayRequest{
		Name:      "Legs",
		DayOfWeek: "Caturday",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListDaysSortedByName(t *testing.T) {
	router := setupRouter(t)

	for _, name := range []string{"Pull", "Arms", "Legs"} {
		w := doJSON(t, router, http.MethodPost, "/api/v1/workout-days", WorkoutDayRequest{Name: name})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, router, http.MethodGet, "/api/v1/workout-days", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var days []WorkoutDayResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &days))
	require.Len(t, days, 3)
	assert.Equal(t, "Arms", days[0].Name)
	assert.Equal(t, "Legs", days[1].Name)
	assert.Equal(t, "Pull", days[2].Name)
}

func TestGetDayNotFound(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/workout-days/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateDayNotFound(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodPut, "/api/v1/workout-days/nope", WorkoutDayRequest{Name: "X"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteDay(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/workout-days", WorkoutDayRequest{
		Name:      "Doomed",
		Exercises: []DayExerciseRequest{{ExerciseID: "cor03", Name: "Plank"}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeDay(t, w)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/workout-days/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Second delete reports not found, as does a read.
	w = doJSON(t, router, http.MethodDelete, "/api/v1/workout-days/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(t, router, http.MethodGet, "/api/v1/workout-days/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListCatalogExercises(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/exercises", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var exercises []struct {
		ID            string `json:"id"`
		Name          string `json:"name"`
		BodyPart      string `json:"bodyPart"`
		ImageFilename string `json:"imageFilename"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &exercises))
	assert.NotEmpty(t, exercises)
	assert.Equal(t, "che01", exercises[0].ID)
	assert.Equal(t, "che01.png", exercises[0].ImageFilename)
}
