package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"ironplan/workout-planner/internal/repository/sqlite"
	"ironplan/workout-planner/internal/service"
)

const testSecret = "test-secret"

func setupProtectedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := zap.NewNop()
	dayRepo := sqlite.NewWorkoutDayRepository(db, logger)
	dayService := service.NewDayService(dayRepo, logger)

	hash, err := bcrypt.GenerateFromPassword([]byte("open sesame"), bcrypt.MinCost)
	require.NoError(t, err)
	authService := service.NewAuthService(string(hash), testSecret, time.Hour)

	router := gin.New()
	SetupRoutes(router, testSecret, authService, dayService)
	return router
}

func TestLoginWrongPassword(t *testing.T) {
	router := setupProtectedRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", LoginRequest{Password: "guess"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := setupProtectedRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/workout-days", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/workout-days", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginThenAccess(t *testing.T) {
	router := setupProtectedRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", LoginRequest{Password: "open sesame"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/workout-days", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
