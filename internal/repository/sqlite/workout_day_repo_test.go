package sqlite

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ironplan/workout-planner/internal/domain"
	"ironplan/workout-planner/internal/repository"
)

func setupRepo(t *testing.T) (repository.WorkoutDayRepository, *sql.DB) {
	t.Helper()
	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewWorkoutDayRepository(db, zap.NewNop()), db
}

func exercise(instanceID, exerciseID, name string) domain.DayExercise {
	return domain.DayExercise{
		InstanceID: instanceID,
		ExerciseID: exerciseID,
		Name:       name,
		BodyPart:   "Quads",
		Reps:       8,
		Sets:       4,
	}
}

func instanceIDs(exercises []domain.DayExercise) []string {
	ids := make([]string, len(exercises))
	for i, ex := range exercises {
		ids[i] = ex.InstanceID
	}
	return ids
}

func TestCreateGeneratesIdentifiers(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.WorkoutDay{
		Name:      "Leg Day",
		DayOfWeek: "Monday",
		Exercises: []domain.DayExercise{
			exercise("", "qua01", "Back Squat"),
		},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Leg Day", created.Name)
	assert.Equal(t, "Monday", created.DayOfWeek)
	require.Len(t, created.Exercises, 1)
	assert.NotEmpty(t, created.Exercises[0].InstanceID)
	assert.Equal(t, "qua01", created.Exercises[0].ExerciseID)
}

func TestOrderRoundTrip(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	cases := map[string][]domain.DayExercise{
		"empty": {},
		"single": {
			exercise("i-1", "qua01", "Back Squat"),
		},
		"several": {
			exercise("i-1", "qua01", "Back Squat"),
			exercise("i-2", "ham01", "Romanian Deadlift"),
			exercise("i-3", "cal05", "Standing Calf Raise Machine"),
		},
	}

	for name, exercises := range cases {
		t.Run(name, func(t *testing.T) {
			created, err := repo.Create(ctx, &domain.WorkoutDay{Name: name, Exercises: exercises})
			require.NoError(t, err)

			got, err := repo.GetByID(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, instanceIDs(exercises), instanceIDs(got.Exercises))
		})
	}
}

func TestReplaceReorders(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.WorkoutDay{
		Name: "Push",
		Exercises: []domain.DayExercise{
			exercise("i-1", "che01", "Bench Press Flat"),
			exercise("i-2", "sho01", "Overhead Press Barbell"),
			exercise("i-3", "tri13", "Dips"),
		},
	})
	require.NoError(t, err)

	// Reverse the order and save the whole list again.
	err = repo.Replace(ctx, created.ID, &domain.WorkoutDay{
		Name: "Push",
		Exercises: []domain.DayExercise{
			exercise("i-3", "tri13", "Dips"),
			exercise("i-2", "sho01", "Overhead Press Barbell"),
			exercise("i-1", "che01", "Bench Press Flat"),
		},
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"i-3", "i-2", "i-1"}, instanceIDs(got.Exercises))
}

func TestReplaceIsAtomic(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.WorkoutDay{
		Name:      "Pull",
		DayOfWeek: "Tuesday",
		Exercises: []domain.DayExercise{
			exercise("i-1", "bac01", "Deadlift"),
			exercise("i-2", "bac09", "Lat Pulldown"),
		},
	})
	require.NoError(t, err)

	// A duplicated instance id violates the primary key on the second
	// insert, failing the transaction midway through the re-insert step.
	err = repo.Replace(ctx, created.ID, &domain.WorkoutDay{
		Name:      "Renamed Pull",
		DayOfWeek: "Friday",
		Exercises: []domain.DayExercise{
			exercise("dup", "bac03", "Bent Over Row"),
			exercise("dup", "bac05", "T-Bar Row"),
		},
	})
	require.Error(t, err)

	// No partial write may be observable.
	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pull", got.Name)
	assert.Equal(t, "Tuesday", got.DayOfWeek)
	assert.Equal(t, []string{"i-1", "i-2"}, instanceIDs(got.Exercises))
}

func TestDeleteCascades(t *testing.T) {
	repo, db := setupRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.WorkoutDay{
		Name: "Legs",
		Exercises: []domain.DayExercise{
			exercise("i-1", "qua01", "Back Squat"),
			exercise("i-2", "qua08", "Leg Press"),
			exercise("i-3", "ham10", "Nordic Curl"),
		},
	})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	var residual int
	err = db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM day_exercises WHERE workout_day_id = ?`, created.ID,
	).Scan(&residual)
	require.NoError(t, err)
	assert.Zero(t, residual)
}

func TestNotFoundIsIdempotent(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	day := &domain.WorkoutDay{Name: "Ghost"}
	for i := 0; i < 2; i++ {
		assert.ErrorIs(t, repo.Replace(ctx, "no-such-id", day), repository.ErrNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, "no-such-id"), repository.ErrNotFound)
	}

	days, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, days)
}

func TestReplaceUnknownIDTouchesNothing(t *testing.T) {
	repo, db := setupRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.WorkoutDay{
		Name:      "Keep",
		Exercises: []domain.DayExercise{exercise("i-1", "cor03", "Plank")},
	})
	require.NoError(t, err)

	err = repo.Replace(ctx, "unknown", &domain.WorkoutDay{Name: "Nope"})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	var count int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM day_exercises`).Scan(&count))
	assert.Equal(t, 1, count)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Keep", got.Name)
}

func TestGetAllSortsByName(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	for _, name := range []string{"Wednesday Pull", "Arm Day", "Leg Day"} {
		_, err := repo.Create(ctx, &domain.WorkoutDay{Name: name})
		require.NoError(t, err)
	}

	days, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, days, 3)
	assert.Equal(t, "Arm Day", days[0].Name)
	assert.Equal(t, "Leg Day", days[1].Name)
	assert.Equal(t, "Wednesday Pull", days[2].Name)
}
