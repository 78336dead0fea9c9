package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ironplan/workout-planner/internal/domain"
	"ironplan/workout-planner/internal/repository"
)

// sqliteWorkoutDayRepository implements repository.WorkoutDayRepository on
// top of the two-table schema. List replacement is delete-then-reinsert
// inside one transaction: sort_order is always re-derived from the slice
// index, so the stored order can never drift from what the caller submitted.
type sqliteWorkoutDayRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewWorkoutDayRepository creates a new SQLite-backed workout day repository.
func NewWorkoutDayRepository(db *sql.DB, logger *zap.Logger) repository.WorkoutDayRepository {
	return &sqliteWorkoutDayRepository{db: db, logger: logger}
}

// rollback discards tx, logging a failed rollback without disturbing the
// error already being returned to the caller. ErrTxDone just means the
// transaction was already committed.
func (r *sqliteWorkoutDayRepository) rollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		r.logger.Warn("transaction rollback failed", zap.Error(err))
	}
}

func (r *sqliteWorkoutDayRepository) GetByID(ctx context.Context, id string) (*domain.WorkoutDay, error) {
	day := domain.WorkoutDay{Exercises: []domain.DayExercise{}}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, dayOfWeek FROM workout_days WHERE id = ?`, id,
	).Scan(&day.ID, &day.Name, &day.DayOfWeek)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query workout day: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT instanceId, exerciseId, name, bodyPart, reps, sets
         FROM day_exercises
         WHERE workout_day_id = ?
         ORDER BY sort_order ASC`, id)
	if err != nil {
		return nil, fmt.Errorf("query day exercises: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ex domain.DayExercise
		if err := rows.Scan(&ex.InstanceID, &ex.ExerciseID, &ex.Name, &ex.BodyPart, &ex.Reps, &ex.Sets); err != nil {
			return nil, fmt.Errorf("scan day exercise: %w", err)
		}
		day.Exercises = append(day.Exercises, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate day exercises: %w", err)
	}
	return &day, nil
}

func (r *sqliteWorkoutDayRepository) GetAll(ctx context.Context) ([]domain.WorkoutDay, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, dayOfWeek FROM workout_days ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("query workout days: %w", err)
	}
	defer rows.Close()

	var days []domain.WorkoutDay
	index := map[string]int{}
	for rows.Next() {
		day := domain.WorkoutDay{Exercises: []domain.DayExercise{}}
		if err := rows.Scan(&day.ID, &day.Name, &day.DayOfWeek); err != nil {
			return nil, fmt.Errorf("scan workout day: %w", err)
		}
		index[day.ID] = len(days)
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workout days: %w", err)
	}
	if len(days) == 0 {
		return days, nil
	}

	exRows, err := r.db.QueryContext(ctx,
		`SELECT workout_day_id, instanceId, exerciseId, name, bodyPart, reps, sets
         FROM day_exercises
         ORDER BY workout_day_id, sort_order ASC`)
	if err != nil {
		return nil, fmt.Errorf("query day exercises: %w", err)
	}
	defer exRows.Close()

	for exRows.Next() {
		var dayID string
		var ex domain.DayExercise
		if err := exRows.Scan(&dayID, &ex.InstanceID, &ex.ExerciseID, &ex.Name, &ex.BodyPart, &ex.Reps, &ex.Sets); err != nil {
			return nil, fmt.Errorf("scan day exercise: %w", err)
		}
		if i, ok := index[dayID]; ok {
			days[i].Exercises = append(days[i].Exercises, ex)
		}
	}
	if err := exRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate day exercises: %w", err)
	}
	return days, nil
}

func (r *sqliteWorkoutDayRepository) Create(ctx context.Context, day *domain.WorkoutDay) (*domain.WorkoutDay, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer r.rollback(tx)

	dayID := uuid.New().String()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO workout_days (id, name, dayOfWeek) VALUES (?, ?, ?)`,
		dayID, day.Name, day.DayOfWeek)
	if err != nil {
		return nil, fmt.Errorf("insert workout day: %w", err)
	}

	if err := insertDayExercises(ctx, tx, dayID, day.Exercises); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return r.GetByID(ctx, dayID)
}

func (r *sqliteWorkoutDayRepository) Replace(ctx context.Context, id string, day *domain.WorkoutDay) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer r.rollback(tx)

	res, err := tx.ExecContext(ctx,
		`UPDATE workout_days SET name = ?, dayOfWeek = ? WHERE id = ?`,
		day.Name, day.DayOfWeek, id)
	if err != nil {
		return fmt.Errorf("update workout day: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update workout day: %w", err)
	}
	if affected == 0 {
		// Unknown id: abort before touching any exercise rows.
		return repository.ErrNotFound
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM day_exercises WHERE workout_day_id = ?`, id); err != nil {
		return fmt.Errorf("clear day exercises: %w", err)
	}
	if err := insertDayExercises(ctx, tx, id, day.Exercises); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (r *sqliteWorkoutDayRepository) Delete(ctx context.Context, id string) error {
	// ON DELETE CASCADE removes the day's exercise rows with it.
	res, err := r.db.ExecContext(ctx, `DELETE FROM workout_days WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete workout day: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete workout day: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// insertDayExercises writes the full exercise list for a day, deriving
// sort_order from the slice index and generating instance ids server-side
// when the caller did not supply one.
func insertDayExercises(ctx context.Context, tx *sql.Tx, dayID string, exercises []domain.DayExercise) error {
	for i, ex := range exercises {
		instanceID := ex.InstanceID
		if instanceID == "" {
			instanceID = uuid.New().String()
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO day_exercises
             (instanceId, workout_day_id, exerciseId, name, bodyPart, reps, sets, sort_order)
             VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			instanceID, dayID, ex.ExerciseID, ex.Name, ex.BodyPart, ex.Reps, ex.Sets, i)
		if err != nil {
			return fmt.Errorf("insert day exercise %d: %w", i, err)
		}
	}
	return nil
}
