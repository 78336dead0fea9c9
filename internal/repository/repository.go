package repository

import (
	"context"

	"ironplan/workout-planner/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound = RepositoryError("not found")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// WorkoutDayRepository defines the interface for durable workout day storage.
// Implementations must preserve the order of the Exercises slice exactly as
// written: a read always yields the order of the most recent successful
// Create or Replace, and deleting a day removes its exercise rows with it.
type WorkoutDayRepository interface {
	// GetByID fetches one day with its exercises in stored order.
	GetByID(ctx context.Context, id string) (*domain.WorkoutDay, error)
	// GetAll returns every day sorted by name ascending.
	GetAll(ctx context.Context) ([]domain.WorkoutDay, error)
	// Create inserts the day and its exercises atomically, generating the
	// day id and any missing exercise instance ids. The stored day is
	// returned with all generated identifiers filled in.
	Create(ctx context.Context, day *domain.WorkoutDay) (*domain.WorkoutDay, error)
	// Replace overwrites the day's fields and its entire exercise list in
	// one transaction. Returns ErrNotFound (leaving all rows untouched)
	// when no day matches id.
	Replace(ctx context.Context, id string, day *domain.WorkoutDay) error
	// Delete removes the day and, via cascade, all its exercise rows.
	Delete(ctx context.Context, id string) error
}
