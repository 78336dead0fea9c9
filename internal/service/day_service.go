package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"ironplan/workout-planner/internal/domain"
	"ironplan/workout-planner/internal/repository"
)

// --- Error Definitions ---
var (
	ErrDayNotFound      = errors.New("workout day not found")
	ErrValidationFailed = errors.New("workout day validation failed")
)

// DayInput carries the caller-supplied fields of a workout day. Updates are
// full replacements: the exercise list is re-supplied in its entirety and
// its order is the workout order.
type DayInput struct {
	Name      string
	DayOfWeek string
	Exercises []domain.DayExercise
}

// --- Service Interface ---
type DayService interface {
	CreateDay(ctx context.Context, input DayInput) (*domain.WorkoutDay, error)
	GetDay(ctx context.Context, id string) (*domain.WorkoutDay, error)
	ListDays(ctx context.Context) ([]domain.WorkoutDay, error)
	UpdateDay(ctx context.Context, id string, input DayInput) (*domain.WorkoutDay, error)
	DeleteDay(ctx context.Context, id string) error
}

// --- Service Implementation ---

type dayService struct {
	dayRepo repository.WorkoutDayRepository
	logger  *zap.Logger
}

// NewDayService creates a new instance of dayService.
func NewDayService(dayRepo repository.WorkoutDayRepository, logger *zap.Logger) DayService {
	return &dayService{dayRepo: dayRepo, logger: logger}
}

// validate enforces the required-field rules shared by create and update.
func validate(input DayInput) error {
	if input.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidationFailed)
	}
	if !domain.ValidDayOfWeek(input.DayOfWeek) {
		return fmt.Errorf("%w: %q is not a day of the week", ErrValidationFailed, input.DayOfWeek)
	}
	for i, ex := range input.Exercises {
		if ex.Reps < 0 || ex.Sets < 0 {
			return fmt.Errorf("%w: exercise %d has negative reps or sets", ErrValidationFailed, i)
		}
	}
	return nil
}

func (s *dayService) CreateDay(ctx context.Context, input DayInput) (*domain.WorkoutDay, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	day := &domain.WorkoutDay{
		Name:      input.Name,
		DayOfWeek: input.DayOfWeek,
		Exercises: input.Exercises,
	}
	created, err := s.dayRepo.Create(ctx, day)
	if err != nil {
		s.logger.Error("create workout day failed", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *dayService) GetDay(ctx context.Context, id string) (*domain.WorkoutDay, error) {
	day, err := s.dayRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDayNotFound
		}
		return nil, err
	}
	return day, nil
}

func (s *dayService) ListDays(ctx context.Context) ([]domain.WorkoutDay, error) {
	return s.dayRepo.GetAll(ctx)
}

// UpdateDay replaces the stored day wholesale, then re-reads it from storage
// so the caller observes server-assigned defaults (generated instance ids)
// rather than an echo of the request payload.
func (s *dayService) UpdateDay(ctx context.Context, id string, input DayInput) (*domain.WorkoutDay, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	day := &domain.WorkoutDay{
		Name:      input.Name,
		DayOfWeek: input.DayOfWeek,
		Exercises: input.Exercises,
	}
	if err := s.dayRepo.Replace(ctx, id, day); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDayNotFound
		}
		s.logger.Error("replace workout day failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	updated, err := s.dayRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload workout day after update: %w", err)
	}
	return updated, nil
}

func (s *dayService) DeleteDay(ctx context.Context, id string) error {
	if err := s.dayRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrDayNotFound
		}
		s.logger.Error("delete workout day failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}
