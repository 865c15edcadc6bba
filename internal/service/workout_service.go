package service

import (
	"context"
	"time"

	"github.com/JC-Quero/gym-tracker/internal/entity"
	"github.com/JC-Quero/gym-tracker/internal/repository"
)

const defaultListLimit = 100

// WorkoutService provides workout aggregate operations and history lookups.
type WorkoutService struct {
	repo repository.WorkoutRepository
}

// NewWorkoutService creates a new instance of WorkoutService.
func NewWorkoutService(repo repository.WorkoutRepository) *WorkoutService {
	return &WorkoutService{repo: repo}
}

// CreateWorkout validates the set entries and persists the workout together
// with its sets as one unit. The date defaults to today.
func (s *WorkoutService) CreateWorkout(ctx context.Context, userID int, notes *string, sets []entity.Set) (*entity.Workout, error) {
	for _, set := range sets {
		if set.Reps <= 0 {
			return nil, &entity.ValidationError{Field: "reps", Reason: "must be a positive integer"}
		}
		if set.Weight < 0 {
			return nil, &entity.ValidationError{Field: "weight", Reason: "must not be negative"}
		}
		if set.RPE < 1 || set.RPE > 10 {
			return nil, &entity.ValidationError{Field: "rpe", Reason: "must be between 1 and 10"}
		}
	}

	workout := &entity.Workout{
		UserID: userID,
		Date:   time.Now().Format("2006-01-02"),
		Notes:  notes,
		Sets:   sets,
	}

	createdWorkout, err := s.repo.CreateWorkout(ctx, workout)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating workout")
		return nil, err
	}
	return createdWorkout, nil
}

// ListWorkouts returns all workouts with offset/limit paging.
func (s *WorkoutService) ListWorkouts(ctx context.Context, skip, limit int) ([]entity.Workout, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}

	workouts, err := s.repo.ListWorkouts(ctx, skip, limit)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing workouts")
		return nil, err
	}
	return workouts, nil
}

// ListUserWorkouts returns one user's workouts, most recent first.
func (s *WorkoutService) ListUserWorkouts(ctx context.Context, userID int) ([]entity.Workout, error) {
	workouts, err := s.repo.ListWorkoutsByUser(ctx, userID)
	if err != nil {
		logger.Error().Err(err).Msgf("Error listing workouts for user %d", userID)
		return nil, err
	}
	return workouts, nil
}

// DeleteWorkout removes a workout and its sets.
func (s *WorkoutService) DeleteWorkout(ctx context.Context, id int) error {
	if err := s.repo.DeleteWorkout(ctx, id); err != nil {
		logger.Error().Err(err).Msgf("Error deleting workout %d", id)
		return err
	}
	return nil
}

// GetExerciseHistory returns the most recent set for a (user, exercise)
// pair, or nil when none is recorded. Absence is not an error.
func (s *WorkoutService) GetExerciseHistory(ctx context.Context, userID, exerciseID int) (*entity.ExerciseHistory, error) {
	history, err := s.repo.GetExerciseHistory(ctx, userID, exerciseID)
	if err != nil {
		logger.Error().Err(err).Msgf("Error getting history for user %d exercise %d", userID, exerciseID)
		return nil, err
	}
	return history, nil
}
