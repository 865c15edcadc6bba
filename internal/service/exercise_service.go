package service

import (
	"context"

	"github.com/JC-Quero/gym-tracker/internal/entity"
	"github.com/JC-Quero/gym-tracker/internal/repository"
)

type ExerciseService struct {
	repo repository.ExerciseRepository
}

// NewExerciseService creates a new instance of ExerciseService.
func NewExerciseService(repo repository.ExerciseRepository) *ExerciseService {
	return &ExerciseService{repo: repo}
}

func (s *ExerciseService) CreateExercise(ctx context.Context, name, category string) (*entity.Exercise, error) {
	if name == "" {
		return nil, &entity.ValidationError{Field: "name", Reason: "required"}
	}
	if category == "" {
		return nil, &entity.ValidationError{Field: "category", Reason: "required"}
	}

	exercise := &entity.Exercise{Name: name, Category: category}
	createdExercise, err := s.repo.CreateExercise(ctx, exercise)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating exercise")
		return nil, err
	}
	return createdExercise, nil
}

func (s *ExerciseService) ListExercises(ctx context.Context) ([]entity.Exercise, error) {
	exercises, err := s.repo.ListExercises(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing exercises")
		return nil, err
	}
	return exercises, nil
}
