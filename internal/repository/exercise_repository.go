package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/JC-Quero/gym-tracker/internal/entity"
)

type ExerciseRepository struct {
	db *sql.DB
}

func NewExerciseRepository(db *sql.DB) *ExerciseRepository {
	return &ExerciseRepository{db}
}

func (r *ExerciseRepository) CreateExercise(ctx context.Context, exercise *entity.Exercise) (*entity.Exercise, error) {
	query := `INSERT INTO exercises (name, category) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, query, exercise.Name, exercise.Category)
	if err != nil {
		return nil, translateDBError(err, "exercise", "name")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	exercise.ID = int(id)
	return exercise, nil
}

func (r *ExerciseRepository) ListExercises(ctx context.Context) ([]entity.Exercise, error) {
	query := `SELECT id, name, category FROM exercises`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := []entity.Exercise{}
	for rows.Next() {
		exercise := entity.Exercise{}
		if err := rows.Scan(&exercise.ID, &exercise.Name, &exercise.Category); err != nil {
			return nil, err
		}
		exercises = append(exercises, exercise)
	}
	return exercises, rows.Err()
}

func (r *ExerciseRepository) GetExerciseByID(ctx context.Context, id int) (*entity.Exercise, error) {
	exercise := &entity.Exercise{}
	query := `SELECT id, name, category FROM exercises WHERE id = ?`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&exercise.ID, &exercise.Name, &exercise.Category)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &entity.NotFoundError{Entity: "exercise", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return exercise, nil
}
