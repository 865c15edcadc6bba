package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/JC-Quero/gym-tracker/internal/entity"
)

type WorkoutRepository struct {
	db *sql.DB
}

func NewWorkoutRepository(db *sql.DB) *WorkoutRepository {
	return &WorkoutRepository{db}
}

// CreateWorkout persists a workout and its sets as one transaction. The
// workout id must exist before any set row references it, so the parent
// insert runs first; any failure rolls the whole unit back.
func (r *WorkoutRepository) CreateWorkout(ctx context.Context, workout *entity.Workout) (*entity.Workout, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	workoutQuery := `INSERT INTO workouts (user_id, date, notes) VALUES (?, ?, ?)`
	res, err := tx.ExecContext(ctx, workoutQuery, workout.UserID, workout.Date, workout.Notes)
	if err != nil {
		tx.Rollback()
		return nil, translateDBError(err, "user", "")
	}

	workoutID, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	setQuery := `INSERT INTO sets (workout_id, exercise_id, reps, weight, rpe) VALUES (?, ?, ?, ?, ?)`
	for i := range workout.Sets {
		set := &workout.Sets[i]
		res, err := tx.ExecContext(ctx, setQuery, workoutID, set.ExerciseID, set.Reps, set.Weight, set.RPE)
		if err != nil {
			tx.Rollback()
			return nil, translateDBError(err, "exercise", "")
		}
		setID, err := res.LastInsertId()
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		set.ID = int(setID)
		set.WorkoutID = int(workoutID)
	}

	err = tx.Commit()
	if err != nil {
		return nil, err
	}

	workout.ID = int(workoutID)
	if workout.Sets == nil {
		workout.Sets = []entity.Set{}
	}
	return workout, nil
}

// ListWorkouts returns workouts in storage order with offset/limit paging.
func (r *WorkoutRepository) ListWorkouts(ctx context.Context, skip, limit int) ([]entity.Workout, error) {
	query := `SELECT id, user_id, date, notes FROM workouts ORDER BY id LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, query, limit, skip)
	if err != nil {
		return nil, err
	}
	return r.collectWorkouts(ctx, rows)
}

// ListWorkoutsByUser returns one user's workouts, most recent first. Ties on
// date go to the higher id, i.e. the later-created workout.
func (r *WorkoutRepository) ListWorkoutsByUser(ctx context.Context, userID int) ([]entity.Workout, error) {
	query := `SELECT id, user_id, date, notes FROM workouts WHERE user_id = ? ORDER BY date DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return r.collectWorkouts(ctx, rows)
}

func (r *WorkoutRepository) collectWorkouts(ctx context.Context, rows *sql.Rows) ([]entity.Workout, error) {
	defer rows.Close()

	workouts := []entity.Workout{}
	for rows.Next() {
		workout := entity.Workout{}
		if err := rows.Scan(&workout.ID, &workout.UserID, &workout.Date, &workout.Notes); err != nil {
			return nil, err
		}
		workouts = append(workouts, workout)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range workouts {
		sets, err := r.listSets(ctx, workouts[i].ID)
		if err != nil {
			return nil, err
		}
		workouts[i].Sets = sets
	}
	return workouts, nil
}

func (r *WorkoutRepository) listSets(ctx context.Context, workoutID int) ([]entity.Set, error) {
	query := `
		SELECT s.id, s.workout_id, s.exercise_id, s.reps, s.weight, s.rpe, e.id, e.name, e.category
		FROM sets s
		JOIN exercises e ON e.id = s.exercise_id
		WHERE s.workout_id = ?`
	rows, err := r.db.QueryContext(ctx, query, workoutID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sets := []entity.Set{}
	for rows.Next() {
		set := entity.Set{Exercise: &entity.Exercise{}}
		err := rows.Scan(&set.ID, &set.WorkoutID, &set.ExerciseID, &set.Reps, &set.Weight, &set.RPE,
			&set.Exercise.ID, &set.Exercise.Name, &set.Exercise.Category)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	return sets, rows.Err()
}

// DeleteWorkout removes a workout and its sets as one transaction.
func (r *WorkoutRepository) DeleteWorkout(ctx context.Context, id int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	var workoutID int
	err = tx.QueryRowContext(ctx, `SELECT id FROM workouts WHERE id = ?`, id).Scan(&workoutID)
	if errors.Is(err, sql.ErrNoRows) {
		tx.Rollback()
		return &entity.NotFoundError{Entity: "workout", ID: id}
	}
	if err != nil {
		tx.Rollback()
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM sets WHERE workout_id = ?`, id); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM workouts WHERE id = ?`, id); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

// GetExerciseHistory finds the most recent set a user recorded for an
// exercise. Evaluated as one query so only the winning row is loaded.
// Returns (nil, nil) when the user has no sets for the exercise.
func (r *WorkoutRepository) GetExerciseHistory(ctx context.Context, userID, exerciseID int) (*entity.ExerciseHistory, error) {
	query := `
		SELECT s.weight, s.reps, s.rpe, w.date
		FROM sets s
		JOIN workouts w ON w.id = s.workout_id
		WHERE w.user_id = ? AND s.exercise_id = ?
		ORDER BY w.date DESC, w.id DESC, s.id DESC
		LIMIT 1`

	history := &entity.ExerciseHistory{Found: true}
	err := r.db.QueryRowContext(ctx, query, userID, exerciseID).
		Scan(&history.Weight, &history.Reps, &history.RPE, &history.Date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return history, nil
}
