package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/JC-Quero/gym-tracker/internal/entity"
	"github.com/JC-Quero/gym-tracker/internal/repository"
)

func newWorkoutService(t *testing.T) (*WorkoutService, *sql.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewWorkoutService(*repository.NewWorkoutRepository(db)), db
}

func seedUserAndExercise(t *testing.T, db *sql.DB) (int, int) {
	t.Helper()
	res, err := db.Exec(`INSERT INTO users (username, role, hashed_password) VALUES ('ana', 'alumno', 'x')`)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	userID, _ := res.LastInsertId()

	res, err = db.Exec(`INSERT INTO exercises (name, category) VALUES ('Squat', 'legs')`)
	if err != nil {
		t.Fatalf("seed exercise: %v", err)
	}
	exerciseID, _ := res.LastInsertId()
	return int(userID), int(exerciseID)
}

func TestCreateWorkoutDefaultsDateToToday(t *testing.T) {
	svc, db := newWorkoutService(t)
	userID, exerciseID := seedUserAndExercise(t, db)

	workout, err := svc.CreateWorkout(context.Background(), userID, nil, []entity.Set{
		{ExerciseID: exerciseID, Reps: 5, Weight: 100, RPE: 8},
	})
	if err != nil {
		t.Fatalf("CreateWorkout failed: %v", err)
	}

	today := time.Now().Format("2006-01-02")
	if workout.Date != today {
		t.Errorf("date = %q, want %q", workout.Date, today)
	}
}

func TestCreateWorkoutValidatesRPERange(t *testing.T) {
	svc, db := newWorkoutService(t)
	userID, exerciseID := seedUserAndExercise(t, db)

	for _, rpe := range []int{0, 11, -3} {
		_, err := svc.CreateWorkout(context.Background(), userID, nil, []entity.Set{
			{ExerciseID: exerciseID, Reps: 5, Weight: 100, RPE: rpe},
		})
		var validationErr *entity.ValidationError
		if !errors.As(err, &validationErr) {
			t.Errorf("rpe %d: expected ValidationError, got %v", rpe, err)
			continue
		}
		if validationErr.Field != "rpe" {
			t.Errorf("rpe %d: expected rpe field, got %q", rpe, validationErr.Field)
		}
	}
}

func TestCreateWorkoutValidatesReps(t *testing.T) {
	svc, db := newWorkoutService(t)
	userID, exerciseID := seedUserAndExercise(t, db)

	_, err := svc.CreateWorkout(context.Background(), userID, nil, []entity.Set{
		{ExerciseID: exerciseID, Reps: 0, Weight: 100, RPE: 8},
	})
	var validationErr *entity.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestListWorkoutsClampsPaging(t *testing.T) {
	svc, db := newWorkoutService(t)
	userID, _ := seedUserAndExercise(t, db)

	if _, err := svc.CreateWorkout(context.Background(), userID, nil, nil); err != nil {
		t.Fatalf("CreateWorkout failed: %v", err)
	}

	workouts, err := svc.ListWorkouts(context.Background(), -5, 0)
	if err != nil {
		t.Fatalf("ListWorkouts failed: %v", err)
	}
	if len(workouts) != 1 {
		t.Errorf("expected 1 workout, got %d", len(workouts))
	}
}
