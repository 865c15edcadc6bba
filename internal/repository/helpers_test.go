package repository

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/JC-Quero/gym-tracker/migrations"
)

// setupTestDB opens a throwaway SQLite store with the full schema applied.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "gym.db")
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?_pragma=foreign_keys(1)", path))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := migrations.AutoMigrate(0, migrations.DialectSQLite, db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *sql.DB, username string) int {
	t.Helper()
	res, err := db.Exec(`INSERT INTO users (username, role, hashed_password) VALUES (?, 'alumno', 'x')`, username)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	id, _ := res.LastInsertId()
	return int(id)
}

func seedExercise(t *testing.T, db *sql.DB, name, category string) int {
	t.Helper()
	res, err := db.Exec(`INSERT INTO exercises (name, category) VALUES (?, ?)`, name, category)
	if err != nil {
		t.Fatalf("seed exercise: %v", err)
	}
	id, _ := res.LastInsertId()
	return int(id)
}

func seedWorkout(t *testing.T, db *sql.DB, userID int, date string) int {
	t.Helper()
	res, err := db.Exec(`INSERT INTO workouts (user_id, date) VALUES (?, ?)`, userID, date)
	if err != nil {
		t.Fatalf("seed workout: %v", err)
	}
	id, _ := res.LastInsertId()
	return int(id)
}

func seedSet(t *testing.T, db *sql.DB, workoutID, exerciseID, reps int, weight float64, rpe int) int {
	t.Helper()
	res, err := db.Exec(`INSERT INTO sets (workout_id, exercise_id, reps, weight, rpe) VALUES (?, ?, ?, ?, ?)`,
		workoutID, exerciseID, reps, weight, rpe)
	if err != nil {
		t.Fatalf("seed set: %v", err)
	}
	id, _ := res.LastInsertId()
	return int(id)
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}
