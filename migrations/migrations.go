package migrations

import (
	"database/sql"
	"fmt"
	"time"
)

// Supported SQL dialects. MySQL is used when DATABASE_URL is set,
// SQLite is the embedded fallback.
const (
	DialectMySQL  = "mysql"
	DialectSQLite = "sqlite"
)

var mysqlStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INT AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(50) NOT NULL UNIQUE,
		role VARCHAR(20) NOT NULL DEFAULT 'alumno',
		hashed_password VARCHAR(255) NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS exercises (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL UNIQUE,
		category VARCHAR(50) NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS workouts (
		id INT AUTO_INCREMENT PRIMARY KEY,
		user_id INT NOT NULL,
		date DATE NOT NULL,
		notes TEXT,
		INDEX idx_workouts_user_date (user_id, date),
		FOREIGN KEY (user_id) REFERENCES users(id)
	);`,
	`CREATE TABLE IF NOT EXISTS sets (
		id INT AUTO_INCREMENT PRIMARY KEY,
		workout_id INT NOT NULL,
		exercise_id INT NOT NULL,
		reps INT NOT NULL,
		weight DOUBLE NOT NULL,
		rpe INT NOT NULL,
		INDEX idx_sets_exercise (exercise_id),
		FOREIGN KEY (workout_id) REFERENCES workouts(id) ON DELETE CASCADE,
		FOREIGN KEY (exercise_id) REFERENCES exercises(id)
	);`,
}

var sqliteStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		role TEXT NOT NULL DEFAULT 'alumno',
		hashed_password TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS exercises (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		category TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS workouts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		date TEXT NOT NULL,
		notes TEXT,
		FOREIGN KEY (user_id) REFERENCES users(id)
	);`,
	`CREATE TABLE IF NOT EXISTS sets (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		workout_id INTEGER NOT NULL,
		exercise_id INTEGER NOT NULL,
		reps INTEGER NOT NULL,
		weight REAL NOT NULL,
		rpe INTEGER NOT NULL,
		FOREIGN KEY (workout_id) REFERENCES workouts(id) ON DELETE CASCADE,
		FOREIGN KEY (exercise_id) REFERENCES exercises(id)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_workouts_user_date ON workouts(user_id, date DESC);`,
	`CREATE INDEX IF NOT EXISTS idx_sets_exercise ON sets(exercise_id);`,
}

// AutoMigrate creates the schema for the given dialect if it does not exist.
func AutoMigrate(retries int, dialect string, db *sql.DB) error {
	var statements []string
	switch dialect {
	case DialectMySQL:
		statements = mysqlStatements
	case DialectSQLite:
		statements = sqliteStatements
	default:
		return fmt.Errorf("unknown dialect: %q", dialect)
	}

	for _, query := range statements {
		_, err := db.Exec(query)
		if err != nil {
			// Retry creating the table
			for i := 0; i < retries; i++ {
				time.Sleep(1 * time.Second)
				_, err = db.Exec(query)
				if err == nil {
					break
				}
			}
		}
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
