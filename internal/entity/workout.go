package entity

type Workout struct {
	ID     int     `json:"id"`
	UserID int     `json:"user_id"`
	Date   string  `json:"date"` // YYYY-MM-DD, defaults to creation day
	Notes  *string `json:"notes"`
	Sets   []Set   `json:"sets"`
}

type Set struct {
	ID         int       `json:"id"`
	WorkoutID  int       `json:"workout_id"`
	ExerciseID int       `json:"exercise_id"`
	Reps       int       `json:"reps"`
	Weight     float64   `json:"weight"`
	RPE        int       `json:"rpe"`
	Exercise   *Exercise `json:"exercise,omitempty"`
}

// ExerciseHistory is the most recent set a user recorded for one exercise.
// Found is always true here; a miss is reported as a bare {"found": false}.
type ExerciseHistory struct {
	Found  bool    `json:"found"`
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
	RPE    int     `json:"rpe"`
	Date   string  `json:"date"`
}

/*
Mysql Schema:

CREATE TABLE workouts (
	id INT AUTO_INCREMENT PRIMARY KEY,
	user_id INT NOT NULL,
	date DATE NOT NULL,
	notes TEXT,
	FOREIGN KEY (user_id) REFERENCES users(id)
);

CREATE TABLE sets (
	id INT AUTO_INCREMENT PRIMARY KEY,
	workout_id INT NOT NULL,
	exercise_id INT NOT NULL,
	reps INT NOT NULL,
	weight DOUBLE NOT NULL,
	rpe INT NOT NULL,
	FOREIGN KEY (workout_id) REFERENCES workouts(id) ON DELETE CASCADE,
	FOREIGN KEY (exercise_id) REFERENCES exercises(id)
);
*/
