package api

// CreateUserRequest creates a new user. Role falls back to the default
// student role when omitted.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// CreateExerciseRequest creates a new exercise.
type CreateExerciseRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// SetRequest is one set entry inside a workout creation. Numeric fields are
// pointers so an omitted field can be told apart from a zero.
type SetRequest struct {
	ExerciseID *int     `json:"exercise_id"`
	Reps       *int     `json:"reps"`
	Weight     *float64 `json:"weight"`
	RPE        *int     `json:"rpe"`
}

// CreateWorkoutRequest creates a workout together with its sets.
type CreateWorkoutRequest struct {
	UserID *int         `json:"user_id"`
	Notes  *string      `json:"notes"`
	Sets   []SetRequest `json:"sets"`
}

// TokenResponse is returned by the token endpoint.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      int    `json:"user_id"`
	Username    string `json:"username"`
}
