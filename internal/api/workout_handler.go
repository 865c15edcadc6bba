package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/JC-Quero/gym-tracker/internal/entity"
	"github.com/JC-Quero/gym-tracker/internal/service"
)

type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new instance of WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// CreateWorkout creates a workout with nested sets --> POST /workouts/
func (h *WorkoutHandler) CreateWorkout(c echo.Context) error {
	req := CreateWorkoutRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}
	if req.UserID == nil {
		return writeError(c, &entity.ValidationError{Field: "user_id", Reason: "required"})
	}

	sets := make([]entity.Set, 0, len(req.Sets))
	for _, setReq := range req.Sets {
		switch {
		case setReq.ExerciseID == nil:
			return writeError(c, &entity.ValidationError{Field: "exercise_id", Reason: "required"})
		case setReq.Reps == nil:
			return writeError(c, &entity.ValidationError{Field: "reps", Reason: "required"})
		case setReq.Weight == nil:
			return writeError(c, &entity.ValidationError{Field: "weight", Reason: "required"})
		case setReq.RPE == nil:
			return writeError(c, &entity.ValidationError{Field: "rpe", Reason: "required"})
		}
		sets = append(sets, entity.Set{
			ExerciseID: *setReq.ExerciseID,
			Reps:       *setReq.Reps,
			Weight:     *setReq.Weight,
			RPE:        *setReq.RPE,
		})
	}

	workout, err := h.workoutService.CreateWorkout(c.Request().Context(), *req.UserID, req.Notes, sets)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, workout)
}

// ListWorkouts lists workouts with paging --> GET /workouts/?skip&limit
func (h *WorkoutHandler) ListWorkouts(c echo.Context) error {
	skip, _ := strconv.Atoi(c.QueryParam("skip"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	workouts, err := h.workoutService.ListWorkouts(c.Request().Context(), skip, limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, workouts)
}

// ListUserWorkouts lists one user's workouts, most recent first
// --> GET /workouts/user/:user_id
func (h *WorkoutHandler) ListUserWorkouts(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid user ID"})
	}

	workouts, err := h.workoutService.ListUserWorkouts(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, workouts)
}

// DeleteWorkout deletes a workout and its sets --> DELETE /workouts/:workout_id
func (h *WorkoutHandler) DeleteWorkout(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("workout_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid workout ID"})
	}

	if err := h.workoutService.DeleteWorkout(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// GetExerciseHistory returns the most recent set for a user and exercise
// --> GET /history/:user_id/:exercise_id
func (h *WorkoutHandler) GetExerciseHistory(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid user ID"})
	}
	exerciseID, err := strconv.Atoi(c.Param("exercise_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid exercise ID"})
	}

	history, err := h.workoutService.GetExerciseHistory(c.Request().Context(), userID, exerciseID)
	if err != nil {
		return writeError(c, err)
	}
	if history == nil {
		return c.JSON(http.StatusOK, echo.Map{"found": false})
	}
	return c.JSON(http.StatusOK, history)
}
