package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/JC-Quero/gym-tracker/internal/service"
)

type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new instance of ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// CreateExercise creates a new exercise --> POST /exercises/
func (h *ExerciseHandler) CreateExercise(c echo.Context) error {
	req := CreateExerciseRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	exercise, err := h.exerciseService.CreateExercise(c.Request().Context(), req.Name, req.Category)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, exercise)
}

// ListExercises lists all exercises --> GET /exercises/
func (h *ExerciseHandler) ListExercises(c echo.Context) error {
	exercises, err := h.exerciseService.ListExercises(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, exercises)
}
