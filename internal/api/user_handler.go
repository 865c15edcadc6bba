package api

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/JC-Quero/gym-tracker/internal/service"
)

type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new instance of UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUser creates a new user --> POST /users/
func (h *UserHandler) CreateUser(c echo.Context) error {
	req := CreateUserRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	user, err := h.userService.CreateUser(c.Request().Context(), req.Username, req.Password, req.Role)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, user)
}

// ListUsers lists all users --> GET /users/
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// Me returns the authenticated user --> GET /users/me
func (h *UserHandler) Me(c echo.Context) error {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	claims, ok := token.Claims.(*service.TokenClaims)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	user, err := h.userService.GetUserByID(c.Request().Context(), claims.UserID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// Token exchanges form-encoded credentials for a bearer token --> POST /token
func (h *UserHandler) Token(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	user, token, err := h.userService.Login(c.Request().Context(), username, password)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		UserID:      user.ID,
		Username:    user.Username,
	})
}
