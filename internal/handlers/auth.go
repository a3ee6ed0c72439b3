package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spring-security-spring-cloud/auth-service/internal/service"
)

// AuthHandler handles authentication HTTP requests.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignupRequest represents the signup request payload.
type SignupRequest struct {
	Username string   `json:"username" binding:"required"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required"`
	Roles    []string `json:"roles"`
}

// SigninRequest represents the signin request payload.
type SigninRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup godoc
// @Summary Register a new user
// @Description Create a user account with an optional set of role names
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup payload"
// @Success 200 {object} ServiceResponse
// @Failure 400 {object} ServiceResponse
// @Failure 500 {object} ServiceResponse
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Error: "+err.Error())
		return
	}

	err := h.authService.Register(c.Request.Context(), req.Username, req.Email, req.Password, req.Roles)
	switch {
	case err == nil:
		respond(c, http.StatusOK, "User registered successfully!", nil)
	case errors.Is(err, service.ErrUsernameTaken):
		respondError(c, http.StatusBadRequest, "Error: Username is already taken!")
	case errors.Is(err, service.ErrEmailTaken):
		respondError(c, http.StatusBadRequest, "Error: Email is already in use!")
	case errors.Is(err, service.ErrRoleNotFound):
		logAndRespondError(c, http.StatusInternalServerError, err, "Error: Role is not found.")
	default:
		logAndRespondError(c, http.StatusInternalServerError, err, "Error: registration failed")
	}
}

// Signin godoc
// @Summary Authenticate a user
// @Description Verify credentials and return a signed token with the user's identity and roles
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SigninRequest true "Signin credentials"
// @Success 200 {object} ServiceResponse
// @Failure 400 {object} ServiceResponse
// @Failure 401 {object} ServiceResponse
// @Router /auth/signin [post]
func (h *AuthHandler) Signin(c *gin.Context) {
	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Error: "+err.Error())
		return
	}

	response, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Same response for unknown user and wrong password.
			respondError(c, http.StatusUnauthorized, "Error: Bad credentials")
			return
		}
		logAndRespondError(c, http.StatusInternalServerError, err, "Error: authentication failed")
		return
	}

	respond(c, http.StatusOK, "data fetched successfully", response)
}
