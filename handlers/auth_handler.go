package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Dosada05/swiss-tournament/middleware"
	"github.com/Dosada05/swiss-tournament/services"
	"github.com/golang-jwt/jwt/v4"
)

const organizerTokenTTL = 12 * time.Hour

type AuthHandler struct {
	authService services.AuthService
	jwtSecret   []byte
	now         func() time.Time
}

func NewAuthHandler(authService services.AuthService, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		jwtSecret:   []byte(jwtSecret),
		now:         time.Now,
	}
}

type loginInput struct {
	Password string `json:"password"`
}

// Login godoc
// @Summary Organizer login
// @Tags auth
// @Accept json
// @Produce json
// @Param body body loginInput true "Organizer password"
// @Success 200 {object} map[string]string "Bearer token"
// @Failure 400 {object} map[string]string "Missing password"
// @Failure 401 {object} map[string]string "Wrong password"
// @Failure 503 {object} map[string]string "Login not configured"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input loginInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if input.Password == "" {
		badRequestResponse(w, r, errors.New("password is required"))
		return
	}

	if err := h.authService.Login(r.Context(), input.Password); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	now := h.now()
	claims := jwt.MapClaims{
		"sub":  middleware.RoleOrganizer,
		"role": middleware.RoleOrganizer,
		"exp":  now.Add(organizerTokenTTL).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(h.jwtSecret)
	if err != nil {
		serverErrorResponse(w, r, fmt.Errorf("failed to sign token: %w", err))
		return
	}

	response := jsonResponse{
		"token":      tokenString,
		"expires_at": now.Add(organizerTokenTTL).UTC(),
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
