package handler

import (
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/mgeorge47/canteen-console-api/internal/usecases/authenticating"
	"github.com/mgeorge47/canteen-console-api/internal/usecases/reporting"
	"github.com/mgeorge47/canteen-console-api/pkg/apiErrors"
	"github.com/mgeorge47/canteen-console-api/pkg/log"
	"github.com/mgeorge47/canteen-console-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request format", nil)
			return
		}

		if req.Username == "" || req.Password == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Username and password are required", nil)
			return
		}

		token, err := service.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, authenticating.ErrInvalidCredentials) {
				logger.WithField("username", req.Username).Warn("auth: login rejected")
				apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Invalid credentials", nil)
				return
			}

			writeServiceError(w, logger, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(LoginResponse{
			Token:    token,
			Username: req.Username,
		})
	}
}

func Logout(service authenticating.Authenticator, views *reporting.ViewRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		sess := middleware.SessionFromContext(r.Context())
		if sess == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingSessionToken, "Not authenticated", nil)
			return
		}

		views.Drop(sess.ID)

		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if err := service.Logout(r.Context(), token); err != nil {
			writeServiceError(w, logger, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GetMe returns the authenticated session's profile
func GetMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := middleware.SessionFromContext(r.Context())
		if sess == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingSessionToken, "Not authenticated", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"username":   sess.Username,
			"created_at": sess.CreatedAt,
		})
	}
}
