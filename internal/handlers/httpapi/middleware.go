package httpapi

import (
	"net/http"
	"strings"

	"github.com/forgebound/forge-api/internal/entities"
	"github.com/forgebound/forge-api/internal/errors"
	"github.com/forgebound/forge-api/internal/services/auth"
)

// authedHandler is a handler that runs with a resolved user.
type authedHandler func(w http.ResponseWriter, r *http.Request, user *entities.User)

// requireAuth resolves the bearer token before invoking next.
func (h *Handler) requireAuth(next authedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			writeError(w, r, errors.Unauthenticated("missing bearer token"))
			return
		}

		out, err := h.authService.Authenticate(r.Context(), &auth.AuthenticateInput{Token: token})
		if err != nil {
			writeError(w, r, err)
			return
		}

		next(w, r, out.User)
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
