package middleware

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/api/apierr"
)

// AdminGate requires the configured admin password on mutating routes.
// With no hash configured the gate is open and mutations are assumed
// pre-authorized by the caller.
func AdminGate(passwordHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if passwordHash == "" {
				next.ServeHTTP(w, r)
				return
			}

			password := r.Header.Get("X-Admin-Password")
			if password == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)); err != nil {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
