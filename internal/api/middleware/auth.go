package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/lamasat/salon-booking-service/internal/api/handlers"
)

// AdminTokenHeader заголовок с токеном админки
const AdminTokenHeader = "X-Admin-Token"

// AdminAuth проверяет токен админки в заголовке X-Admin-Token.
// Сравнение токенов выполняется за постоянное время.
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(AdminTokenHeader)

			if token == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				handlers.RespondUnauthorized(w, "invalid admin token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
