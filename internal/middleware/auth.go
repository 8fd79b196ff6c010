package middleware

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/popeskul/whatsapp-assistant/internal/api"
	"github.com/popeskul/whatsapp-assistant/internal/auth"
)

const AdminSubjectKey contextKey = "adminSubject"

// TokenParser validates a bearer token and returns its subject.
type TokenParser interface {
	Parse(token string) (string, error)
}

// Auth guards operations that declare bearer security. Other routes pass through.
func Auth(tokens TokenParser, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := r.Context().Value(api.BearerAuthScopes).([]string); !ok {
				next.ServeHTTP(w, r)
				return
			}

			token, err := auth.BearerToken(r.Header.Get("Authorization"))
			var subject string
			if err == nil {
				subject, err = tokens.Parse(token)
			}
			if err != nil {
				logger.Debug("Rejected admin request",
					zap.String("path", r.URL.Path),
					zap.String("request_id", GetRequestID(r.Context())),
					zap.Error(err))
				w.Header().Set("WWW-Authenticate", "Bearer")
				WriteError(w, r, http.StatusUnauthorized, ErrorCodeUnauthorized, ErrorMessageUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), AdminSubjectKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetAdminSubject(ctx context.Context) string {
	if subject, ok := ctx.Value(AdminSubjectKey).(string); ok {
		return subject
	}
	return ""
}
