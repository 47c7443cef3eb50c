package identity

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"shortlink/internal/domain/models"
	"shortlink/internal/http/httputils"
)

type ctxKeyType int

const ctxKeyIdentity ctxKeyType = iota

const bearerPrefix = "Bearer "

// Middleware один раз разбирает заголовки идентификации и кладет явный
// *models.Identity в контекст запроса. Ядро заголовков не видит:
// хендлеры передают Identity в сервисы обычным параметром.
// Отсутствие или кривые заголовки дают анонимный запрос - решать,
// достаточно ли этого, будет конкретная операция.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ident := parseHeaders(r)
			if ident != nil {
				ctx := context.WithValue(r.Context(), ctxKeyIdentity, ident)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// FromContext возвращает идентификацию вызывающего, nil для анонима
func FromContext(ctx context.Context) *models.Identity {
	ident, _ := ctx.Value(ctxKeyIdentity).(*models.Identity)
	return ident
}

func parseHeaders(r *http.Request) *models.Identity {
	rawID := r.Header.Get(httputils.HeaderUserID)
	authHeader := r.Header.Get(httputils.HeaderAuthorization)
	if rawID == "" || !strings.HasPrefix(authHeader, bearerPrefix) {
		return nil
	}

	userID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || userID <= 0 {
		return nil
	}

	token := strings.TrimPrefix(authHeader, bearerPrefix)
	if token == "" {
		return nil
	}

	return &models.Identity{UserID: userID, Token: token}
}
