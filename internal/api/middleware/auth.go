package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/consultafacil/CF-SchedulingService/internal/api/handlers"
	"github.com/consultafacil/CF-SchedulingService/internal/domain"
)

// Заголовки личности, проставляемые шлюзом аутентификации перед нами.
// Сервис доверяет им: проверка подписи токена - зона ответственности шлюза.
const (
	HeaderUserID    = "X-User-ID"
	HeaderUserRoles = "X-User-Roles"
)

const (
	msgMissingIdentity = "запрос без аутентифицированной личности"
	msgInvalidIdentity = "некорректные данные личности"
)

type contextKey string

const userContextKey contextKey = "user"

// Auth извлекает аутентифицированную личность из заголовков запроса
// и кладет её в контекст. Запросы без личности отклоняются с 401.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		idStr := r.Header.Get(HeaderUserID)
		rolesStr := r.Header.Get(HeaderUserRoles)

		if idStr == "" || rolesStr == "" {
			handlers.RespondUnauthorized(w, msgMissingIdentity)
			return
		}

		userID, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgInvalidIdentity)
			return
		}

		var roles []domain.Role
		for _, raw := range strings.Split(rolesStr, ",") {
			role, ok := domain.ParseRole(strings.TrimSpace(raw))
			if !ok {
				handlers.RespondUnauthorized(w, msgInvalidIdentity)
				return
			}
			roles = append(roles, role)
		}

		user := &domain.User{ID: userID, Roles: roles}
		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserFromContext возвращает личность, положенную middleware Auth
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userContextKey).(*domain.User)
	return user, ok
}

// WithUser кладет личность в контекст. Используется в тестах хендлеров.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}
