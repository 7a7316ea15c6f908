package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/hexenjaeger/clanledger/pkg/utils"
)

type ContextKey string

const (
	UserKey       ContextKey = "user"
	FullAccessKey ContextKey = "fullAccess"
)

// Gate authenticates API requests with a session token minted after the
// external verification step. A bcrypt-checked basic-auth admin fallback
// grants full access. When disabled every request passes with full access.
type Gate struct {
	enabled   bool
	adminHash string
	jwt       JWTServiceInterface
	hash      HashServiceInterface
}

func NewGate(enabled bool, adminHash string) *Gate {
	return &Gate{
		enabled:   enabled,
		adminHash: adminHash,
		jwt:       &JWTService{},
		hash:      &HashService{},
	}
}

func (g *Gate) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !g.enabled {
			ctx := withIdentity(r.Context(), "local", true)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		if user, ok := g.checkBasicAuth(r); ok {
			ctx := withIdentity(r.Context(), user, true)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := g.jwt.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := withIdentity(r.Context(), claims.User, claims.FullAccess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (g *Gate) RequireFullAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fullAccess, _ := r.Context().Value(FullAccessKey).(bool)
		if !fullAccess {
			utils.RespondWithError(w, http.StatusForbidden, "Full access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (g *Gate) checkBasicAuth(r *http.Request) (string, bool) {
	if g.adminHash == "" {
		return "", false
	}
	user, password, ok := r.BasicAuth()
	if !ok {
		return "", false
	}
	if !g.hash.ComparePassword(g.adminHash, password) {
		return "", false
	}
	return user, true
}

func withIdentity(ctx context.Context, user string, fullAccess bool) context.Context {
	ctx = context.WithValue(ctx, UserKey, user)
	return context.WithValue(ctx, FullAccessKey, fullAccess)
}
