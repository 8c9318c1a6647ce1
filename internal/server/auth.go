package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const emailKey contextKey = "email"

const tokenTTL = 24 * time.Hour

// issueToken signs an HS256 JWT for the given user.
func (s *Server) issueToken(u user, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   u.UserID,
		"email": u.Email,
		"role":  u.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(tokenTTL).Unix(),
	})
	return token.SignedString(s.secret)
}

// requireAdmin rejects requests without a valid bearer token carrying the
// Admin role.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || raw == "" {
			writeFailure(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		claims := jwt.MapClaims{}
		_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return s.secret, nil
		})
		if err != nil {
			writeFailure(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		if role, _ := claims["role"].(string); role != "Admin" {
			writeFailure(w, http.StatusUnauthorized, "admin role required")
			return
		}

		email, _ := claims["email"].(string)
		ctx := context.WithValue(r.Context(), emailKey, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requestEmail returns the authenticated email stored by requireAdmin.
func requestEmail(ctx context.Context) string {
	email, _ := ctx.Value(emailKey).(string)
	return email
}
