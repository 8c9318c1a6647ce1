package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenValid reports whether the active session carries a JWT whose expiry
// lies in the future. The claim is read without signature verification; the
// check only exists so the console can send the user back to the login screen
// before the backend starts rejecting calls.
func (s *Store) TokenValid() bool {
	token := s.Token()
	if token == "" {
		return false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.After(time.Now())
}
