package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

// Session is the identity derived from a verified token. It is computed
// per request and passed explicitly into every operation; nothing reads
// auth state from a shared singleton.
type Session struct {
	UserID uint
	Role   string
	Expiry time.Time
}

func (s Session) IsPatient() bool { return s.Role == RolePatient }
func (s Session) IsDoctor() bool  { return s.Role == RoleDoctor }
func (s Session) IsAdmin() bool   { return s.Role == RoleAdmin }

// DeriveSession verifies an HS256 token and extracts the session. Pure:
// same token and secret always yield the same session or error.
func DeriveSession(tokenString, secret string) (Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return Session{}, jwt.ErrTokenMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Session{}, jwt.ErrTokenInvalidClaims
	}

	sub, ok1 := claims["sub"].(float64)
	role, ok2 := claims["role"].(string)
	if !ok1 || !ok2 {
		return Session{}, jwt.ErrTokenInvalidClaims
	}

	sess := Session{
		UserID: uint(sub),
		Role:   role,
	}
	if exp, ok := claims["exp"].(float64); ok {
		sess.Expiry = time.Unix(int64(exp), 0)
	}
	return sess, nil
}

// NewToken issues a session token for a user.
func NewToken(userID uint, role, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
