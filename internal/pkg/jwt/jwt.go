package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/employee"
)

type Service interface {
	GenerateToken(employeeID string, email string, role employee.Role) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey      string
	expirationTime string
	tokenAuth      *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, expirationTime string) Service {
	return &JWTService{
		secretKey:      secretKey,
		expirationTime: expirationTime,
		tokenAuth:      jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateToken(employeeID string, email string, role employee.Role) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.expirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"id":    employeeID,
		"email": email,
		"role":  string(role),
		"exp":   expiresAt,
	})
	return tokenString, expiresAt, err
}

// ClaimsFromMap extracts the identity claims middleware stored in the
// request context.
func ClaimsFromMap(claims map[string]interface{}) (employeeID string, role employee.Role, ok bool) {
	id, idOK := claims["id"].(string)
	roleStr, roleOK := claims["role"].(string)
	if !idOK || !roleOK || id == "" {
		return "", "", false
	}
	return id, employee.Role(roleStr), true
}
