package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the mock sign-in identity. There is no user database: the
// issuer signs whatever name and email the shopper supplies, which is enough
// to scope booking history to a browser session.
type Identity struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

func (i *Issuer) IssueToken(identity Identity) (string, error) {
	if identity.Email == "" {
		return "", errors.New("email is required")
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   identity.Email,
		"name":  identity.Name,
		"email": identity.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(i.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// ParseToken validates the signature and expiry and returns the identity.
func (i *Issuer) ParseToken(tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return i.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	if email == "" {
		return nil, errors.New("token has no email claim")
	}
	return &Identity{Name: name, Email: email}, nil
}
