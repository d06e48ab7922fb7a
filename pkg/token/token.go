package token

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// resetTokenBytes entropía del token opaco de reseteo (32 bytes ~ 43 chars base64url).
const resetTokenBytes = 32

// Claims incluye los claims estándar JWT. El sujeto es el ID del usuario;
// el token es stateless, sin sesión en servidor.
type Claims struct {
	jwt.RegisteredClaims
}

// Generate genera un token de acceso HS256 firmado con el ID del usuario como subject.
func Generate(secret, subjectID, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("token: secret vacío")
	}
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secret))
}

// Parse valida el token de acceso y devuelve el subject (ID de usuario).
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("token: secret vacío")
	}
	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid || claims.Subject == "" {
		return "", fmt.Errorf("claims inválidos")
	}
	return claims.Subject, nil
}

// NewResetToken genera un token opaco criptográficamente aleatorio y URL-safe.
// No guarda relación con el esquema de firma JWT: se almacena y compara en servidor.
func NewResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generar token de reseteo: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
