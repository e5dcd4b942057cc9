package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config parámetros de firma del par de tokens. Access y Refresh usan secrets
// DISTINTOS: comprometer el secret de uno no permite falsificar el otro.
type Config struct {
	AccessSecret  string
	RefreshSecret string
	Issuer        string
	AccessTTL     time.Duration // 15 minutos
	RefreshTTL    time.Duration // 7 días
}

// Pair par de tokens emitidos juntos: access (vida corta) + refresh (vida larga).
type Pair struct {
	Access  string
	Refresh string
}

// El payload lleva únicamente el Subject (ID del usuario) y los claims
// estándar de emisión/expiración. Rol y sucursal se resuelven contra la DB en
// cada request: un token nunca transporta permisos.

// GeneratePair emite un par de tokens nuevo para el usuario indicado.
func GeneratePair(cfg Config, userID string) (Pair, error) {
	access, err := sign(cfg.AccessSecret, cfg.Issuer, userID, cfg.AccessTTL)
	if err != nil {
		return Pair{}, fmt.Errorf("jwt: firmar access token: %w", err)
	}
	refresh, err := sign(cfg.RefreshSecret, cfg.Issuer, userID, cfg.RefreshTTL)
	if err != nil {
		return Pair{}, fmt.Errorf("jwt: firmar refresh token: %w", err)
	}
	return Pair{Access: access, Refresh: refresh}, nil
}

// ParseAccess valida un access token y devuelve el ID del usuario (Subject).
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func ParseAccess(cfg Config, tokenString string) (string, error) {
	return parse(cfg.AccessSecret, tokenString)
}

// ParseRefresh valida un refresh token y devuelve el ID del usuario (Subject).
func ParseRefresh(cfg Config, tokenString string) (string, error) {
	return parse(cfg.RefreshSecret, tokenString)
}

func sign(secret, issuer, userID string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("secret vacío")
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func parse(secret, tokenString string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", fmt.Errorf("jwt: claims inválidos")
	}
	return claims.Subject, nil
}
