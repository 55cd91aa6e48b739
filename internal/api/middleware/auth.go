package middleware

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apierrors "github.com/cedrichille/monopoly-companion-app/internal/api/shared/errors"
	"github.com/cedrichille/monopoly-companion-app/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	AUTH_TYPE_KEY    contextKey = "auth_type"
	AUTH_SUBJECT_KEY contextKey = "auth_subject"
)

const (
	AuthTypeJWT    = "jwt"
	AuthTypeAPIKey = "apikey"
)

// AuthConfig holds authentication configuration for the admin routes
type AuthConfig struct {
	JWTPublicKey string // RSA public key in PEM format
	APIKeys      []string
}

// AuthResult holds the result of authentication
type AuthResult struct {
	AuthType    string
	AuthSubject string
}

// Authenticator checks Authorization headers against a parsed key set
type Authenticator struct {
	publicKey *rsa.PublicKey
	apiKeys   map[string]struct{}
}

// NewAuthenticator parses the configured public key once. Either credential kind may be left empty.
func NewAuthenticator(cfg AuthConfig) (*Authenticator, error) {
	a := &Authenticator{apiKeys: make(map[string]struct{})}
	for _, key := range cfg.APIKeys {
		if key = strings.TrimSpace(key); key != "" {
			a.apiKeys[key] = struct{}{}
		}
	}

	if strings.TrimSpace(cfg.JWTPublicKey) != "" {
		publicKey, err := parseRSAPublicKey(cfg.JWTPublicKey)
		if err != nil {
			return nil, fmt.Errorf("failed to parse RSA public key: %w", err)
		}
		a.publicKey = publicKey
	}

	return a, nil
}

// Authenticate validates an Authorization header of the form "Bearer <jwt>" or "ApiKey <key>"
func (a *Authenticator) Authenticate(authHeader string) (*AuthResult, error) {
	if authHeader == "" {
		return nil, errors.New("missing Authorization header")
	}

	scheme, credentials, ok := strings.Cut(authHeader, " ")
	if !ok || credentials == "" {
		return nil, errors.New("invalid Authorization header format")
	}

	switch strings.ToLower(scheme) {
	case "bearer":
		claims, err := a.validateJWT(credentials)
		if err != nil {
			return nil, err
		}
		return &AuthResult{AuthType: AuthTypeJWT, AuthSubject: claims.Subject}, nil

	case "apikey":
		if len(a.apiKeys) == 0 {
			return nil, errors.New("no API keys configured")
		}
		if _, ok := a.apiKeys[credentials]; !ok {
			return nil, errors.New("invalid API key")
		}
		return &AuthResult{AuthType: AuthTypeAPIKey}, nil

	default:
		return nil, fmt.Errorf("unsupported authorization type: %s", scheme)
	}
}

// Auth returns a gin middleware that rejects unauthenticated requests with 401
func Auth(a *Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := a.Authenticate(c.GetHeader("Authorization"))
		if err != nil {
			logger.WarnCtx(c.Request.Context(), "Authentication failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierrors.NewUnauthorizedError("Authentication failed", err.Error()))
			return
		}

		c.Set(string(AUTH_TYPE_KEY), result.AuthType)
		if result.AuthSubject != "" {
			c.Set(string(AUTH_SUBJECT_KEY), result.AuthSubject)
		}
		logger.DebugCtx(c.Request.Context(), "Authenticated",
			zap.String("auth_type", result.AuthType),
			zap.String("subject", result.AuthSubject),
			zap.String("path", c.Request.URL.Path),
		)

		c.Next()
	}
}

// validateJWT validates an RS256 token; expiry and not-before are enforced by the parser
func (a *Authenticator) validateJWT(tokenString string) (*jwt.RegisteredClaims, error) {
	if a.publicKey == nil {
		return nil, errors.New("JWT public key not configured")
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.publicKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// parseRSAPublicKey parses an RSA public key in PKIX or PKCS1 PEM format
func parseRSAPublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing public key")
	}

	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return x509.ParsePKCS1PublicKey(block.Bytes)
	}

	rsaKey, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not an RSA key")
	}

	return rsaKey, nil
}
