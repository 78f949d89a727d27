package middleware

import (
	"crypto/rsa"
	"crypto/subtle"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ticket-marketplace/internal/api/shared/errors"
	"github.com/feral-file/ticket-marketplace/internal/logger"
)

const (
	AUTH_TYPE_KEY    = "auth_type"
	AUTH_SUBJECT_KEY = "auth_subject"

	AUTH_TYPE_JWT    = "jwt"
	AUTH_TYPE_APIKEY = "apikey"
)

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string // RSA public key in PEM format
	APIKeys      []string
}

// Authenticator validates Authorization headers against a JWT public key and a set of API keys
type Authenticator struct {
	publicKey *rsa.PublicKey
	apiKeys   [][]byte
}

// NewAuthenticator parses the configured key material once so that misconfiguration fails at startup
func NewAuthenticator(cfg AuthConfig) (*Authenticator, error) {
	a := &Authenticator{}

	if cfg.JWTPublicKey != "" {
		publicKey, err := parseRSAPublicKey(cfg.JWTPublicKey)
		if err != nil {
			return nil, fmt.Errorf("failed to parse RSA public key: %w", err)
		}
		a.publicKey = publicKey
	}

	for _, key := range cfg.APIKeys {
		if key = strings.TrimSpace(key); key != "" {
			a.apiKeys = append(a.apiKeys, []byte(key))
		}
	}

	return a, nil
}

// Enabled reports whether any credential is configured
func (a *Authenticator) Enabled() bool {
	return a.publicKey != nil || len(a.apiKeys) > 0
}

// Authenticate validates the Authorization header and returns the auth type and subject
func (a *Authenticator) Authenticate(authHeader string) (authType string, subject string, err error) {
	if authHeader == "" {
		return "", "", errors.New("missing Authorization header")
	}

	scheme, credentials, ok := strings.Cut(authHeader, " ")
	if !ok || credentials == "" {
		return "", "", errors.New("invalid Authorization header format")
	}

	switch strings.ToLower(scheme) {
	case "bearer":
		claims, err := a.validateJWT(credentials)
		if err != nil {
			return "", "", err
		}
		return AUTH_TYPE_JWT, claims.Subject, nil

	case "apikey":
		if err := a.validateAPIKey(credentials); err != nil {
			return "", "", err
		}
		return AUTH_TYPE_APIKEY, "", nil

	default:
		return "", "", fmt.Errorf("unsupported authorization type: %s", scheme)
	}
}

// Auth returns a gin middleware accepting either a JWT (Bearer) or an API key (ApiKey)
func Auth(a *Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authType, subject, err := a.Authenticate(c.GetHeader("Authorization"))
		if err != nil {
			logger.WarnCtx(c.Request.Context(), "Authentication failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierrors.NewUnauthorizedError("Authentication failed", err.Error()))
			return
		}

		c.Set(AUTH_TYPE_KEY, authType)
		if subject != "" {
			c.Set(AUTH_SUBJECT_KEY, subject)
		}

		logger.DebugCtx(c.Request.Context(), "Authentication successful",
			zap.String("auth_type", authType),
			zap.String("subject", subject),
			zap.String("path", c.Request.URL.Path),
		)

		c.Next()
	}
}

// validateJWT validates an RS256 token; expiry and not-before are checked by the parser
func (a *Authenticator) validateJWT(tokenString string) (*jwt.RegisteredClaims, error) {
	if a.publicKey == nil {
		return nil, errors.New("JWT public key not configured")
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return a.publicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

func (a *Authenticator) validateAPIKey(apiKey string) error {
	if len(a.apiKeys) == 0 {
		return errors.New("no API keys configured")
	}

	for _, key := range a.apiKeys {
		if subtle.ConstantTimeCompare(key, []byte(apiKey)) == 1 {
			return nil
		}
	}

	return errors.New("invalid API key")
}

// parseRSAPublicKey parses an RSA public key from PEM format
func parseRSAPublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing public key")
	}

	// Try parsing as PKIX (most common format)
	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		// Try parsing as PKCS1 format
		return x509.ParsePKCS1PublicKey(block.Bytes)
	}

	rsaKey, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not an RSA key")
	}

	return rsaKey, nil
}
