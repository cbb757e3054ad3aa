package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-forms-auth/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidTokenParams is returned when a token is requested with an empty
// issuer, subject or sign key, or with a non-positive duration.
var ErrInvalidTokenParams = errors.New("invalid params for generating JWT Token")

// GenerateSessionToken creates a signed HMAC-SHA256 session JWT for caller.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the principal ID
//   - ID        (jti): sessionID, used for revocation on logout
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus tokenDuration
//   - name           : the principal's login name
//
// Example usage:
//
//	token, err := utils.GenerateSessionToken("forms-auth", caller, ulid, true, time.Now(), time.Hour, "secret")
func GenerateSessionToken(issuer string, caller models.Caller, sessionID string, persistent bool, now time.Time, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || caller.PrincipalID == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	claims := models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   caller.PrincipalID,
			ID:        sessionID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserName:   caller.UserName,
		Persistent: persistent,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseSessionToken validates the given session JWT and extracts
// its claims.
//
// Validation includes the signature (HS256 only), the issuer, the expiration
// and the presence of a subject. Extra parser options (e.g. a time source)
// are passed through to [ParseClaims].
func ValidateAndParseSessionToken(tokenString, tokenSignKey, tokenIssuer string, opts ...jwt.ParserOption) (models.Token, error) {
	var claims models.SessionClaims
	token, err := ParseClaims(tokenString, &claims, tokenSignKey, tokenIssuer, opts...)
	if err != nil {
		return models.Token{}, err
	}

	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString}, nil
}

// SignClaims signs an arbitrary claim set with HMAC-SHA256.
func SignClaims(claims jwt.Claims, signKey string) (string, error) {
	if signKey == "" {
		return "", ErrInvalidTokenParams
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return signed, nil
}

// ParseClaims parses tokenString into claims, verifying the HS256
// signature, the issuer and the time-based claims.
func ParseClaims(tokenString string, claims jwt.Claims, tokenSignKey, tokenIssuer string, opts ...jwt.ParserOption) (*jwt.Token, error) {
	options := append([]jwt.ParserOption{
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}, opts...)

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, options...)
	if err != nil {
		return nil, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	return token, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}

	return parts[1], nil
}
