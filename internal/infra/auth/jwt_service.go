package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"hive/config"
	"hive/internal/domain/service"
	"hive/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
	defaultResetTTL   = time.Hour
)

// jwtService signs HS256 tokens with one secret per token type.
type jwtService struct {
	accessSecret  string
	refreshSecret string
	resetSecret   string
	accessTTL     time.Duration
	refreshTTL    time.Duration
	resetTTL      time.Duration
}

// NewJWTService fails without access and refresh secrets. TTLs left at zero
// in auth config keep their defaults.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	s := &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		resetSecret:   cfg.SecretKey.Reset,
		accessTTL:     defaultAccessTTL,
		refreshTTL:    defaultRefreshTTL,
		resetTTL:      defaultResetTTL,
	}
	// Reset links fall back to a key derived from the refresh secret so that an
	// access token can never be replayed as a reset token.
	if s.resetSecret == "" {
		s.resetSecret = "reset:" + s.refreshSecret
	}

	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			s.accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			s.refreshTTL = cfg.Auth.RefreshTokenTTL
		}
		if cfg.Auth.ResetTokenTTL > 0 {
			s.resetTTL = cfg.Auth.ResetTokenTTL
		}
	}

	return s, nil
}

func (s *jwtService) IssuePair(userID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.generateToken(userID, roles, s.accessTTL, s.accessSecret, service.TokenTypeAccess)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = s.generateToken(userID, nil, s.refreshTTL, s.refreshSecret, service.TokenTypeRefresh)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func (s *jwtService) IssueResetToken(userID uuid.UUID) (string, error) {
	return s.generateToken(userID, nil, s.resetTTL, s.resetSecret, service.TokenTypeReset)
}

// ParseToken verifies the signature with the secret of the token's own type
// and returns its claims.
func (s *jwtService) ParseToken(tokenString string) (*service.Claims, error) {
	claims := jwt.MapClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		tokenType, _ := claims["type"].(string)
		secret, ok := s.secretFor(tokenType)
		if !ok {
			return nil, errors.Errorf("unknown token type %q", tokenType)
		}

		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token structure")
	}

	return claimsFromMap(claims)
}

// DigestToken is hex SHA-256.
func (s *jwtService) DigestToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

func (s *jwtService) AccessTTL() time.Duration {
	return s.accessTTL
}

func (s *jwtService) RefreshTTL() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) secretFor(tokenType string) (string, bool) {
	switch tokenType {
	case service.TokenTypeAccess:
		return s.accessSecret, true
	case service.TokenTypeRefresh:
		return s.refreshSecret, true
	case service.TokenTypeReset:
		return s.resetSecret, true
	default:
		return "", false
	}
}

func (s *jwtService) generateToken(userID uuid.UUID, roles []string, ttl time.Duration, secret, tokenType string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
		"jti":  uuid.NewString(), // keeps tokens minted in the same second distinct
		"type": tokenType,
	}
	// Only add roles to the access token for stateless authorization.
	if roles != nil {
		claims["roles"] = roles
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

func claimsFromMap(mc jwt.MapClaims) (*service.Claims, error) {
	sub, err := mc.GetSubject()
	if err != nil {
		return nil, errors.Wrap(err, "read subject")
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject")
	}

	claims := &service.Claims{UserID: userID}
	claims.Subject = sub
	claims.Type, _ = mc["type"].(string)
	if id, ok := mc["jti"].(string); ok {
		claims.ID = id
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp
	}
	if iat, err := mc.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat
	}

	if rawRoles, ok := mc["roles"].([]any); ok {
		claims.Roles = make([]string, 0, len(rawRoles))
		for _, r := range rawRoles {
			if role, ok := r.(string); ok {
				claims.Roles = append(claims.Roles, role)
			}
		}
	}

	return claims, nil
}
