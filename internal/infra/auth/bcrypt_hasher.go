// Package auth implements the token and password services.
package auth

import (
	"fmt"
	"strings"
	"unicode"

	"hive/config"
	domainerrors "hive/internal/domain/errors"
	"hive/internal/domain/service"
	"hive/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores everything past 72 bytes.
const bcryptMaxPasswordBytes = 72

var defaultPasswordPolicy = config.PasswordStrengthConfig{
	MinLength:        8,
	MaxLength:        bcryptMaxPasswordBytes,
	RequireUppercase: true,
	RequireLowercase: true,
	RequireNumbers:   true,
}

type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher ignores a bcrypt cost outside bcrypt's range and caps
// the policy's MaxLength at 72 bytes.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	h := &bcryptHasher{
		cost:   bcrypt.DefaultCost,
		policy: defaultPasswordPolicy,
	}
	if cfg == nil {
		return h
	}
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		h.cost = cfg.Auth.BcryptCost
	}
	if cfg.PasswordStrength != nil {
		h.policy = *cfg.PasswordStrength
	}
	if h.policy.MaxLength <= 0 || h.policy.MaxLength > bcryptMaxPasswordBytes {
		h.policy.MaxLength = bcryptMaxPasswordBytes
	}

	return h
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return string(bytes), nil
}

func (h *bcryptHasher) Matches(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}

func (h *bcryptHasher) CheckStrength(password string) error {
	var problems []string

	if len(password) < h.policy.MinLength {
		problems = append(problems, fmt.Sprintf("at least %d characters", h.policy.MinLength))
	}
	if len(password) > h.policy.MaxLength {
		problems = append(problems, fmt.Sprintf("at most %d bytes", h.policy.MaxLength))
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}

	if h.policy.RequireUppercase && !upper {
		problems = append(problems, "an uppercase letter")
	}
	if h.policy.RequireLowercase && !lower {
		problems = append(problems, "a lowercase letter")
	}
	if h.policy.RequireNumbers && !digit {
		problems = append(problems, "a number")
	}
	if h.policy.RequireSpecial && !special {
		problems = append(problems, "a special character")
	}

	if len(problems) == 0 {
		return nil
	}

	return domainerrors.ErrPasswordStrength.WithDetails("password needs " + strings.Join(problems, ", "))
}
