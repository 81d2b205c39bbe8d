// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"sahara/config"
	domainerrors "sahara/internal/domain/errors"
	"sahara/internal/domain/service"
	"sahara/internal/errors"
)

// bcrypt ignores everything past 72 bytes, so longer passwords are rejected up front.
const maxBcryptPasswordBytes = 72

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost != 0 {
		cost = cfg.Auth.BcryptCost
	}

	hasher := &bcryptHasher{cost: cost}
	if cfg.PasswordStrength != nil {
		hasher.policy = *cfg.PasswordStrength
	}

	return hasher
}

// NewBcryptHasherWithCost builds a hasher with the given cost and no policy beyond bcrypt's length limit.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt generate")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}

// ValidatePasswordStrength checks the password against the configured policy.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	maxLength := h.policy.MaxLength
	if maxLength <= 0 || maxLength > maxBcryptPasswordBytes {
		maxLength = maxBcryptPasswordBytes
	}

	switch {
	case len(password) > maxLength:
		return h.reject(fmt.Sprintf("must be at most %d characters long", maxLength))
	case h.policy.MinLength > 0 && len(password) < h.policy.MinLength:
		return h.reject(fmt.Sprintf("must be at least %d characters long", h.policy.MinLength))
	case h.policy.RequireLowercase && !h.hasLowercase(password):
		return h.reject("must contain at least one lowercase letter")
	case h.policy.RequireUppercase && !h.hasUppercase(password):
		return h.reject("must contain at least one uppercase letter")
	case h.policy.RequireNumbers && !h.hasNumbers(password):
		return h.reject("must contain at least one number")
	case h.policy.RequireSpecial && !h.hasSpecialChars(password):
		return h.reject("must contain at least one special character")
	case h.containsForbiddenWords(password, h.policy.ForbiddenWords):
		return h.reject("contains forbidden words")
	}

	return nil
}

func (h *bcryptHasher) reject(reason string) error {
	return errors.WithStack(domainerrors.ErrPasswordStrength.WithDetails("password " + reason))
}

func (h *bcryptHasher) hasUppercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsUpper) >= 0
}

func (h *bcryptHasher) hasLowercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsLower) >= 0
}

func (h *bcryptHasher) hasNumbers(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

func (h *bcryptHasher) hasSpecialChars(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	}) >= 0
}

func (h *bcryptHasher) containsForbiddenWords(s string, words []string) bool {
	lower := strings.ToLower(s)
	for _, word := range words {
		if word != "" && strings.Contains(lower, strings.ToLower(word)) {
			return true
		}
	}

	return false
}
