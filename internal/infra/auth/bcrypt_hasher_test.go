package auth

import (
	"strings"
	"testing"

	"sahara/config"
	domainerrors "sahara/internal/domain/errors"
	"sahara/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	password := "secret1"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)
	assert.NotContains(t, hash, password)

	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("secret1")
	require.NoError(t, err)
	second, err := hasher.Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	password := "StrongPass123!"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPassword123!", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 6}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestBcryptHasher_DefaultCostIsTen(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 10, cost)
}

func TestBcryptHasher_ValidatePasswordStrength_DefaultPolicy(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	assert.NoError(t, hasher.ValidatePasswordStrength("secret1"))
	assert.NoError(t, hasher.ValidatePasswordStrength("x"))
	assert.NoError(t, hasher.ValidatePasswordStrength(strings.Repeat("a", 72)))

	err := hasher.ValidatePasswordStrength(strings.Repeat("a", 73))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
	assert.Contains(t, err.Error(), "must be at most 72 characters long")
}

func TestBcryptHasher_ValidatePasswordStrength_ConfiguredPolicy(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			RequireSpecial:   true,
			ForbiddenWords:   []string{"password", "admin"},
		},
	})

	validPasswords := []string{
		"StrongPass123!",
		"MySecure@Pass1",
		"Complex#Secret9",
		"Pässphräse123!",
	}
	for _, password := range validPasswords {
		assert.NoError(t, hasher.ValidatePasswordStrength(password), "Expected no error for valid password: %s", password)
	}

	testCases := []struct {
		password    string
		expectedErr string
	}{
		{"123", "must be at least 8 characters long"},
		{"PASSWORD123!", "must contain at least one lowercase letter"},
		{"strong123!", "must contain at least one uppercase letter"},
		{"StrongABC!", "must contain at least one number"},
		{"Strong1234", "must contain at least one special character"},
		{"Password123!", "contains forbidden words"},
		{"MyAdmin123!", "contains forbidden words"},
	}

	for _, tc := range testCases {
		t.Run(tc.password, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tc.password)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectedErr)
			assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
		})
	}
}

func TestBcryptHasher_PasswordStrengthHelpers(t *testing.T) {
	hasher := &bcryptHasher{}

	assert.True(t, hasher.hasUppercase("Password"))
	assert.False(t, hasher.hasUppercase("password"))

	assert.True(t, hasher.hasLowercase("Password"))
	assert.False(t, hasher.hasLowercase("PASSWORD"))

	assert.True(t, hasher.hasNumbers("Password123"))
	assert.False(t, hasher.hasNumbers("Password"))

	assert.True(t, hasher.hasSpecialChars("Password!"))
	assert.False(t, hasher.hasSpecialChars("Password"))

	forbiddenWords := []string{"password", "admin"}
	assert.True(t, hasher.containsForbiddenWords("MyPassword123", forbiddenWords))
	assert.True(t, hasher.containsForbiddenWords("AdminUser", forbiddenWords))
	assert.False(t, hasher.containsForbiddenWords("SecurePass123", forbiddenWords))
	assert.False(t, hasher.containsForbiddenWords("SecurePass123", nil))
}
