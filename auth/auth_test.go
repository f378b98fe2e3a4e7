package auth

import (
	"strings"
	"testing"

	"greeting-hub/errors"

	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	req := require.New(t)
	password := "MyPassw0rdIsS0Safe!"

	hash, err := HashPassword(password)
	req.NoError(err)
	req.True(strings.HasPrefix(hash, "$argon2id$"))

	match, err := ComparePassword(password, hash)
	req.NoError(err)
	req.True(match)

	// Wrong password
	match, err = ComparePassword("WrongPassword", hash)
	req.NoError(err)
	req.False(match)

	// Garbage hash
	_, err = ComparePassword(password, "$bcrypt$nope")
	req.Error(err)
}

func TestHash_Custom_Params_Are_Read_Back(t *testing.T) {
	req := require.New(t)
	light := PasswordParams{Memory: 8 * 1024, Iterations: 1, Parallelism: 1, SaltLength: 8, KeyLength: 16}

	hash, err := light.Hash("AnotherPass123!")
	req.NoError(err)
	req.Contains(hash, "m=8192,t=1,p=1")

	match, err := ComparePassword("AnotherPass123!", hash)
	req.NoError(err)
	req.True(match)
}

func TestRegistrationValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr error
	}{
		{"Valid request", RegisterRequest{"test@example.com", "ComplexPass123!"}, nil},
		{"Invalid email", RegisterRequest{"notanemail", "ComplexPass123!"}, errors.ErrInvalidRequest},
		{"Password too short", RegisterRequest{"test@example.com", "Short1!"}, errors.ErrInvalidRequest},
		{"Missing digit", RegisterRequest{"test@example.com", "NoDigitPass!"}, errors.ErrInvalidPassword},
		{"Missing special char", RegisterRequest{"test@example.com", "NoSpecialChar123"}, errors.ErrInvalidPassword},
		{"Missing uppercase", RegisterRequest{"test@example.com", "nouppercase123!"}, errors.ErrInvalidPassword},
		{"Password too long", RegisterRequest{"test@example.com", strings.Repeat("a", 73)}, errors.ErrInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			err := ValidateRegister(tt.req)
			if tt.wantErr == nil {
				req.NoError(err)
				return
			}
			req.ErrorIs(err, tt.wantErr)
		})
	}
}

func BenchmarkHashPassword(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = HashPassword("A-very-long-and-complex-password-for-bench-123!")
	}
}
