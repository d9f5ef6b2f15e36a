package password_test

import (
	"errors"
	"strings"
	"testing"

	"innkeeper/shared/password"

	"golang.org/x/crypto/bcrypt"
)

func TestConstants(t *testing.T) {
	if password.DefaultCost != bcrypt.DefaultCost {
		t.Errorf("expected DefaultCost to be %d, got %d", bcrypt.DefaultCost, password.DefaultCost)
	}
}

func TestHash(t *testing.T) {
	tests := []struct {
		name      string
		password  string
		expectErr bool
	}{
		{
			name:     "valid password",
			password: "s3cret-password",
		},
		{
			name:     "unicode password",
			password: "pässwörd-日本語",
		},
		{
			name:      "empty password",
			password:  "",
			expectErr: true,
		},
		{
			name:      "password over bcrypt limit",
			password:  strings.Repeat("a", 100),
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)

			if tt.expectErr {
				if err == nil {
					t.Errorf("Hash(%q) expected an error, got none", tt.password)
				}

				return
			}

			if err != nil {
				t.Errorf("Hash(%q) unexpected error: %v", tt.password, err)

				return
			}

			if hash == "" {
				t.Errorf("Hash(%q) returned an empty hash", tt.password)
			}

			if hash == tt.password {
				t.Errorf("Hash(%q) returned the plaintext", tt.password)
			}
		})
	}
}

func TestHashUniqueness(t *testing.T) {
	first, err := password.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}

	second, err := password.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}

	// bcrypt salts every hash; identical outputs would mean the salt is gone.
	if first == second {
		t.Errorf("Hash() produced identical hashes for the same input")
	}
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("correct-password")
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}

	tests := []struct {
		name        string
		password    string
		hash        string
		expectErr   bool
		wantInvalid bool
	}{
		{
			name:     "matching password",
			password: "correct-password",
			hash:     hash,
		},
		{
			name:        "wrong password",
			password:    "wrong-password",
			hash:        hash,
			expectErr:   true,
			wantInvalid: true,
		},
		{
			name:        "empty password",
			password:    "",
			hash:        hash,
			expectErr:   true,
			wantInvalid: true,
		},
		{
			name:        "empty hash",
			password:    "correct-password",
			hash:        "",
			expectErr:   true,
			wantInvalid: true,
		},
		{
			name:      "malformed hash",
			password:  "correct-password",
			hash:      "not-a-bcrypt-hash",
			expectErr: true,
		},
		{
			name:      "truncated hash",
			password:  "correct-password",
			hash:      hash[:20],
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			if !tt.expectErr {
				if err != nil {
					t.Errorf("Verify() unexpected error: %v", err)
				}

				return
			}

			if err == nil {
				t.Errorf("Verify() expected an error, got none")

				return
			}

			if tt.wantInvalid && !errors.Is(err, password.ErrInvalidPassword) {
				t.Errorf("Verify() error = %v, want %v", err, password.ErrInvalidPassword)
			}

			if !tt.wantInvalid && errors.Is(err, password.ErrInvalidPassword) {
				t.Errorf("Verify() error = %v, want a non-mismatch failure", err)
			}
		})
	}
}

func TestVerifyAgainstKnownHash(t *testing.T) {
	known, err := bcrypt.GenerateFromPassword([]byte("receptionist"), password.DefaultCost)
	if err != nil {
		t.Fatalf("GenerateFromPassword() unexpected error: %v", err)
	}

	if err := password.Verify("receptionist", string(known)); err != nil {
		t.Errorf("Verify() unexpected error against a bcrypt hash: %v", err)
	}
}
