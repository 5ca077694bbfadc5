package adapters

import "testing"

func TestPasswordService_HashAndVerify(t *testing.T) {
	service := NewPasswordService()

	hash, err := service.HashPassword("SecurePass123!")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "SecurePass123!" {
		t.Fatal("hash must not equal the plain password")
	}

	if err := service.VerifyPassword(hash, "SecurePass123!"); err != nil {
		t.Errorf("expected matching password to verify: %v", err)
	}
	if err := service.VerifyPassword(hash, "WrongPass123!"); err == nil {
		t.Error("expected mismatched password to fail verification")
	}
}

func TestPasswordService_ValidatePasswordStrength(t *testing.T) {
	service := NewPasswordService()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"accepts eight characters", "abcdefgh", false},
		{"accepts a long password", "a-much-longer-passphrase", false},
		{"rejects seven characters", "abcdefg", true},
		{"rejects empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePasswordStrength(%q) error = %v, wantErr %v", tt.password, err, tt.wantErr)
			}
		})
	}
}
