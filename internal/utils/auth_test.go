package utils

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/paclead/paclead-backend/internal/types"
)

func TestNormalizeUserFields(t *testing.T) {
	user := &types.User{
		Email:       "  Loja@Example.COM ",
		FullName:    "  Maria Silva ",
		CompanyName: " Loja da Maria  ",
	}
	NormalizeUserFields(user)

	if user.Email != "loja@example.com" {
		t.Fatalf("email = %q", user.Email)
	}
	if user.FullName != "Maria Silva" {
		t.Fatalf("full name = %q", user.FullName)
	}
	if user.CompanyName != "Loja da Maria" {
		t.Fatalf("company name = %q", user.CompanyName)
	}
}

func TestValidateLogin(t *testing.T) {
	cases := []struct {
		name     string
		email    string
		password string
		wantErr  bool
	}{
		{name: "ok", email: "a@b.com", password: "secret", wantErr: false},
		{name: "missing_email", email: "", password: "secret", wantErr: true},
		{name: "missing_password", email: "a@b.com", password: "", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateLogin(tc.email, tc.password)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ValidateLogin(%q, %q) = %v, wantErr %v", tc.email, tc.password, err, tc.wantErr)
			}
		})
	}
}

func TestHashPassword(t *testing.T) {
	user := &types.User{Password: "super-secret"}
	if err := HashPassword(user); err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if user.Password == "super-secret" {
		t.Fatalf("password left in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("super-secret")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}
