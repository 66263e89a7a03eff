package service

import (
	"errors"
	"testing"

	"github.com/cart-it/internal/config"
)

func TestValidatePasswordPolicy(t *testing.T) {
	policy := config.PasswordPolicyConfig{MinLength: 8, RequireUpper: true, RequireLower: true, RequireNumber: true, RequireSpecial: true}
	cases := map[string]string{
		"Ab1!":      "error.password_min_length",
		"abcdefg1!": "error.password_require_upper",
		"ABCDEFG1!": "error.password_require_lower",
		"Abcdefgh!": "error.password_require_number",
		"Abcdefg12": "error.password_require_special",
	}
	for password, key := range cases {
		err := validatePassword(policy, password)
		if !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("%s should be weak, got %v", password, err)
		}
		var policyErr passwordPolicyError
		if !errors.As(err, &policyErr) || policyErr.Key() != key {
			t.Fatalf("%s: want key %s got %v", password, key, err)
		}
	}
	if err := validatePassword(policy, "Abcdefg1!"); err != nil {
		t.Fatalf("strong password rejected: %v", err)
	}
	if err := validatePassword(config.PasswordPolicyConfig{}, "x"); err != nil {
		t.Fatalf("empty policy should accept anything: %v", err)
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got, err := normalizeEmail("  User@Example.COM "); err != nil || got != "user@example.com" {
		t.Fatalf("unexpected normalize result: %s %v", got, err)
	}
	if _, err := normalizeEmail(""); !errors.Is(err, ErrEmailRequired) {
		t.Fatalf("empty email should be required, got %v", err)
	}
	if _, err := normalizeEmail("Bob <bob@example.com>"); !errors.Is(err, ErrEmailInvalid) {
		t.Fatalf("display-name form should be rejected, got %v", err)
	}
}
