package crypto

import (
	"bytes"
	"testing"
)

func TestGenerateOTPCode(t *testing.T) {
	code, err := GenerateOTPCode()
	if err != nil {
		t.Fatalf("GenerateOTPCode failed: %v", err)
	}

	if len(code) != OTPLength {
		t.Errorf("code length = %d, want %d", len(code), OTPLength)
	}
	for _, ch := range code {
		if ch < '0' || ch > '9' {
			t.Errorf("code %q contains non-digit %q", code, ch)
		}
	}
}

func TestHashOTPRoundTrip(t *testing.T) {
	salt, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt failed: %v", err)
	}

	hash := HashOTP("123456", salt)

	if !VerifyOTP("123456", salt, hash) {
		t.Error("correct code failed verification")
	}
	if VerifyOTP("654321", salt, hash) {
		t.Error("wrong code passed verification")
	}
}

func TestHashOTPSaltMatters(t *testing.T) {
	saltA, _ := GenerateSalt()
	saltB, _ := GenerateSalt()

	if bytes.Equal(HashOTP("123456", saltA), HashOTP("123456", saltB)) {
		t.Error("different salts produced the same hash")
	}
}

func TestGenerateSaltUnique(t *testing.T) {
	a, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt failed: %v", err)
	}
	b, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt failed: %v", err)
	}

	if len(a) != SaltLength {
		t.Errorf("salt length = %d, want %d", len(a), SaltLength)
	}
	if bytes.Equal(a, b) {
		t.Error("two salts are identical")
	}
}
