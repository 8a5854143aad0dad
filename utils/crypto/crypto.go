package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"
	"math/big"

	"golang.org/x/crypto/argon2"
)

const (
	// Argon2id parameters for OTP code hashing
	Argon2Time      uint32 = 1
	Argon2Memory    uint32 = 64 * 1024 // 64 MB
	Argon2Threads   uint8  = 4
	Argon2KeyLength uint32 = 32

	// Salt length for code hashing
	SaltLength = 32

	// OTPLength is the number of digits in a sign-in code
	OTPLength = 6
)

// GenerateSalt generates a cryptographically secure random salt
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// GenerateOTPCode generates a random numeric code of OTPLength digits
func GenerateOTPCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < OTPLength; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	return fmt.Sprintf("%0*d", OTPLength, n), nil
}

// HashOTP derives an argon2id hash of the code with the given salt
func HashOTP(code string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(code),
		salt,
		Argon2Time,
		Argon2Memory,
		Argon2Threads,
		Argon2KeyLength,
	)
}

// VerifyOTP reports whether code matches the stored hash in constant time
func VerifyOTP(code string, salt, hash []byte) bool {
	candidate := HashOTP(code, salt)
	return subtle.ConstantTimeCompare(candidate, hash) == 1
}
