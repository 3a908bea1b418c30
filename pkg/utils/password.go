package utils

import "golang.org/x/crypto/bcrypt"

// DummyHash is a valid bcrypt hash of a throwaway value. Login verifies
// against it when the email is unknown so both failure paths cost one
// bcrypt comparison.
const DummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

func HashPassword(pw string) string {
	b, _ := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b)
}

func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
