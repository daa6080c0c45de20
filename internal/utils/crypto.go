package utils

import "golang.org/x/crypto/bcrypt"

// BcryptCost is lowered by tests.
var BcryptCost = bcrypt.DefaultCost

// HashPassword returns the bcrypt hash of a password or PIN.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plain matches hash.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
