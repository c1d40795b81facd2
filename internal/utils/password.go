package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword hash un mot de passe avec bcrypt (salt généré par la lib).
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compare un mot de passe en clair au hash stocké.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
