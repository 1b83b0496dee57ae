package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a one-way salted hash; bcrypt embeds a fresh salt on
// every call, so hashing the same password twice yields different values.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
