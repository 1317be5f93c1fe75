package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher capacidad opaca de hash y verificación de contraseñas.
// Se inyecta en los use cases; los tests pueden sustituir un fake.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// BcryptHasher implementación por defecto sobre bcrypt.
type BcryptHasher struct{}

// Hash genera el hash bcrypt con el costo por defecto.
func (BcryptHasher) Hash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Compare verifica password contra el hash almacenado.
func (BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
