// Package password genera y verifica las contraseñas temporales que se entregan una sola
// vez al aprobar una empresa o aprovisionar un usuario.
package password

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// Prefijos de contraseña temporal.
const (
	OwnerPrefix = "Owner@"
	UserPrefix  = "User@"
)

// Temporary devuelve prefix seguido de 4 dígitos aleatorios en [1000, 9999].
func Temporary(prefix string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", fmt.Errorf("password: generar sufijo: %w", err)
	}
	return fmt.Sprintf("%s%d", prefix, 1000+n.Int64()), nil
}

// Hash devuelve el hash bcrypt de plain.
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("password: hash: %w", err)
	}
	return string(h), nil
}

// Matches compara plain contra un hash bcrypt.
func Matches(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
