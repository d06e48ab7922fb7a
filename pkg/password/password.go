package password

import "golang.org/x/crypto/bcrypt"

// Hash genera un hash bcrypt del password en claro (salt aleatorio incluido en la salida).
func Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify compara un password en claro contra un hash bcrypt.
// Devuelve false ante cualquier error (mismatch o hash malformado), nunca panic.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
