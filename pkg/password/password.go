package password

import "golang.org/x/crypto/bcrypt"

// Hash gera o hash bcrypt de uma senha. O salt é aleatório por chamada, logo a mesma
// senha produz hashes diferentes. A senha em claro nunca é registrada em log.
func Hash(senha string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify retorna true se a senha corresponde ao hash. A comparação do bcrypt é
// resistente a timing attacks.
func Verify(senha, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha)) == nil
}
