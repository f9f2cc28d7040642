package auth

import "golang.org/x/crypto/bcrypt"

// Verifier checks submitted credentials against the single configured admin
// account. There is no user table; the username and bcrypt password hash come
// from configuration.
type Verifier struct {
	username     string
	passwordHash string
}

func NewVerifier(username, passwordHash string) *Verifier {
	return &Verifier{username: username, passwordHash: passwordHash}
}

// Verify reports whether the pair matches the configured credentials. It
// never reveals which field was wrong.
func (v *Verifier) Verify(username, password string) bool {
	if username != v.username {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(v.passwordHash), []byte(password)) == nil
}
