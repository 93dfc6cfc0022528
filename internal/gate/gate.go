// Package gate implements the password prompt in front of the consolidation view.
//
// The gate is a placeholder. The password is compiled into every client binary and
// compared in plain text, so it keeps nobody out who wants in. It must not be used
// to protect data. The consolidation data is served by the API without authentication.
package gate

import "errors"

// DefaultPassword is the password of the consolidation view.
const DefaultPassword = "lino"

var ErrWrongPassword = errors.New("Senha incorreta")

// Gate is a single password prompt.
type Gate struct {
	password string
	unlocked bool
}

// New returns a locked gate for password. An empty password selects DefaultPassword.
func New(password string) *Gate {
	if password == "" {
		password = DefaultPassword
	}
	return &Gate{password: password}
}

// Unlock opens the gate if input matches the password.
// A wrong input does not lock an already open gate.
func (g *Gate) Unlock(input string) error {
	if input != g.password {
		return ErrWrongPassword
	}

	g.unlocked = true
	return nil
}

// Unlocked reports if the gate has been opened.
func (g *Gate) Unlocked() bool {
	return g.unlocked
}
