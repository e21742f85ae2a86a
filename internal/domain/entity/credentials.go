package entity

import "fmt"

type Credentials struct {
	Login    string
	Password string
}

func (c Credentials) Validate() error {
	if c.Login == "" {
		return fmt.Errorf("%w: login is empty", ErrInvalidInput)
	}
	if c.Password == "" {
		return fmt.Errorf("%w: password is empty", ErrInvalidInput)
	}
	return nil
}

// String never prints the password.
func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{Login: %q, Password: ***}", c.Login)
}
