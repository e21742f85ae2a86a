package entity

type LoginState int

const (
	LoginNotStarted LoginState = iota
	LoginNavigated
	LoginIdentifierEntered
	LoginSecretEntered
	LoginSubmitted
	LoggedIn
)

var loginStateNames = [...]string{
	LoginNotStarted:        "not_started",
	LoginNavigated:         "navigated",
	LoginIdentifierEntered: "identifier_entered",
	LoginSecretEntered:     "secret_entered",
	LoginSubmitted:         "submitted",
	LoggedIn:               "logged_in",
}

func (s LoginState) String() string {
	if s < 0 || int(s) >= len(loginStateNames) {
		return "unknown"
	}
	return loginStateNames[s]
}
