package userinteraction

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"golang.org/x/term"

	"portal-automation/internal/application/port/output"
	"portal-automation/internal/domain/entity"
)

var (
	_ output.UserInteractionPort = (*ConsoleUserInteraction)(nil)
	_ output.ProgressPort        = (*ConsoleUserInteraction)(nil)
)

type ConsoleUserInteraction struct {
	reader *bufio.Reader
	out    io.Writer
	// fd of the terminal to read secrets from without echo; -1 when input
	// is not a terminal.
	fd int
}

func NewConsoleUserInteraction() *ConsoleUserInteraction {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		fd = -1
	}
	return &ConsoleUserInteraction{
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		fd:     fd,
	}
}

// NewConsoleFrom reads answers from in and writes to out. Secrets are read as
// plain lines.
func NewConsoleFrom(in io.Reader, out io.Writer) *ConsoleUserInteraction {
	return &ConsoleUserInteraction{
		reader: bufio.NewReader(in),
		out:    out,
		fd:     -1,
	}
}

func (u *ConsoleUserInteraction) AskQuestion(ctx context.Context, question string) (string, error) {
	color.New(color.FgYellow, color.Bold).Fprintf(u.out, "%s ", question)

	answer, err := u.reader.ReadString('\n')
	if err != nil && (err != io.EOF || answer == "") {
		return "", fmt.Errorf("failed to read user input: %w", err)
	}
	return strings.TrimSpace(answer), nil
}

func (u *ConsoleUserInteraction) AskSecret(ctx context.Context, question string) (string, error) {
	if u.fd < 0 {
		return u.AskQuestion(ctx, question)
	}

	color.New(color.FgYellow, color.Bold).Fprintf(u.out, "%s ", question)
	secret, err := term.ReadPassword(u.fd)
	fmt.Fprintln(u.out)
	if err != nil {
		return "", fmt.Errorf("failed to read secret: %w", err)
	}
	return strings.TrimSpace(string(secret)), nil
}

func (u *ConsoleUserInteraction) ShowState(ctx context.Context, state entity.LoginState) {
	color.New(color.FgGreen).Fprintf(u.out, "✓ %s\n", stateLabel(state))
}

func (u *ConsoleUserInteraction) ShowFailure(ctx context.Context, state entity.LoginState, err error) {
	color.New(color.FgRed, color.Bold).Fprintf(u.out, "✗ failed after %s: ", stateLabel(state))
	color.New(color.Faint).Fprintln(u.out, truncate(err.Error(), 300))
}

func stateLabel(state entity.LoginState) string {
	labels := map[entity.LoginState]string{
		entity.LoginNotStarted:        "start",
		entity.LoginNavigated:         "Portal opened",
		entity.LoginIdentifierEntered: "Login entered",
		entity.LoginSecretEntered:     "Password entered",
		entity.LoginSubmitted:         "Form submitted",
		entity.LoggedIn:               "Logged in",
	}
	if label, ok := labels[state]; ok {
		return label
	}
	return state.String()
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	// Cut on a rune boundary.
	for maxLen > 0 && !utf8.RuneStart(s[maxLen]) {
		maxLen--
	}
	return s[:maxLen] + "..."
}
