package ui

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/ssh/terminal"
)

// prompt prints a label and reads one trimmed line.
func (a *App) prompt(label string) string {
	fmt.Fprint(a.out, label)
	line, err := a.in.ReadString('\n')
	if err != nil {
		a.quit = true
		return ""
	}
	return strings.TrimSpace(line)
}

// promptDefault reads a line, keeping def when the user enters nothing.
func (a *App) promptDefault(label, def string) string {
	value := a.prompt(fmt.Sprintf("%s [%s]: ", label, def))
	if value == "" {
		return def
	}
	return value
}

// promptPassword reads a line without echoing it. Falls back to a plain read
// when stdin is not a terminal (piped input, tests).
func (a *App) promptPassword(label string) string {
	fd := int(os.Stdin.Fd())
	if !terminal.IsTerminal(fd) {
		return a.prompt(label)
	}

	fmt.Fprint(a.out, label)
	password, err := terminal.ReadPassword(fd)
	fmt.Fprintln(a.out)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(password))
}

// confirm asks a yes/no question and only returns true on an explicit yes.
func (a *App) confirm(question string) bool {
	answer := strings.ToLower(a.prompt(question + " (y/N): "))
	return answer == "y" || answer == "yes"
}
