package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ANSI color codes for status badges
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorGrey   = "\033[90m"
	colorBold   = "\033[1m"
)

// badge renders text colored by its display color class (success, warning,
// danger, anything else neutral).
func badge(colorClass, text string) string {
	switch colorClass {
	case "success":
		return colorGreen + text + colorReset
	case "warning":
		return colorYellow + text + colorReset
	case "danger":
		return colorRed + text + colorReset
	default:
		return colorGrey + text + colorReset
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// confirm asks a yes/no question on stdin. skip bypasses the prompt, for
// --yes and non-interactive use.
func confirm(prompt string, skip bool) bool {
	if skip {
		return true
	}
	fmt.Printf("%s [y/N]: ", prompt)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}

// promptLine reads one line from stdin after printing a label.
func promptLine(label string) (string, error) {
	fmt.Printf("%s: ", label)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("error reading input: %w", err)
		}
		return "", fmt.Errorf("no input")
	}
	return strings.TrimSpace(scanner.Text()), nil
}
