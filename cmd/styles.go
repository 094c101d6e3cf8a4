package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// markStyle colours boundary glyphs. An empty colour disables styling.
func markStyle(color string) (lipgloss.Style, bool) {
	if color == "" {
		return lipgloss.NewStyle(), false
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true), true
}

// colorize wraps every rune of lines that is not background in style.
func colorize(lines []string, background rune, style lipgloss.Style) []string {
	out := make([]string, len(lines))
	var sb strings.Builder
	for i, line := range lines {
		sb.Reset()
		for _, r := range line {
			if r == background {
				sb.WriteRune(r)
				continue
			}
			sb.WriteString(style.Render(string(r)))
		}
		out[i] = sb.String()
	}
	return out
}

// glyphFlag parses a flag that must hold exactly one character.
func glyphFlag(name, value string) (rune, error) {
	if utf8.RuneCountInString(value) != 1 {
		return 0, fmt.Errorf("--%s must be a single character, got %q", name, value)
	}
	r, _ := utf8.DecodeRuneInString(value)
	return r, nil
}
