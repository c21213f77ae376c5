package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Applied    *lipgloss.Style
	Current    *lipgloss.Style
	Unapplied  *lipgloss.Style
	Hidden     *lipgloss.Style
	EmptyPatch *lipgloss.Style
	RangeItem  *lipgloss.Style
	CursorItem *lipgloss.Style

	Loading           *lipgloss.Style
	Error             *lipgloss.Style
	Info              *lipgloss.Style
	Header            *lipgloss.Style
	Footer            *lipgloss.Style
	Filter            *lipgloss.Style
	FilterPrompt      *lipgloss.Style
	FilterPlaceholder *lipgloss.Style
	Cursor            *lipgloss.Style
	PromptTitle       *lipgloss.Style
}

var defaultStyles = Styles{
	Applied: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Current: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	),
	Unapplied: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	),
	Hidden: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Italic(true),
	),
	EmptyPatch: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("167")),
	),
	RangeItem: ptr(
		lipgloss.NewStyle().Background(lipgloss.Color("236")),
	),
	CursorItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Loading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true),
	),
	PromptTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
