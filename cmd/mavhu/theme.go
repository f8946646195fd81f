package main

import "github.com/charmbracelet/lipgloss"

// Theme is the single set of render styles every command draws from.
type Theme struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Good   lipgloss.Style
	Warn   lipgloss.Style
	Error  lipgloss.Style
	Card   lipgloss.Style
	Muted  lipgloss.Style
}

// resolveTheme is the one place light/dark colors are decided.
func resolveTheme(dark bool) Theme {
	var (
		fg     = lipgloss.Color("236")
		muted  = lipgloss.Color("245")
		accent = lipgloss.Color("29")
	)
	if dark {
		fg = lipgloss.Color("252")
		muted = lipgloss.Color("244")
		accent = lipgloss.Color("42")
	}
	border := lipgloss.RoundedBorder()
	return Theme{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		Header: lipgloss.NewStyle().Bold(true).Foreground(fg).Underline(true),
		Label:  lipgloss.NewStyle().Foreground(muted),
		Value:  lipgloss.NewStyle().Foreground(fg),
		Good:   lipgloss.NewStyle().Foreground(lipgloss.Color("35")),
		Warn:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Card:   lipgloss.NewStyle().Border(border).Padding(0, 1).Margin(0, 1, 1, 0),
		Muted:  lipgloss.NewStyle().Foreground(muted),
	}
}
