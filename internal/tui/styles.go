package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/dsmmcken/distman/internal/output"
)

var (
	StyleSelected = lipgloss.NewStyle().
			Foreground(output.ColorPrimary).
			Bold(true)

	StyleTitle = lipgloss.NewStyle().
			Foreground(output.ColorPrimary).
			Bold(true).
			MarginBottom(1)

	StyleDim     = output.StyleDim
	StyleSuccess = output.StyleSuccess
	StyleWarning = output.StyleWarning
	StyleError   = output.StyleError
)
