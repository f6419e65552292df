package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/gerunddev/notemark/internal/styles"
)

var (
	titleStyle     = styles.TitleStyle.MarginBottom(1)
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(styles.Cyan)).Bold(true)
	helpStyle      = styles.HelpStyle
	successStyle   = styles.SuccessStyle
	errorStyle     = styles.ErrorStyle
	emptyStyle     = styles.DimStyle.Italic(true)
	tableStyle     = styles.TableStyle
	previewStyle   = styles.PanelStyle
)
