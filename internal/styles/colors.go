package styles

import "github.com/charmbracelet/lipgloss"

// Monokai Pro color palette
const (
	// Base colors
	Background = "#2D2A2E"
	Foreground = "#FCFCFA"

	// Accent colors
	Red     = "#FF6188" // Errors, danger
	Orange  = "#FC9867" // Warnings
	Yellow  = "#FFD866" // Highlights
	Green   = "#A9DC76" // Success
	Cyan    = "#78DCE8" // Info
	Blue    = "#AB9DF2" // Quotes
	Magenta = "#FF6188" // Titles, emphasis

	// UI colors
	Comment = "#727072" // Dim text, help
	Border  = "#5B595C" // Borders, separators
)

// Common styles
var (
	SuccessStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Green))
	ErrorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Red))
	WarningStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Orange))
	DimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment))
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(Magenta))
	HighlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Yellow)).Bold(true)
	HelpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment))

	// Table/list styles
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(Magenta))

	TableStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(Border))

	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Background)).
			Background(lipgloss.Color(Yellow))

	NormalTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Foreground))

	PanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(Border)).
			Padding(0, 1)
)

// Markup styles, keyed by presentation class
var Tags = map[string]lipgloss.Style{
	"tag-b":  lipgloss.NewStyle().Bold(true),
	"tag-i":  lipgloss.NewStyle().Italic(true),
	"tag-u":  lipgloss.NewStyle().Foreground(lipgloss.Color(Background)).Background(lipgloss.Color(Yellow)),
	"tag-li": lipgloss.NewStyle().Foreground(lipgloss.Color(Foreground)),
	"tag-h1": lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color(Magenta)),
	"tag-h2": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(Cyan)),
	"tag-p": lipgloss.NewStyle().
		Foreground(lipgloss.Color(Blue)).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(lipgloss.Color(Border)).
		PaddingLeft(1),
}

// Tag returns the style for a presentation class, or an empty style
func Tag(class string) lipgloss.Style {
	if s, ok := Tags[class]; ok {
		return s
	}
	return lipgloss.NewStyle()
}
