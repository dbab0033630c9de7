package theme

import "github.com/charmbracelet/lipgloss"

var (
	PanelBg      = lipgloss.Color("#1e1e2e")
	Accent       = lipgloss.Color("#cba6f7")
	Accent2      = lipgloss.Color("#89b4fa")
	WarnColor    = lipgloss.Color("#f9e2af")
	ErrorColor   = lipgloss.Color("#f38ba8")
	TextColor    = lipgloss.Color("#cdd6f4")
	SubTextColor = lipgloss.Color("#a6adc8")
	DimColor     = lipgloss.Color("#6c7086")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)
	BreadcrumbStyle = lipgloss.NewStyle().
			Foreground(Accent2)
	TextStyle = lipgloss.NewStyle().
			Foreground(TextColor)
	SubTextStyle = lipgloss.NewStyle().
			Foreground(SubTextColor)
	DimStyle = lipgloss.NewStyle().
			Foreground(DimColor)
	CurrentStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)
	PromptStyle = lipgloss.NewStyle().
			Foreground(WarnColor).
			Bold(true)
	HintStyle = lipgloss.NewStyle().
			Foreground(DimColor).
			Italic(true)
)
