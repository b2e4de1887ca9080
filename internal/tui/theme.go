package tui

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorText     lipgloss.Color = "#cdd6f4"
	colorMuted    lipgloss.Color = "#a6adc8"
	colorBorder   lipgloss.Color = "#585b70"
	colorMantle   lipgloss.Color = "#181825"
	colorSurface0 lipgloss.Color = "#313244"
	colorAccent   lipgloss.Color = "#ffd33d"
	colorError    lipgloss.Color = "#f38ba8"
)

var (
	titleStyle        = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	mutedStyle        = lipgloss.NewStyle().Foreground(colorMuted)
	footerStyle       = lipgloss.NewStyle().Foreground(colorMuted)
	statusBarStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	statusErrBarStyle = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	noticeStyle       = lipgloss.NewStyle().Foreground(colorText).Bold(true)

	primaryButtonStyle = lipgloss.NewStyle().
				Foreground(colorMantle).
				Background(colorAccent).
				Bold(true).
				Padding(0, 2)
	buttonStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 2)
	iconButtonStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Padding(0, 1)
	circleButtonStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorAccent).
				Padding(0, 2)

	stickerCellStyle = lipgloss.NewStyle().
				Border(lipgloss.HiddenBorder()).
				Padding(0, 1)
	stickerCellActiveStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorAccent).
				Padding(0, 1)
	sheetTitleStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface0).
			Bold(true).
			Padding(0, 1)
)

func rgbaOf(c lipgloss.Color) color.RGBA {
	var r, g, b uint8
	if _, err := fmt.Sscanf(string(c), "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
