package tui

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
)

// Cores da interface, alinhadas ao tema escuro do dashboard.
var (
	Background = lipgloss.Color("#23272b")
	Foreground = lipgloss.Color("#f2f2f2")
	Accent     = lipgloss.Color("#ffeb3b")
	Muted      = lipgloss.Color("#8a8f98")
	Border     = lipgloss.Color("#3a3f45")
	Danger     = lipgloss.Color("#e53935")
	Good       = lipgloss.Color("#00c49f")
)

// accentRGB é o amarelo do título da landing.
var accentRGB = [3]float64{0xff, 0xeb, 0x3b}

// backgroundRGB é a cor para a qual o título esmaece.
var backgroundRGB = [3]float64{0x23, 0x27, 0x2b}

// Styles groups the lipgloss styles used by the views.
type Styles struct {
	Header    lipgloss.Style
	Title     lipgloss.Style
	Card      lipgloss.Style
	CardTitle lipgloss.Style
	Value     lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
	Sidebar   lipgloss.Style
	Selected  lipgloss.Style
	Modal     lipgloss.Style
	Footer    lipgloss.Style
}

// DefaultStyles returns the dashboard styles.
func DefaultStyles() Styles {
	return Styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(Accent).Padding(0, 1),
		Title:     lipgloss.NewStyle().Bold(true),
		Card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Border).Padding(0, 1),
		CardTitle: lipgloss.NewStyle().Bold(true).Foreground(Accent),
		Value:     lipgloss.NewStyle().Bold(true).Foreground(Foreground),
		Muted:     lipgloss.NewStyle().Foreground(Muted),
		Error:     lipgloss.NewStyle().Foreground(Danger),
		Sidebar:   lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, true, false, false).BorderForeground(Border).Padding(0, 1),
		Selected:  lipgloss.NewStyle().Bold(true).Foreground(Accent),
		Modal:     lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(Accent).Padding(1, 2),
		Footer:    lipgloss.NewStyle().Foreground(Muted).Padding(0, 1),
	}
}

// fadeColor mistura o amarelo do título com o fundo conforme a opacidade.
func fadeColor(opacity float64) lipgloss.Color {
	if math.IsNaN(opacity) {
		opacity = 1
	}
	opacity = math.Max(0, math.Min(1, opacity))
	var c [3]int
	for i := range c {
		c[i] = int(math.Round(backgroundRGB[i] + (accentRGB[i]-backgroundRGB[i])*opacity))
	}
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
}
