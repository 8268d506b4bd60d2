package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/diillson/carbonscope-dashboard-go/internal/application/viewmodel"
	"github.com/diillson/carbonscope-dashboard-go/internal/domain/entity"
)

// RetryHint aparece ao lado do placeholder de um widget que falhou.
const RetryHint = "press r to retry"

// weeklyBarWidth é a largura da maior barra semanal.
const weeklyBarWidth = 30

// View renderiza cabeçalho, corpo rolável (ou modal) e rodapé.
func (m Model) View() string {
	header := m.renderHeader()
	footer := m.renderFooter()

	var body string
	if content, ok := m.openModal(); ok {
		body = m.renderModal(content)
	} else {
		lines := m.contentLines()
		start := m.clampScroll(m.scroll)
		end := min(len(lines), start+m.bodyHeight())
		body = strings.Join(lines[start:end], "\n")
	}

	if m.sidebar.IsOpen() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), body)
	}
	return header + "\n" + body + "\n" + footer
}

// bodyHeight é a altura disponível entre cabeçalho e rodapé.
func (m Model) bodyHeight() int {
	return max(1, m.height-2)
}

func (m Model) renderHeader() string {
	route := m.router.Current()
	title := "CarbonScope · " + route.Title
	if route.View == viewmodel.ViewDashboard && m.loading() {
		title += "  " + m.spinner.View() + " Loading..."
	}
	return m.styles.Header.Render(title)
}

func (m Model) renderFooter() string {
	keys := "m menu · j/k scroll · q quit"
	if m.router.Current().View == viewmodel.ViewDashboard {
		if m.Fade().Interactive {
			keys = "enter start · " + keys
		} else {
			keys = "←/→ select · enter details · g score · r reload · x export · " + keys
		}
	}
	if m.status != "" {
		keys = m.status + " | " + keys
	}
	return m.styles.Footer.Render(keys)
}

func (m Model) renderSidebar() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Menu") + "\n\n")
	current := m.router.Current().Path
	for i, item := range m.sidebar.Items() {
		cursor := "  "
		if i == m.sideCursor {
			cursor = "> "
		}
		text := item.Text
		if item.Path == current {
			text = m.styles.Selected.Render(text)
		}
		b.WriteString(cursor + text + "\n")
	}
	return m.styles.Sidebar.Render(b.String())
}

// openModal retorna o conteúdo do modal aberto, se houver.
func (m Model) openModal() (viewmodel.ModalContent, bool) {
	if m.game.IsOpen() {
		return m.modal.Render(m.game.Selected(), viewmodel.ScoreModalValue(m.dash.Gamification.State()))
	}
	if m.selector.Modal().IsOpen() {
		value := ""
		if d, ok := m.selector.Clicked(); ok {
			value = viewmodel.FormatNumber(d.Value)
		}
		return m.modal.Render(m.selector.Modal().Selected(), value)
	}
	return viewmodel.ModalContent{}, false
}

func (m Model) renderModal(content viewmodel.ModalContent) string {
	width := 60
	if m.width > 0 {
		width = min(width, max(20, m.width-6))
	}
	body := m.styles.CardTitle.Render(content.Title) + "\n\n" +
		lipgloss.NewStyle().Width(width).Render(content.Body)
	if content.Value != "" {
		body += "\n\n" + m.styles.Value.Render("Value: "+content.Value)
	}
	body += "\n\n" + m.styles.Muted.Render("esc to close")
	return m.styles.Modal.Render(body)
}

// contentLines renderiza a rota atual como linhas roláveis.
func (m Model) contentLines() []string {
	var content string
	switch m.router.Current().View {
	case viewmodel.ViewDashboard:
		content = m.renderLanding() + "\n" + m.renderDashboard()
	case viewmodel.ViewGamificationInfo:
		content = m.renderGamificationInfo()
	case viewmodel.ViewTips:
		content = m.renderTips()
	case viewmodel.ViewReports:
		content = m.styles.Card.Render(m.styles.CardTitle.Render("Reports") + "\n\nReports Coming Soon")
	case viewmodel.ViewAbout:
		content = m.renderAbout()
	default:
		content = m.renderNotFound()
	}
	return strings.Split(content, "\n")
}

// renderLanding ocupa uma tela inteira; o título esmaece conforme a rolagem.
func (m Model) renderLanding() string {
	fade := m.Fade()
	lines := make([]string, m.height)

	if fade.Opacity > 0 {
		color := fadeColor(fade.Opacity)
		title := lipgloss.NewStyle().Bold(true).Foreground(color).Render("C A R B O N S C O P E")
		subtitle := lipgloss.NewStyle().Foreground(color).Render("See the invisible footprint of your digital life")
		hint := lipgloss.NewStyle().Foreground(color).Render("scroll down or press enter")

		mid := m.height / 2
		if mid-1 >= 0 && mid+2 < len(lines) {
			lines[mid-1] = title
			lines[mid] = subtitle
			lines[mid+2] = hint
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderDashboard() string {
	total := m.dash.TotalCO2.State()
	totalCard := m.card("Total CO2 Today",
		m.valueOrRetry(viewmodel.FormatTotal(total), total.Status)+"\n"+
			m.progress.ViewAs(viewmodel.TotalPercent(total)/100))

	daily := m.dash.Daily.State()
	dailyBody := m.valueOrRetry(viewmodel.Placeholder, daily.Status)
	if daily.Loaded() {
		dailyBody = strings.Join(viewmodel.DailyLines(daily.Data), "\n")
	}
	dailyCard := m.card("Daily Breakdown", dailyBody)

	game := m.dash.Gamification.State()
	gameCard := m.card("Gamification",
		"Score: "+m.valueOrRetry(viewmodel.FormatScore(game), game.Status)+"\n"+
			"Level: "+viewmodel.FormatLevel(game)+"\n"+
			m.progress.ViewAs(viewmodel.ScorePercent(game)/100))

	top := lipgloss.JoinHorizontal(lipgloss.Top, totalCard, dailyCard, gameCard)
	return top + "\n" + m.renderCategories() + "\n" + m.renderWeekly()
}

func (m Model) renderCategories() string {
	state := m.dash.Categories.State()
	if !state.Loaded() {
		return m.card("Category Emissions (Quantity)", m.valueOrRetry(viewmodel.Placeholder, state.Status))
	}

	active, hasActive := m.selector.ActiveIndex()
	var b strings.Builder
	for i, c := range m.selector.Data() {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(m.selector.Color(i)))
		// O raio externo vira o comprimento do segmento.
		segment := strings.Repeat("█", m.selector.OuterRadius(i)/8)
		marker := "  "
		name := c.Name
		if hasActive && i == active {
			marker = "▶ "
			name = m.styles.Selected.Render(name)
		}
		fmt.Fprintf(&b, "%s%s %s %s\n", marker, swatch.Render(segment), name, viewmodel.FormatNumber(c.Value))
	}
	if len(m.selector.Data()) == 0 {
		b.WriteString(m.styles.Muted.Render("No categories yet."))
	}
	return m.card("Category Emissions (Quantity)", strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderWeekly() string {
	state := m.dash.Weekly.State()
	if !state.Loaded() {
		return m.card("Total Carbon Emissions (Weekly)", m.valueOrRetry(viewmodel.Placeholder, state.Status))
	}

	maxValue := 0.0
	for _, w := range state.Data {
		maxValue = max(maxValue, w.Value)
	}
	var b strings.Builder
	for _, w := range state.Data {
		n := 0
		if maxValue > 0 {
			n = int(w.Value / maxValue * weeklyBarWidth)
		}
		bar := lipgloss.NewStyle().Foreground(Accent).Render(strings.Repeat("█", n))
		fmt.Fprintf(&b, "%-4s %s %s\n", w.Day, bar, viewmodel.FormatNumber(w.Value))
	}
	return m.card("Total Carbon Emissions (Weekly)", strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderGamificationInfo() string {
	var b strings.Builder
	for _, level := range entity.GamificationLevels {
		name := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(level.Color)).Render(level.Name)
		b.WriteString(name + "\n" + level.Description + "\n\n")
	}
	return m.card("Gamification Levels", strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderTips() string {
	var b strings.Builder
	for i, tip := range entity.Tips {
		fmt.Fprintf(&b, "%2d. %s\n", i+1, tip)
	}
	return m.card("Tips to Reduce Your Digital Carbon Footprint", strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderAbout() string {
	cards := make([]string, 0, len(entity.About))
	for _, section := range entity.About {
		cards = append(cards, m.card(section.Title, lipgloss.NewStyle().Width(70).Render(section.Body)))
	}
	return strings.Join(cards, "\n")
}

func (m Model) renderNotFound() string {
	return m.card("404 Not Found", fmt.Sprintf("No view at %q. Press m to open the menu.", m.router.Current().Path))
}

func (m Model) card(title, body string) string {
	return m.styles.Card.Render(m.styles.CardTitle.Render(title) + "\n" + body)
}

// valueOrRetry mostra a dica de retry junto do placeholder de um widget com erro.
func (m Model) valueOrRetry(value string, status viewmodel.Status) string {
	if status != viewmodel.StatusErrored {
		return value
	}
	return value + " " + m.styles.Error.Render("("+RetryHint+")")
}

func (m Model) loading() bool {
	return m.dash.Daily.State().Status == viewmodel.StatusLoading ||
		m.dash.TotalCO2.State().Status == viewmodel.StatusLoading ||
		m.dash.Gamification.State().Status == viewmodel.StatusLoading ||
		m.dash.Categories.State().Status == viewmodel.StatusLoading ||
		m.dash.Weekly.State().Status == viewmodel.StatusLoading
}
