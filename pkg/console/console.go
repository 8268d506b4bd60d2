package console

import (
	"fmt"
	"math"
	"strings"

	"github.com/fatih/color"
	"github.com/pterm/pterm"

	"github.com/diillson/carbonscope-dashboard-go/internal/shared/types"
)

// weeklyBarWidth é a largura, em caracteres, da maior barra do gráfico semanal.
const weeklyBarWidth = 40

// Console é uma implementação do ConsoleInterface.
type Console struct{}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{}
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Cores predefinidas para uso consistente
var (
	BrightGreen  = color.New(color.FgGreen, color.Bold).SprintFunc()
	BrightYellow = color.New(color.FgYellow, color.Bold).SprintFunc()
	BrightRed    = color.New(color.FgRed, color.Bold).SprintFunc()
	BrightCyan   = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightGreen)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// DisplayPanel exibe um texto dentro de uma caixa com título.
func (c *Console) DisplayPanel(title string, body string) {
	panel := pterm.DefaultBox.
		WithTitle(title).
		WithBoxStyle(pterm.NewStyle(pterm.FgGreen)).
		Sprint(strings.TrimRight(body, "\n"))
	fmt.Println("\n" + panel)
}

// DisplayProgress exibe uma barra horizontal de 0 a 100%.
func (c *Console) DisplayProgress(label string, percent float64) {
	fmt.Printf("%s %s %s\n", label, progressBar(percent, 30), BrightCyan(fmt.Sprintf("%.0f%%", clampPercent(percent))))
}

// DisplayWeeklyBars exibe o gráfico de barras da série semanal, na ordem recebida.
func (c *Console) DisplayWeeklyBars(days []types.DailyValue) {
	if len(days) == 0 {
		pterm.Warning.Println("No weekly data available")
		return
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(weeklyBarRows(days))
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.WithTitle("Total Carbon Emissions (Weekly)").WithBoxStyle(pterm.NewStyle(pterm.FgGreen)).Sprint(renderedTable)
	fmt.Println("\n" + panel)
}

// weeklyBarRows monta as linhas dia, valor, barra e variação em relação ao dia anterior.
func weeklyBarRows(days []types.DailyValue) pterm.TableData {
	maxValue := 0.0
	for _, d := range days {
		if d.Value > maxValue {
			maxValue = d.Value
		}
	}

	tableData := pterm.TableData{
		{"Day", "gCO2", "", "Change"},
	}

	var prev *float64
	for _, d := range days {
		barLength := 0
		if maxValue > 0 {
			barLength = int((d.Value / maxValue) * weeklyBarWidth)
		}
		bar := strings.Repeat("█", barLength)

		barColor := pterm.FgGreen.Sprint(bar)
		change := ""

		if prev != nil {
			switch {
			case *prev < 0.01 && d.Value < 0.01:
				change = pterm.FgYellow.Sprint("0%")
				barColor = pterm.FgYellow.Sprint(bar)
			case *prev < 0.01:
				change = pterm.FgRed.Sprint("N/A")
				barColor = pterm.FgRed.Sprint(bar)
			default:
				changePercent := ((d.Value - *prev) / *prev) * 100.0
				switch {
				case math.Abs(changePercent) < 0.01:
					change = pterm.FgYellow.Sprint("0%")
					barColor = pterm.FgYellow.Sprint(bar)
				case changePercent > 0:
					// mais emissão é pior
					change = pterm.FgRed.Sprintf("+%.2f%%", changePercent)
					barColor = pterm.FgRed.Sprint(bar)
				default:
					change = pterm.FgGreen.Sprintf("%.2f%%", changePercent)
				}
			}
		}

		tableData = append(tableData, []string{
			d.Day,
			fmt.Sprintf("%g", d.Value),
			barColor,
			change,
		})

		current := d.Value
		prev = &current
	}
	return tableData
}

func progressBar(percent float64, width int) string {
	filled := int(math.Round(clampPercent(percent) / 100 * float64(width)))
	return BrightGreen(strings.Repeat("█", filled)) + strings.Repeat("░", width-filled)
}

func clampPercent(p float64) float64 {
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
