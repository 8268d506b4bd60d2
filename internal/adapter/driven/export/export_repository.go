package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/diillson/carbonscope-dashboard-go/internal/domain/entity"
	"github.com/diillson/carbonscope-dashboard-go/internal/domain/repository"
	"github.com/jung-kurt/gofpdf"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// --- Funções de Exportação do Snapshot do Dashboard ---

func (r *ExportRepositoryImpl) ExportSnapshotToCSV(snapshot entity.DashboardSnapshot, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(snapshotRecords(snapshot)); err != nil {
		return "", fmt.Errorf("error writing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportSnapshotToJSON(snapshot entity.DashboardSnapshot, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(snapshot); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportSnapshotToPDF(snapshot entity.DashboardSnapshot, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{35, 39, 43}
	headerTextColor := [3]int{255, 235, 59}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}
	barColor := [3]int{255, 200, 40}

	sectionTitle := func(title string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)
	}

	drawSection := func(title string, content string) {
		if content == "" {
			return
		}
		sectionTitle(title)
		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(content), "", "L", false)
		pdf.Ln(8)
	}

	pdf.AddPage()

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  Carbon Scope - Dashboard Report"), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	generated := fmt.Sprintf("  Generated at: %s", snapshot.GeneratedAt.Format(time.RFC3339))
	pdf.CellFormat(0, 8, tr(generated), "", 1, "L", true, 0, "")
	pdf.Ln(10)

	sectionTitle("Total CO2 Today")
	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 12, tr(formatTotal(snapshot.TotalCO2)), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	drawSection("Daily Breakdown", strings.Join(dailyLines(snapshot.Daily), "\n"))
	drawSection("Gamification", strings.Join(gamificationLines(snapshot.Gamification), "\n"))

	categories := ""
	for _, c := range snapshot.Categories {
		categories += fmt.Sprintf("%s: %s\n", c.Name, formatNumber(c.Value))
	}
	drawSection("Category Emissions (Quantity)", strings.TrimSpace(categories))

	if len(snapshot.Weekly) > 0 {
		sectionTitle("Total Carbon Emissions (Weekly, gCO2)")
		maxValue := 0.0
		for _, w := range snapshot.Weekly {
			if w.Value > maxValue {
				maxValue = w.Value
			}
		}
		pdf.SetFont("Arial", "", 9)
		for _, w := range snapshot.Weekly {
			barWidth := 0.0
			if maxValue > 0 && w.Value > 0 {
				barWidth = (w.Value / maxValue) * 130
			}
			y := pdf.GetY()
			pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
			pdf.CellFormat(20, 6, tr(w.Day), "", 0, "L", false, 0, "")
			if barWidth > 0 {
				pdf.SetFillColor(barColor[0], barColor[1], barColor[2])
				pdf.Rect(pdf.GetX(), y+1, barWidth, 4, "F")
			}
			pdf.SetX(pdf.GetX() + 135)
			pdf.CellFormat(30, 6, tr(formatNumber(w.Value)), "", 1, "R", false, 0, "")
		}
		pdf.Ln(8)
	}

	drawSection("Unavailable Widgets", strings.Join(errorLines(snapshot.Errors), "\n"))

	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	footerText := fmt.Sprintf("Generated by Carbon Scope Dashboard (Go) | %s", time.Now().Format("2006-01-02"))
	pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// snapshotRecords achata o snapshot em linhas section,item,value.
func snapshotRecords(s entity.DashboardSnapshot) [][]string {
	records := [][]string{
		{"Section", "Item", "Value"},
		{"report", "generated_at", s.GeneratedAt.Format(time.RFC3339)},
	}

	if s.Daily != nil {
		records = append(records,
			[]string{"daily_breakdown", "emails_sent", strconv.Itoa(s.Daily.EmailsSent)},
			[]string{"daily_breakdown", "browsing_hours", formatNumber(s.Daily.BrowsingHours)},
			[]string{"daily_breakdown", "cloud_storage_gb", formatNumber(s.Daily.CloudStorageGB)},
		)
	}
	if s.TotalCO2 != nil && s.TotalCO2.Total != nil {
		records = append(records, []string{"total_co2", "grams", formatNumber(*s.TotalCO2.Total)})
	}
	if s.Gamification != nil {
		records = append(records,
			[]string{"gamification", "score", fmt.Sprintf("%.2f", s.Gamification.Score)},
			[]string{"gamification", "level", s.Gamification.Level},
		)
	}
	for _, c := range s.Categories {
		records = append(records, []string{"category", c.Name, formatNumber(c.Value)})
	}
	for _, w := range s.Weekly {
		records = append(records, []string{"weekly", w.Day, formatNumber(w.Value)})
	}
	for _, line := range sortedErrors(s.Errors) {
		records = append(records, []string{"error", line[0], line[1]})
	}
	return records
}

func dailyLines(d *entity.DailyBreakdown) []string {
	if d == nil {
		return nil
	}
	return []string{
		fmt.Sprintf("Emails Sent: %d", d.EmailsSent),
		fmt.Sprintf("Browsing Hours: %s hrs", formatNumber(d.BrowsingHours)),
		fmt.Sprintf("Cloud Storage: %s GB", formatNumber(d.CloudStorageGB)),
	}
}

func gamificationLines(g *entity.GamificationStatus) []string {
	if g == nil {
		return nil
	}
	level := g.Level
	if level == "" {
		level = "--"
	}
	return []string{
		fmt.Sprintf("Score: %.2f", g.Score),
		fmt.Sprintf("Level: %s", level),
	}
}

func errorLines(errs map[string]string) []string {
	var lines []string
	for _, e := range sortedErrors(errs) {
		lines = append(lines, fmt.Sprintf("%s: %s", e[0], e[1]))
	}
	return lines
}

func sortedErrors(errs map[string]string) [][2]string {
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([][2]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, [2]string{k, errs[k]})
	}
	return out
}

func formatTotal(t *entity.TotalCO2) string {
	if t == nil || t.Total == nil {
		return "--"
	}
	return formatNumber(*t.Total) + "g"
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
