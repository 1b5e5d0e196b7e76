package ui

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"github.com/mlyakhov/salaryscope/internal/models"
)

// FormatSalary renders a ruble amount with thousands separators.
func FormatSalary(amount int) string {
	return fmt.Sprintf("%s ₽", humanize.Comma(int64(amount)))
}

// ColorizeSalary applies color by salary magnitude; nil renders a dash.
func ColorizeSalary(amount *int) string {
	if amount == nil {
		return pterm.Gray("—")
	}

	formatted := FormatSalary(*amount)
	switch {
	case *amount >= 250000:
		return pterm.Green(formatted)
	case *amount >= 150000:
		return pterm.LightGreen(formatted)
	case *amount >= 80000:
		return pterm.Yellow(formatted)
	default:
		return pterm.Red(formatted)
	}
}

// RenderReport renders one source's statistics as a titled table.
// Rows are expected in display order.
func RenderReport(report models.Report) (string, error) {
	rows := pterm.TableData{
		{"Language", "Vacancies Found", "Vacancies Processed", "Average Salary"},
	}
	for _, stat := range report.Stats {
		rows = append(rows, []string{
			stat.Language,
			strconv.Itoa(stat.VacanciesFound),
			strconv.Itoa(stat.VacanciesProcessed),
			ColorizeSalary(stat.AverageSalary),
		})
	}

	table, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithData(rows).
		Srender()
	if err != nil {
		return "", fmt.Errorf("rendering %s table: %w", report.Source, err)
	}

	return pterm.DefaultSection.Sprint(report.Title) + table + "\n", nil
}
