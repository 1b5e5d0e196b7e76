// Package stats turns raw vacancy listings into per-language salary
// statistics.
package stats

import (
	"sort"

	"github.com/mlyakhov/salaryscope/internal/models"
)

// rubCode is the normalized currency code both clients emit for
// ruble-denominated listings.
const rubCode = "rub"

// PredictRubSalary estimates the monthly ruble salary of a single vacancy.
// It returns nil for non-ruble listings and for listings without either
// bound. A lone upper bound is discounted to 80%, a lone lower bound is
// marked up by 20%, and a full range yields its midpoint.
func PredictRubSalary(v models.Vacancy) *int {
	if v.Currency != rubCode {
		return nil
	}

	var predicted int
	switch {
	case v.SalaryFrom == 0 && v.SalaryTo == 0:
		return nil
	case v.SalaryFrom == 0:
		predicted = int(float64(v.SalaryTo) * 0.8)
	case v.SalaryTo == 0:
		predicted = int(float64(v.SalaryFrom) * 1.2)
	default:
		predicted = (v.SalaryFrom + v.SalaryTo) / 2
	}

	return &predicted
}

// Collect aggregates one language's search result into a report row.
// Vacancies with no usable salary are excluded; with zero usable records
// the average stays nil.
func Collect(language string, source models.Source, result *models.SearchResult) models.LanguageStat {
	stat := models.LanguageStat{
		Language:       language,
		Source:         source,
		VacanciesFound: result.Found,
	}

	sum := 0
	for _, v := range result.Vacancies {
		salary := PredictRubSalary(v)
		if salary == nil {
			continue
		}
		sum += *salary
		stat.VacanciesProcessed++
	}

	if stat.VacanciesProcessed > 0 {
		avg := sum / stat.VacanciesProcessed
		stat.AverageSalary = &avg
	}

	return stat
}

// RatedVacancy pairs a vacancy with its predicted salary, for verbose
// listings.
type RatedVacancy struct {
	models.Vacancy
	Predicted int
}

// TopVacancies returns the n highest-paying usable vacancies, best first.
func TopVacancies(vacancies []models.Vacancy, n int) []RatedVacancy {
	rated := make([]RatedVacancy, 0, len(vacancies))
	for _, v := range vacancies {
		if salary := PredictRubSalary(v); salary != nil {
			rated = append(rated, RatedVacancy{Vacancy: v, Predicted: *salary})
		}
	}

	sort.SliceStable(rated, func(i, j int) bool {
		return rated[i].Predicted > rated[j].Predicted
	})

	if len(rated) > n {
		rated = rated[:n]
	}
	return rated
}

// SortByAverage orders report rows by average salary descending, rows
// without an average last.
func SortByAverage(rows []models.LanguageStat) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].AverageSalary, rows[j].AverageSalary
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a > *b
		}
	})
}
