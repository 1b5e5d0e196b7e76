package models

// Source identifies which job platform a result came from.
type Source string

const (
	SourceHeadHunter Source = "hh"
	SourceSuperJob   Source = "superjob"
)

// Vacancy is a single job listing normalized across sources.
// Currency is a lowercase code; ruble listings use "rub".
type Vacancy struct {
	Title      string `json:"title"`
	Company    string `json:"company"`
	Town       string `json:"town"`
	URL        string `json:"url"`
	SalaryFrom int    `json:"salary_from"`
	SalaryTo   int    `json:"salary_to"`
	Currency   string `json:"currency"`
	Snippet    string `json:"snippet,omitempty"`
	Source     Source `json:"source"`
}

// SearchResult holds everything a source returned for one search term.
// Found is the platform's total hit count, which can exceed len(Vacancies)
// when the platform caps pagination depth.
type SearchResult struct {
	Found     int
	Vacancies []Vacancy
}

// LanguageStat is one row of the final report.
// AverageSalary is nil when no vacancy carried usable salary data.
type LanguageStat struct {
	Language           string `json:"language"`
	Source             Source `json:"source"`
	VacanciesFound     int    `json:"vacancies_found"`
	VacanciesProcessed int    `json:"vacancies_processed"`
	AverageSalary      *int   `json:"average_salary"`
}

// Report is the per-source aggregation result.
type Report struct {
	Source Source         `json:"source"`
	Title  string         `json:"title"`
	Stats  []LanguageStat `json:"stats"`
}
