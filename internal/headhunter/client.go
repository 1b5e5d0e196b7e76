// Package headhunter is a thin client for the HeadHunter vacancy search
// API (https://api.hh.ru).
package headhunter

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mlyakhov/salaryscope/internal/logger"
	"github.com/mlyakhov/salaryscope/internal/models"
)

const (
	defaultBaseURL = "https://api.hh.ru"
	perPage        = 100

	// HH reports salaries in "RUR"; everything downstream speaks "rub".
	rurCode = "RUR"
)

// Config configures the client. Zero values fall back to the public API
// endpoint with a 30s timeout.
type Config struct {
	BaseURL   string
	Token     string // optional OAuth bearer, raises rate limits
	UserAgent string
	Timeout   time.Duration
}

// Client queries the HeadHunter API.
type Client struct {
	http *resty.Client
	log  *logger.Logger
}

// New builds a Client from cfg.
func New(cfg Config, log *logger.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "salaryscope/1.0"
	}

	cli := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", cfg.UserAgent)
	if cfg.Token != "" {
		cli.SetAuthToken(cfg.Token)
	}

	return &Client{http: cli, log: log}
}

type searchResponse struct {
	Items []vacancy `json:"items"`
	Found int       `json:"found"`
	Pages int       `json:"pages"`
	Page  int       `json:"page"`
}

type vacancy struct {
	Name     string `json:"name"`
	Employer struct {
		Name string `json:"name"`
	} `json:"employer"`
	Area struct {
		Name string `json:"name"`
	} `json:"area"`
	Salary *struct {
		From     int    `json:"from"`
		To       int    `json:"to"`
		Currency string `json:"currency"`
	} `json:"salary"`
	Snippet struct {
		Requirement    string `json:"requirement"`
		Responsibility string `json:"responsibility"`
	} `json:"snippet"`
	AlternateURL string `json:"alternate_url"`
}

// SearchVacancies fetches every page of results for text in the given HH
// area. maxPages caps the pagination depth; 0 means all pages. HH refuses
// to paginate past the first 2000 items, so a 400 after the first page is
// treated as end of results rather than an error.
func (c *Client) SearchVacancies(ctx context.Context, text string, area, maxPages int) (*models.SearchResult, error) {
	result := &models.SearchResult{}

	for page := 0; ; page++ {
		if maxPages > 0 && page >= maxPages {
			return result, nil
		}

		var body searchResponse
		resp, err := c.http.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"text":     text,
				"area":     strconv.Itoa(area),
				"per_page": strconv.Itoa(perPage),
				"page":     strconv.Itoa(page),
			}).
			SetResult(&body).
			Get("/vacancies")
		if err != nil {
			return nil, fmt.Errorf("hh search %q page %d: %w", text, page, err)
		}
		if resp.StatusCode() == http.StatusBadRequest && page > 0 {
			// Pagination depth cap reached.
			c.log.Debug().Str("text", text).Int("page", page).
				Msg("hh refused deep pagination, stopping")
			return result, nil
		}
		if resp.IsError() {
			return nil, fmt.Errorf("hh search %q page %d: status %d", text, page, resp.StatusCode())
		}

		if page == 0 {
			result.Found = body.Found
		}
		for _, item := range body.Items {
			result.Vacancies = append(result.Vacancies, normalize(item))
		}

		c.log.Debug().Str("text", text).Int("page", page).
			Int("items", len(body.Items)).Msg("hh page fetched")

		if page+1 >= body.Pages {
			return result, nil
		}
	}
}

func normalize(v vacancy) models.Vacancy {
	out := models.Vacancy{
		Title:   v.Name,
		Company: v.Employer.Name,
		Town:    v.Area.Name,
		URL:     v.AlternateURL,
		Snippet: v.Snippet.Requirement,
		Source:  models.SourceHeadHunter,
	}
	if out.Snippet == "" {
		out.Snippet = v.Snippet.Responsibility
	}
	if v.Salary != nil {
		out.SalaryFrom = v.Salary.From
		out.SalaryTo = v.Salary.To
		out.Currency = v.Salary.Currency
		if out.Currency == rurCode {
			out.Currency = "rub"
		}
	}
	return out
}
