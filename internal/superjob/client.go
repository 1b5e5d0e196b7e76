// Package superjob is a thin client for the SuperJob vacancy search API
// (https://api.superjob.ru/2.0).
package superjob

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mlyakhov/salaryscope/internal/logger"
	"github.com/mlyakhov/salaryscope/internal/models"
)

const (
	defaultBaseURL = "https://api.superjob.ru/2.0"
	pageSize       = 100
)

// Config configures the client. AppKey is mandatory and goes into the
// X-Api-App-Id header on every request.
type Config struct {
	BaseURL string
	AppKey  string
	Timeout time.Duration
}

// Client queries the SuperJob API.
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

	cli := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("X-Api-App-Id", cfg.AppKey)

	return &Client{http: cli, log: log}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TTL         int    `json:"ttl"`
}

// Authenticate runs the OAuth2 password grant and attaches the resulting
// bearer token to all subsequent requests. Vacancy search works without
// it; callers may skip this entirely when no login credentials exist.
func (c *Client) Authenticate(ctx context.Context, clientID, clientSecret, email, password string) error {
	var body tokenResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"login":         email,
			"password":      password,
			"client_id":     clientID,
			"client_secret": clientSecret,
		}).
		SetResult(&body).
		Get("/oauth2/password/")
	if err != nil {
		return fmt.Errorf("superjob auth: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("superjob auth: status %d", resp.StatusCode())
	}
	if body.AccessToken == "" {
		return fmt.Errorf("superjob auth: empty access token")
	}

	c.http.SetAuthToken(body.AccessToken)
	c.log.Debug().Int("ttl", body.TTL).Msg("superjob token obtained")
	return nil
}

type searchResponse struct {
	Objects []vacancy `json:"objects"`
	Total   int       `json:"total"`
	More    bool      `json:"more"`
}

type vacancy struct {
	Profession  string `json:"profession"`
	FirmName    string `json:"firm_name"`
	PaymentFrom int    `json:"payment_from"`
	PaymentTo   int    `json:"payment_to"`
	Currency    string `json:"currency"`
	Town        struct {
		Title string `json:"title"`
	} `json:"town"`
	Link            string `json:"link"`
	VacancyRichText string `json:"vacancyRichText"`
}

// SearchVacancies fetches every page of results for keyword in the given
// SuperJob town. maxPages caps the pagination depth; 0 means all pages.
func (c *Client) SearchVacancies(ctx context.Context, keyword string, town, maxPages int) (*models.SearchResult, error) {
	result := &models.SearchResult{}

	for page := 0; ; page++ {
		if maxPages > 0 && page >= maxPages {
			return result, nil
		}

		var body searchResponse
		resp, err := c.http.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"keyword": keyword,
				"town":    strconv.Itoa(town),
				"count":   strconv.Itoa(pageSize),
				"page":    strconv.Itoa(page),
			}).
			SetResult(&body).
			Get("/vacancies/")
		if err != nil {
			return nil, fmt.Errorf("superjob search %q page %d: %w", keyword, page, err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("superjob search %q page %d: status %d", keyword, page, resp.StatusCode())
		}

		if page == 0 {
			result.Found = body.Total
		}
		for _, item := range body.Objects {
			result.Vacancies = append(result.Vacancies, normalize(item))
		}

		c.log.Debug().Str("keyword", keyword).Int("page", page).
			Int("items", len(body.Objects)).Msg("superjob page fetched")

		if !body.More {
			return result, nil
		}
	}
}

func normalize(v vacancy) models.Vacancy {
	return models.Vacancy{
		Title:      v.Profession,
		Company:    v.FirmName,
		Town:       v.Town.Title,
		URL:        v.Link,
		SalaryFrom: v.PaymentFrom,
		SalaryTo:   v.PaymentTo,
		Currency:   v.Currency,
		Snippet:    v.VacancyRichText,
		Source:     models.SourceSuperJob,
	}
}
