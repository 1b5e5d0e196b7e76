package superjob

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlyakhov/salaryscope/internal/logger"
	"github.com/mlyakhov/salaryscope/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(Config{BaseURL: server.URL, AppKey: "app-key"}, logger.Nop())
}

func TestSearchVacancies_PaginatesWhileMore(t *testing.T) {
	pages := map[string]string{
		"0": `{
			"total": 2, "more": true,
			"objects": [
				{
					"profession": "Программист Python",
					"firm_name": "Acme",
					"payment_from": 150000,
					"payment_to": 250000,
					"currency": "rub",
					"town": {"title": "Москва"},
					"link": "https://superjob.ru/vakansii/1.html",
					"vacancyRichText": "<p>Опыт от 3 лет</p>"
				}
			]
		}`,
		"1": `{
			"total": 2, "more": false,
			"objects": [
				{
					"profession": "Python junior",
					"firm_name": "Beta",
					"payment_from": 0,
					"payment_to": 0,
					"currency": "rub",
					"town": {"title": "Москва"},
					"link": "https://superjob.ru/vakansii/2.html"
				}
			]
		}`,
	}

	var gotAppKeys []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/vacancies/", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("count"))
		assert.Equal(t, "4", r.URL.Query().Get("town"))
		assert.Equal(t, "Python", r.URL.Query().Get("keyword"))

		gotAppKeys = append(gotAppKeys, r.Header.Get("X-Api-App-Id"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, pages[r.URL.Query().Get("page")])
	})

	result, err := client.SearchVacancies(context.Background(), "Python", 4, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"app-key", "app-key"}, gotAppKeys)
	assert.Equal(t, 2, result.Found)
	require.Len(t, result.Vacancies, 2)

	first := result.Vacancies[0]
	assert.Equal(t, "Программист Python", first.Title)
	assert.Equal(t, "Acme", first.Company)
	assert.Equal(t, 150000, first.SalaryFrom)
	assert.Equal(t, 250000, first.SalaryTo)
	assert.Equal(t, "rub", first.Currency)
	assert.Equal(t, "<p>Опыт от 3 лет</p>", first.Snippet)
	assert.Equal(t, models.SourceSuperJob, first.Source)

	assert.Zero(t, result.Vacancies[1].SalaryFrom)
	assert.Zero(t, result.Vacancies[1].SalaryTo)
}

func TestSearchVacancies_MaxPagesCap(t *testing.T) {
	var served int
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		served++
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"total": 500, "more": true, "objects": []}`)
	})

	_, err := client.SearchVacancies(context.Background(), "Go", 4, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, served)
}

func TestSearchVacancies_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.SearchVacancies(context.Background(), "Go", 4, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestAuthenticate(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth2/password/":
			assert.Equal(t, "user@example.com", r.URL.Query().Get("login"))
			assert.Equal(t, "hunter2", r.URL.Query().Get("password"))
			assert.Equal(t, "client-id", r.URL.Query().Get("client_id"))
			assert.Equal(t, "client-secret", r.URL.Query().Get("client_secret"))
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"access_token": "sj-token", "ttl": 86400}`)
		case "/vacancies/":
			gotAuth = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"total": 0, "more": false, "objects": []}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	ctx := context.Background()
	require.NoError(t, client.Authenticate(ctx, "client-id", "client-secret", "user@example.com", "hunter2"))

	_, err := client.SearchVacancies(ctx, "Go", 4, 0)
	require.NoError(t, err)
	assert.Equal(t, "Bearer sj-token", gotAuth)
}

func TestAuthenticate_EmptyToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{}`)
	})

	err := client.Authenticate(context.Background(), "id", "secret", "user@example.com", "pw")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty access token")
}
