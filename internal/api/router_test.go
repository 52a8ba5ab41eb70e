package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"budgetboard/internal/api/handlers"
	"budgetboard/internal/models"
	"budgetboard/internal/repository"
	"budgetboard/internal/service"
	"budgetboard/pkg/config"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testDataset = `Department,Vendor,Budget_Allocated,Budget_Spent
Eng,Acme,100.00,150.00
Ops,Globex,40.00,30.00
`

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	dir := t.TempDir()

	datasetPath := filepath.Join(dir, "transactions.csv")
	require.NoError(t, os.WriteFile(datasetPath, []byte(testDataset), 0644))

	logger := zap.NewNop()
	dataset, err := repository.NewDatasetRepository(datasetPath, logger)
	require.NoError(t, err)

	feedbackRepo := repository.NewFeedbackRepository(filepath.Join(dir, "feedback.csv"), logger)

	converter := models.Converter{
		Primary:   models.Currency{Code: "USD", Symbol: "$"},
		Secondary: models.Currency{Code: "EUR", Symbol: "€"},
		Rate:      decimal.RequireFromString("0.5"),
	}

	dashboardService := service.NewDashboardService(dataset, converter, logger)
	feedbackService, err := service.NewFeedbackService(feedbackRepo, logger)
	require.NoError(t, err)
	chatService := service.NewChatService(dashboardService, "", logger)

	return SetupRouter(
		config.ServerConfig{ReadTimeout: 5 * time.Second, WriteTimeout: 5 * time.Second},
		handlers.NewDashboardHandler(dashboardService, logger),
		handlers.NewFeedbackHandler(feedbackService, logger),
		handlers.NewChatHandler(chatService, logger),
		handlers.NewHealthHandler(dataset),
		logger,
	)
}

func doRequest(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func TestDashboardEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, body := doRequest(t, app, http.MethodGet,
		"/api/v1/dashboard?departments=Eng&departments=Ops&vendors=Acme&vendors=Globex&currency=USD", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var view struct {
		Currency struct {
			Code string `json:"code"`
		} `json:"currency"`
		Summary struct {
			TransactionCount int `json:"transaction_count"`
			AnomalyCount     int `json:"anomaly_count"`
		} `json:"summary"`
		Transactions []struct {
			Vendor     string `json:"vendor"`
			OverBudget bool   `json:"over_budget"`
		} `json:"transactions"`
		Anomalies []struct {
			Vendor string `json:"vendor"`
		} `json:"anomalies"`
	}
	require.NoError(t, json.Unmarshal(body, &view))

	assert.Equal(t, "USD", view.Currency.Code)
	assert.Equal(t, 2, view.Summary.TransactionCount)
	assert.Equal(t, 1, view.Summary.AnomalyCount)
	require.Len(t, view.Transactions, 2)
	assert.True(t, view.Transactions[0].OverBudget)
	require.Len(t, view.Anomalies, 1)
	assert.Equal(t, "Acme", view.Anomalies[0].Vendor)
}

func TestDashboardEndpointWithoutSelection(t *testing.T) {
	app := newTestApp(t)

	resp, body := doRequest(t, app, http.MethodGet, "/api/v1/dashboard", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var view struct {
		Summary struct {
			TransactionCount int `json:"transaction_count"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(body, &view))
	assert.Equal(t, 0, view.Summary.TransactionCount)
}

func TestFiltersEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, body := doRequest(t, app, http.MethodGet, "/api/v1/dashboard/filters", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var filters struct {
		Departments []string `json:"departments"`
		Vendors     []string `json:"vendors"`
		Currencies  []struct {
			Code string `json:"code"`
		} `json:"currencies"`
	}
	require.NoError(t, json.Unmarshal(body, &filters))

	assert.Equal(t, []string{"Eng", "Ops"}, filters.Departments)
	assert.Equal(t, []string{"Acme", "Globex"}, filters.Vendors)
	require.Len(t, filters.Currencies, 2)
	assert.Equal(t, "USD", filters.Currencies[0].Code)
}

func TestFeedbackEndpoints(t *testing.T) {
	app := newTestApp(t)

	t.Run("blank text is rejected", func(t *testing.T) {
		resp, _ := doRequest(t, app, http.MethodPost, "/api/v1/feedback", `{"text":"   ","rating":4}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("out of range rating is rejected", func(t *testing.T) {
		resp, _ := doRequest(t, app, http.MethodPost, "/api/v1/feedback", `{"text":"fine","rating":6}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		resp, _ = doRequest(t, app, http.MethodPost, "/api/v1/feedback", `{"text":"fine","rating":0}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("valid submission round-trips", func(t *testing.T) {
		resp, body := doRequest(t, app, http.MethodPost, "/api/v1/feedback", `{"text":"nice work","rating":5}`)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var entry struct {
			Text   string `json:"text"`
			Rating int    `json:"rating"`
		}
		require.NoError(t, json.Unmarshal(body, &entry))
		assert.Equal(t, "nice work", entry.Text)
		assert.Equal(t, 5, entry.Rating)

		resp, body = doRequest(t, app, http.MethodGet, "/api/v1/feedback", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var list []struct {
			Text string `json:"text"`
		}
		require.NoError(t, json.Unmarshal(body, &list))
		require.Len(t, list, 1)
		assert.Equal(t, "nice work", list[0].Text)
	})

	t.Run("export serves the stored CSV", func(t *testing.T) {
		resp, body := doRequest(t, app, http.MethodGet, "/api/v1/feedback/export", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
		assert.Contains(t, resp.Header.Get("Content-Disposition"), `filename="feedback.csv"`)
		assert.Equal(t, "Feedback,Rating\nnice work,5\n", string(body))
	})
}

func TestChatEndpoint(t *testing.T) {
	app := newTestApp(t)

	body := `{"query":"spending by department","currency":"USD","departments":["Eng","Ops"],"vendors":["Acme","Globex"]}`
	resp, data := doRequest(t, app, http.MethodPost, "/api/v1/chat", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var chat struct {
		Reply string `json:"reply"`
	}
	require.NoError(t, json.Unmarshal(data, &chat))
	assert.Equal(t, "Department-wise spending:\nEng: $150\nOps: $30", chat.Reply)
}

func TestChatEndpointBadBody(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doRequest(t, app, http.MethodPost, "/api/v1/chat", "{not json")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, body := doRequest(t, app, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var health struct {
		Status      string `json:"status"`
		InstanceID  string `json:"instance_id"`
		DatasetRows int    `json:"dataset_rows"`
	}
	require.NoError(t, json.Unmarshal(body, &health))
	assert.Equal(t, "ok", health.Status)
	assert.NotEmpty(t, health.InstanceID)
	assert.Equal(t, 2, health.DatasetRows)
}

func TestRequestIDHeader(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doRequest(t, app, http.MethodGet, "/healthz", "")
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", resp.Header.Get("X-Request-ID"))
}

func TestRootServesDashboardPage(t *testing.T) {
	app := newTestApp(t)

	resp, body := doRequest(t, app, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "BudgetBoard")
}
