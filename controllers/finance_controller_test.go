package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"driveport/models"
	"driveport/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRateSource serves a fixed rate table without a database.
type stubRateSource struct {
	rates []models.InterestRate
}

func (s *stubRateSource) ActiveRate(durationYears int) (float64, error) {
	table := make([]services.InterestRateRecord, 0, len(s.rates))
	for _, r := range s.rates {
		table = append(table, services.InterestRateRecord{
			DurationYears: r.DurationYears,
			RatePercent:   r.RatePercent,
			IsActive:      r.IsActive,
		})
	}
	return services.ResolveActiveRate(durationYears, table)
}

func (s *stubRateSource) ActiveRates() ([]models.InterestRate, error) {
	active := make([]models.InterestRate, 0, len(s.rates))
	for _, r := range s.rates {
		if r.IsActive {
			active = append(active, r)
		}
	}
	return active, nil
}

func newFinanceRouter(rates []models.InterestRate) *gin.Engine {
	gin.SetMode(gin.TestMode)
	fc := NewFinanceController(&stubRateSource{rates: rates})

	r := gin.New()
	r.GET("/finance/rates", fc.GetRates)
	r.POST("/finance/preview", fc.PreviewInstallment)
	r.POST("/finance/schedule", fc.PreviewSchedule)
	return r
}

func defaultRates() []models.InterestRate {
	return []models.InterestRate{
		{ID: 1, DurationYears: 1, RatePercent: 18.0, IsActive: true},
		{ID: 2, DurationYears: 2, RatePercent: 21.0, IsActive: true},
		{ID: 3, DurationYears: 3, RatePercent: 24.0, IsActive: true},
	}
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetRates(t *testing.T) {
	r := newFinanceRouter(defaultRates())

	req := httptest.NewRequest(http.MethodGet, "/finance/rates", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                  `json:"success"`
		Result  []models.InterestRate `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Result, 3)
	assert.Equal(t, 18.0, resp.Result[0].RatePercent)
}

func TestPreviewInstallment(t *testing.T) {
	r := newFinanceRouter([]models.InterestRate{
		{ID: 1, DurationYears: 3, RatePercent: 12.0, IsActive: true},
	})

	w := postJSON(t, r, "/finance/preview", gin.H{
		"price":          30000,
		"down_payment":   0,
		"duration_years": 3,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Result  struct {
			RatePercent    float64 `json:"rate_percent"`
			FinancedAmount float64 `json:"financed_amount"`
			MonthlyPayment float64 `json:"monthly_payment"`
			TotalPayments  int     `json:"total_payments"`
			TotalAmount    float64 `json:"total_amount"`
			TotalInterest  float64 `json:"total_interest"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 12.0, resp.Result.RatePercent)
	assert.Equal(t, 30000.0, resp.Result.FinancedAmount)
	assert.InDelta(t, 996.43, resp.Result.MonthlyPayment, 0.01)
	assert.Equal(t, 36, resp.Result.TotalPayments)
	assert.InDelta(t, resp.Result.FinancedAmount+resp.Result.TotalInterest, resp.Result.TotalAmount, 0.01)
}

func TestPreviewInstallmentWithDownPayment(t *testing.T) {
	r := newFinanceRouter(defaultRates())

	w := postJSON(t, r, "/finance/preview", gin.H{
		"price":          45000,
		"down_payment":   9000,
		"duration_years": 2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Result struct {
			FinancedAmount float64 `json:"financed_amount"`
			TotalAmount    float64 `json:"total_amount"`
			MonthlyPayment float64 `json:"monthly_payment"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 36000.0, resp.Result.FinancedAmount)
	// total outlay includes the down payment on top of the installments
	assert.InDelta(t, resp.Result.MonthlyPayment*24+9000, resp.Result.TotalAmount, 0.05)
}

func TestPreviewInstallmentUnavailableTerm(t *testing.T) {
	r := newFinanceRouter(defaultRates())

	w := postJSON(t, r, "/finance/preview", gin.H{
		"price":          30000,
		"duration_years": 7,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "unavailable")
}

func TestPreviewInstallmentValidation(t *testing.T) {
	r := newFinanceRouter(defaultRates())

	tests := []struct {
		name string
		body gin.H
		code int
	}{
		{"missing price", gin.H{"duration_years": 2}, http.StatusBadRequest},
		{"zero price", gin.H{"price": 0, "duration_years": 2}, http.StatusBadRequest},
		{"missing duration", gin.H{"price": 30000}, http.StatusBadRequest},
		{"negative down payment", gin.H{"price": 30000, "down_payment": -1, "duration_years": 2}, http.StatusBadRequest},
		{"down payment at price", gin.H{"price": 30000, "down_payment": 30000, "duration_years": 2}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, r, "/finance/preview", tt.body)
			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestPreviewSchedule(t *testing.T) {
	r := newFinanceRouter(defaultRates())

	w := postJSON(t, r, "/finance/schedule", gin.H{
		"price":          24000,
		"duration_years": 2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Result struct {
			RatePercent float64                  `json:"rate_percent"`
			Schedule    []services.ScheduleEntry `json:"schedule"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 21.0, resp.Result.RatePercent)
	require.Len(t, resp.Result.Schedule, 24)
	assert.Equal(t, 0.0, resp.Result.Schedule[23].Balance)
}
