package controllers

import (
	"net/http"
	"testing"
	"time"

	"resto-api/config"
	"resto-api/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedOrderAt(t *testing.T, status, total string, createdAt time.Time) models.Order {
	t.Helper()

	order := models.Order{
		Total:         decimal.RequireFromString(total),
		Status:        status,
		OrderType:     models.OrderTypeDineIn,
		PaymentMethod: models.PaymentCash,
		CreatedAt:     createdAt,
	}
	require.NoError(t, config.DB.Create(&order).Error)
	return order
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d.Add(10 * time.Hour)
}

func TestSalesSummary(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	seedOrderAt(t, models.StatusCompleted, "10.00", day("2026-08-01"))
	seedOrderAt(t, models.StatusCompleted, "20.00", day("2026-08-01"))
	seedOrderAt(t, models.StatusPending, "30.00", day("2026-08-02"))

	w := doJSON(t, r, http.MethodGet, "/reports/sales", nil)
	requireStatus(t, w, http.StatusOK)

	var resp struct {
		Data []SalesSummaryRow `json:"data"`
	}
	decodeBody(t, w, &resp)

	require.Len(t, resp.Data, 2)
	assert.Equal(t, "2026-08-01", resp.Data[0].Date)
	assert.Equal(t, 2, resp.Data[0].OrderCount)
	assert.True(t, resp.Data[0].Revenue.Equal(decimal.RequireFromString("30.00")))
	assert.True(t, resp.Data[0].AverageOrder.Equal(decimal.RequireFromString("15.00")))

	assert.Equal(t, "2026-08-02", resp.Data[1].Date)
	assert.Equal(t, 1, resp.Data[1].OrderCount)
	assert.True(t, resp.Data[1].Revenue.Equal(decimal.RequireFromString("30.00")))
}

func TestSalesSummaryWindow(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	seedOrderAt(t, models.StatusCompleted, "10.00", day("2026-08-01"))
	seedOrderAt(t, models.StatusCompleted, "20.00", day("2026-08-05"))
	seedOrderAt(t, models.StatusCompleted, "40.00", day("2026-08-09"))

	// half-open window: the 9th is excluded
	w := doJSON(t, r, http.MethodGet, "/reports/sales?from=2026-08-02&to=2026-08-09", nil)
	requireStatus(t, w, http.StatusOK)

	var resp struct {
		Data []SalesSummaryRow `json:"data"`
	}
	decodeBody(t, w, &resp)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "2026-08-05", resp.Data[0].Date)

	// malformed bound falls back to unbounded
	w = doJSON(t, r, http.MethodGet, "/reports/sales?from=banana", nil)
	requireStatus(t, w, http.StatusOK)
	decodeBody(t, w, &resp)
	assert.Len(t, resp.Data, 3)
}

func TestReportRejectsInvertedWindow(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	for _, path := range []string{
		"/reports/sales?from=2026-08-10&to=2026-08-01",
		"/reports/popular?from=2026-08-10&to=2026-08-01",
		"/reports/status?from=2026-08-10&to=2026-08-01",
	} {
		w := doJSON(t, r, http.MethodGet, path, nil)
		requireStatus(t, w, http.StatusBadRequest)
	}
}

func TestPopularItemsRanking(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	itemA := seedMenuItem(t, "Nasi Goreng", "25000", true)
	itemB := seedMenuItem(t, "Es Teh", "5000", true)
	itemC := seedMenuItem(t, "Sate Ayam", "28000", true)

	quantities := map[uint]int{itemA.ID: 1, itemB.ID: 5, itemC.ID: 3}
	for _, item := range []models.MenuItem{itemA, itemB, itemC} {
		order := models.Order{Status: models.StatusCompleted, OrderType: models.OrderTypeDineIn, PaymentMethod: models.PaymentCash}
		require.NoError(t, order.AddItem(item, quantities[item.ID]))
		require.NoError(t, config.DB.Create(&order).Error)
	}

	w := doJSON(t, r, http.MethodGet, "/reports/popular", nil)
	requireStatus(t, w, http.StatusOK)

	var resp struct {
		Data []PopularItemRow `json:"data"`
	}
	decodeBody(t, w, &resp)

	require.Len(t, resp.Data, 3)
	assert.Equal(t, "Es Teh", resp.Data[0].Name)
	assert.EqualValues(t, 5, resp.Data[0].QuantitySold)
	assert.True(t, resp.Data[0].Revenue.Equal(decimal.RequireFromString("25000")))

	for i := 1; i < len(resp.Data); i++ {
		assert.GreaterOrEqual(t, resp.Data[i-1].QuantitySold, resp.Data[i].QuantitySold,
			"ranking must be non-increasing in quantity sold")
	}
}

func TestStatusSummaryPercentages(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	seedOrderAt(t, models.StatusPending, "10.00", day("2026-08-01"))
	seedOrderAt(t, models.StatusPending, "10.00", day("2026-08-01"))
	seedOrderAt(t, models.StatusPending, "10.00", day("2026-08-02"))
	seedOrderAt(t, models.StatusCompleted, "50.00", day("2026-08-02"))

	w := doJSON(t, r, http.MethodGet, "/reports/status", nil)
	requireStatus(t, w, http.StatusOK)

	var resp struct {
		Data []StatusSummaryRow `json:"data"`
	}
	decodeBody(t, w, &resp)

	require.Len(t, resp.Data, 2)

	sum := 0.0
	byStatus := map[string]StatusSummaryRow{}
	for _, row := range resp.Data {
		sum += row.Percentage
		byStatus[row.Status] = row
	}

	assert.InDelta(t, 100.0, sum, 0.2, "percentages must sum to 100 within rounding")
	assert.Equal(t, 3, byStatus[models.StatusPending].OrderCount)
	assert.InDelta(t, 75.0, byStatus[models.StatusPending].Percentage, 0.01)
	assert.True(t, byStatus[models.StatusCompleted].Revenue.Equal(decimal.RequireFromString("50.00")))
}

func TestStatusSummaryEmptyWindow(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	seedOrderAt(t, models.StatusPending, "10.00", day("2026-08-01"))

	// a window with no orders yields no rows and no fault
	w := doJSON(t, r, http.MethodGet, "/reports/status?from=2027-01-01&to=2027-02-01", nil)
	requireStatus(t, w, http.StatusOK)

	var resp struct {
		Data []StatusSummaryRow `json:"data"`
	}
	decodeBody(t, w, &resp)
	assert.Empty(t, resp.Data)
}
