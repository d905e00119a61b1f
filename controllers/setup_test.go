package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"resto-api/config"
	"resto-api/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq int64

// setupTestDB points config.DB at a fresh in-memory SQLite database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	config.DB = db
	return db
}

// newTestRouter registers the handlers without the auth middleware so tests
// exercise the handlers directly.
func newTestRouter() *gin.Engine {
	r := gin.New()

	r.POST("/login", Login)

	r.GET("/public/menu", GetPublicMenu)
	r.GET("/menu", GetMenuItems)
	r.GET("/menu/export", ExportMenuItems)
	r.GET("/menu/:id", GetMenuItemByID)
	r.POST("/menu", CreateMenuItem)
	r.PUT("/menu/:id", UpdateMenuItem)
	r.DELETE("/menu/:id", DeleteMenuItem)
	r.POST("/menu/bulk", BulkCreateMenuItems)

	r.POST("/orders", CreateOrder)
	r.GET("/orders", GetOrders)
	r.GET("/orders/:id", GetOrderByID)
	r.PATCH("/orders/:id/status", UpdateOrderStatus)
	r.DELETE("/orders/:id", DeleteOrder)

	r.GET("/reports/sales", GetSalesSummary)
	r.GET("/reports/popular", GetPopularItems)
	r.GET("/reports/status", GetStatusSummary)

	r.GET("/dashboard", GetDashboard)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedMenuItem(t *testing.T, name, price string, available bool) models.MenuItem {
	t.Helper()

	item := models.MenuItem{
		Name:      name,
		Price:     decimal.RequireFromString(price),
		Category:  "Makanan",
		Available: available,
	}
	require.NoError(t, config.DB.Create(&item).Error)
	return item
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), "body: %s", w.Body.String())
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "body: %s", w.Body.String())
}
