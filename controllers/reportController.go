package controllers

import (
	"math"
	"net/http"
	"sort"
	"time"

	"resto-api/config"
	"resto-api/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const reportDateLayout = "2006-01-02"

// reportWindow is a half-open [from, to) filter on order creation dates. A
// missing or malformed bound means "unbounded" on that side.
type reportWindow struct {
	From *time.Time
	To   *time.Time
}

func parseReportWindow(c *gin.Context) (reportWindow, error) {
	var w reportWindow

	if from, err := time.Parse(reportDateLayout, c.Query("from")); err == nil {
		w.From = &from
	}
	if to, err := time.Parse(reportDateLayout, c.Query("to")); err == nil {
		w.To = &to
	}

	if w.From != nil && w.To != nil && w.From.After(*w.To) {
		return w, &models.ValidationError{Message: "from date must not be after to date"}
	}

	return w, nil
}

func (w reportWindow) apply(db *gorm.DB) *gorm.DB {
	if w.From != nil {
		db = db.Where("created_at >= ?", *w.From)
	}
	if w.To != nil {
		db = db.Where("created_at < ?", *w.To)
	}
	return db
}

type SalesSummaryRow struct {
	Date         string          `json:"date"`
	OrderCount   int             `json:"order_count"`
	Revenue      decimal.Decimal `json:"revenue"`
	AverageOrder decimal.Decimal `json:"average_order"`
}

type PopularItemRow struct {
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	QuantitySold int64           `json:"quantity_sold"`
	Revenue      decimal.Decimal `json:"revenue"`
}

type StatusSummaryRow struct {
	Status     string          `json:"status"`
	OrderCount int             `json:"order_count"`
	Revenue    decimal.Decimal `json:"revenue"`
	Percentage float64         `json:"percentage"`
}

// GET /reports/sales?from=&to=
// Orders grouped by calendar date: count, revenue, average order value.
func GetSalesSummary(c *gin.Context) {
	window, err := parseReportWindow(c)
	if err != nil {
		handleError(c, "sales summary", err)
		return
	}

	var orders []models.Order
	if err := window.apply(config.DB).Find(&orders).Error; err != nil {
		handleError(c, "sales summary", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": salesSummary(orders)})
}

func salesSummary(orders []models.Order) []SalesSummaryRow {
	type group struct {
		count   int
		revenue decimal.Decimal
	}
	groups := make(map[string]*group)

	for _, o := range orders {
		date := o.CreatedAt.Format(reportDateLayout)
		g, ok := groups[date]
		if !ok {
			g = &group{revenue: decimal.Zero}
			groups[date] = g
		}
		g.count++
		g.revenue = g.revenue.Add(o.Total)
	}

	rows := make([]SalesSummaryRow, 0, len(groups))
	for date, g := range groups {
		rows = append(rows, SalesSummaryRow{
			Date:         date,
			OrderCount:   g.count,
			Revenue:      g.revenue,
			AverageOrder: g.revenue.DivRound(decimal.NewFromInt(int64(g.count)), 2),
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })
	return rows
}

// GET /reports/popular?from=&to=
// Order lines grouped by (menu item name, category), most sold first.
func GetPopularItems(c *gin.Context) {
	window, err := parseReportWindow(c)
	if err != nil {
		handleError(c, "popular items", err)
		return
	}

	var orders []models.Order
	if err := window.apply(config.DB).Preload("Items.MenuItem").Find(&orders).Error; err != nil {
		handleError(c, "popular items", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": popularItems(orders)})
}

func popularItems(orders []models.Order) []PopularItemRow {
	type key struct {
		name     string
		category string
	}
	type group struct {
		quantity int64
		revenue  decimal.Decimal
	}
	groups := make(map[key]*group)

	for _, o := range orders {
		for _, line := range o.Items {
			k := key{name: line.MenuItem.Name, category: line.MenuItem.Category}
			g, ok := groups[k]
			if !ok {
				g = &group{revenue: decimal.Zero}
				groups[k] = g
			}
			g.quantity += int64(line.Quantity)
			g.revenue = g.revenue.Add(line.PriceAtOrder.Mul(decimal.NewFromInt(int64(line.Quantity))))
		}
	}

	rows := make([]PopularItemRow, 0, len(groups))
	for k, g := range groups {
		rows = append(rows, PopularItemRow{
			Name:         k.name,
			Category:     k.category,
			QuantitySold: g.quantity,
			Revenue:      g.revenue,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].QuantitySold > rows[j].QuantitySold })
	return rows
}

// GET /reports/status?from=&to=
// Orders grouped by status with each group's share of the window.
func GetStatusSummary(c *gin.Context) {
	window, err := parseReportWindow(c)
	if err != nil {
		handleError(c, "status summary", err)
		return
	}

	var orders []models.Order
	if err := window.apply(config.DB).Find(&orders).Error; err != nil {
		handleError(c, "status summary", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": statusSummary(orders)})
}

func statusSummary(orders []models.Order) []StatusSummaryRow {
	type group struct {
		count   int
		revenue decimal.Decimal
	}
	groups := make(map[string]*group)

	for _, o := range orders {
		g, ok := groups[o.Status]
		if !ok {
			g = &group{revenue: decimal.Zero}
			groups[o.Status] = g
		}
		g.count++
		g.revenue = g.revenue.Add(o.Total)
	}

	// Denominator floored to 1 so an empty window yields 0% rows instead of
	// dividing by zero.
	totalCount := len(orders)
	if totalCount == 0 {
		totalCount = 1
	}

	rows := make([]StatusSummaryRow, 0, len(groups))
	for _, status := range []string{models.StatusPending, models.StatusCompleted, models.StatusCancelled} {
		g, ok := groups[status]
		if !ok {
			continue
		}
		percentage := float64(g.count) / float64(totalCount) * 100
		rows = append(rows, StatusSummaryRow{
			Status:     status,
			OrderCount: g.count,
			Revenue:    g.revenue,
			Percentage: math.Round(percentage*10) / 10,
		})
	}

	return rows
}
