package controllers

import (
	"net/http"
	"time"

	"resto-api/config"
	"resto-api/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type TopMenuItem struct {
	MenuItemID uint   `json:"menu_item_id"`
	Name       string `json:"name"`
	Quantity   int64  `json:"quantity"`
}

func GetDashboard(c *gin.Context) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)

	var todayOrders []models.Order
	if err := config.DB.
		Where("status = ? AND created_at >= ? AND created_at < ?", models.StatusCompleted, startOfDay, endOfDay).
		Find(&todayOrders).Error; err != nil {
		handleError(c, "dashboard", err)
		return
	}

	todayRevenue := decimal.Zero
	for _, o := range todayOrders {
		todayRevenue = todayRevenue.Add(o.Total)
	}

	var pendingCount int64
	if err := config.DB.Model(&models.Order{}).
		Where("status = ?", models.StatusPending).
		Count(&pendingCount).Error; err != nil {
		handleError(c, "dashboard", err)
		return
	}

	// Top sellers across completed orders (top 5)
	var topItems []TopMenuItem
	if err := config.DB.Model(&models.OrderItem{}).
		Select("menu_item_id, SUM(quantity) as quantity").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.status = ?", models.StatusCompleted).
		Group("menu_item_id").
		Order("quantity desc").
		Limit(5).
		Scan(&topItems).Error; err != nil {
		handleError(c, "dashboard", err)
		return
	}

	for i, ti := range topItems {
		var item models.MenuItem
		if err := config.DB.First(&item, ti.MenuItemID).Error; err == nil {
			topItems[i].Name = item.Name
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"today_revenue":     todayRevenue,
		"today_orders":      len(todayOrders),
		"pending_orders":    pendingCount,
		"top_selling_items": topItems,
	})
}
