package controllers

import (
	"fmt"
	"net/http"

	"resto-api/config"
	"resto-api/models"
	"resto-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Admin fee charged for bca payments when the client does not send one.
var defaultAdminFee = decimal.NewFromFloat(2.50)

// Create new order. Line prices are snapshotted from the catalog and the
// total is computed server-side; the order and all of its lines persist in
// one transaction.
func CreateOrder(c *gin.Context) {
	var input struct {
		OrderType     string           `json:"order_type" binding:"required,oneof=dine_in take_away"`
		PaymentMethod string           `json:"payment_method" binding:"required,oneof=cash bca"`
		AdminFee      *decimal.Decimal `json:"admin_fee,omitempty"`
		Items         []struct {
			MenuItemID uint `json:"menu_item_id"`
			Quantity   int  `json:"quantity"`
		} `json:"items"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(input.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No items provided"})
		return
	}

	adminFee := decimal.Zero
	if input.PaymentMethod == models.PaymentBCA {
		adminFee = defaultAdminFee
		if input.AdminFee != nil {
			adminFee = *input.AdminFee
		}
		if adminFee.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "admin fee must not be negative"})
			return
		}
	} else if input.AdminFee != nil && !input.AdminFee.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "admin fee only applies to bca payments"})
		return
	}

	order := models.Order{
		Status:        models.StatusPending,
		OrderType:     input.OrderType,
		PaymentMethod: input.PaymentMethod,
		AdminFee:      adminFee,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		for _, line := range input.Items {
			var item models.MenuItem
			if err := tx.First(&item, line.MenuItemID).Error; err != nil {
				return &models.ValidationError{Message: fmt.Sprintf("Menu item %d not found", line.MenuItemID)}
			}
			if !item.Available {
				return &models.ValidationError{Message: fmt.Sprintf("Menu item '%s' is not available", item.Name)}
			}
			if err := order.AddItem(item, line.Quantity); err != nil {
				return err
			}
		}

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		description := fmt.Sprintf("Order #%d created with %d items", order.ID, len(order.Items))
		return utils.CreateOrderAuditLog(tx, "create", order.ID, nil, &order, utils.GetUserID(c), c.ClientIP(), description)
	})

	if err != nil {
		handleError(c, "create order", err)
		return
	}

	if err := config.DB.Preload("Items.MenuItem").First(&order, order.ID).Error; err != nil {
		handleError(c, "load created order", err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// Get all orders, newest first; optional ?status= filter
func GetOrders(c *gin.Context) {
	query := config.DB.Preload("Items.MenuItem").Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_items.id")
	})

	if status := c.Query("status"); status != "" {
		if !models.ValidStatus(status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid status %q, must be one of pending, completed, cancelled", status)})
			return
		}
		query = query.Where("status = ?", status)
	}

	var orders []models.Order
	if err := query.Order("created_at DESC").Find(&orders).Error; err != nil {
		handleError(c, "list orders", err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// Get order by ID
func GetOrderByID(c *gin.Context) {
	var order models.Order
	if err := config.DB.Preload("Items.MenuItem").First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// Update order status
func UpdateOrderStatus(c *gin.Context) {
	var order models.Order
	if err := config.DB.Preload("Items").First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	oldCopy := order

	if err := order.SetStatus(input.Status); err != nil {
		handleError(c, "update order status", err)
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&order).Error; err != nil {
			return err
		}

		description := fmt.Sprintf("Order #%d status changed to %s", order.ID, order.Status)
		return utils.CreateOrderAuditLog(tx, "update", order.ID, &oldCopy, &order, utils.GetUserID(c), c.ClientIP(), description)
	})

	if err != nil {
		handleError(c, "update order status", err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// Delete order and all of its lines
func DeleteOrder(c *gin.Context) {
	var order models.Order
	if err := config.DB.Preload("Items").First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	orderCopy := order

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		// Select(Associations) removes the lines with the order regardless
		// of whether the database enforces the FK cascade.
		if err := tx.Select(clause.Associations).Delete(&order).Error; err != nil {
			return err
		}

		description := fmt.Sprintf("Order #%d deleted", orderCopy.ID)
		return utils.CreateOrderAuditLog(tx, "delete", orderCopy.ID, &orderCopy, nil, utils.GetUserID(c), c.ClientIP(), description)
	})

	if err != nil {
		handleError(c, "delete order", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
