package utils

import (
	"resto-api/models"

	"gorm.io/gorm"
)

func CreateOrderAuditLog(
	db *gorm.DB,
	action string,
	entityID uint,
	oldOrder, newOrder *models.Order,
	userID *uint,
	ipAddress string,
	description string,
) error {
	auditLog := models.AuditLog{
		EntityType:  "order",
		EntityID:    entityID,
		Action:      action,
		UserID:      userID,
		OldValue:    toJSONString(oldOrder),
		NewValue:    toJSONString(newOrder),
		Changes:     calculateOrderChanges(action, oldOrder, newOrder),
		IPAddress:   &ipAddress,
		Description: description,
	}

	return db.Create(&auditLog).Error
}

func calculateOrderChanges(action string, oldOrder, newOrder *models.Order) *string {
	if action != "update" || oldOrder == nil || newOrder == nil {
		return nil
	}

	changes := make(map[string]interface{})

	if oldOrder.Status != newOrder.Status {
		changes["status"] = map[string]string{
			"old": oldOrder.Status,
			"new": newOrder.Status,
		}
	}

	if !oldOrder.Total.Equal(newOrder.Total) {
		changes["total"] = map[string]string{
			"old": oldOrder.Total.StringFixed(2),
			"new": newOrder.Total.StringFixed(2),
		}
	}

	if oldOrder.OrderType != newOrder.OrderType {
		changes["order_type"] = map[string]string{
			"old": oldOrder.OrderType,
			"new": newOrder.OrderType,
		}
	}

	if oldOrder.PaymentMethod != newOrder.PaymentMethod {
		changes["payment_method"] = map[string]string{
			"old": oldOrder.PaymentMethod,
			"new": newOrder.PaymentMethod,
		}
	}

	if len(changes) == 0 {
		return nil
	}

	return toJSONString(changes)
}
