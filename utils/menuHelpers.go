package utils

import (
	"encoding/json"
	"fmt"

	"resto-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetUserRole(c *gin.Context) string {
	role, _ := c.Get("role")
	if role == nil {
		return ""
	}
	return role.(string)
}

func GetUserID(c *gin.Context) *uint {
	if value, exists := c.Get("user_id"); exists {
		if id, ok := value.(uint); ok {
			return &id
		}
	}
	return nil
}

func CreateMenuAuditLog(db *gorm.DB, action string, entityID uint, oldItem, newItem *models.MenuItem, userID *uint, ipAddress string, description string) error {
	auditLog := models.AuditLog{
		EntityType:  "menu_item",
		EntityID:    entityID,
		Action:      action,
		UserID:      userID,
		OldValue:    toJSONString(oldItem),
		NewValue:    toJSONString(newItem),
		Changes:     calculateMenuChanges(action, oldItem, newItem),
		IPAddress:   &ipAddress,
		Description: description,
	}
	return db.Create(&auditLog).Error
}

func toJSONString(v interface{}) *string {
	if v == nil {
		return nil
	}
	bytes, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	str := string(bytes)
	return &str
}

func calculateMenuChanges(action string, oldItem, newItem *models.MenuItem) *string {
	if action != "update" || oldItem == nil || newItem == nil {
		return nil
	}

	changes := make(map[string]interface{})

	if oldItem.Name != newItem.Name {
		changes["name"] = map[string]string{"old": oldItem.Name, "new": newItem.Name}
	}

	if getStringValue(oldItem.Description) != getStringValue(newItem.Description) {
		changes["description"] = map[string]string{
			"old": getStringValue(oldItem.Description),
			"new": getStringValue(newItem.Description),
		}
	}

	if !oldItem.Price.Equal(newItem.Price) {
		changes["price"] = map[string]string{
			"old": oldItem.Price.StringFixed(2),
			"new": newItem.Price.StringFixed(2),
		}
	}

	if oldItem.Category != newItem.Category {
		changes["category"] = map[string]string{"old": oldItem.Category, "new": newItem.Category}
	}

	if oldItem.Available != newItem.Available {
		changes["available"] = map[string]bool{"old": oldItem.Available, "new": newItem.Available}
	}

	if getStringValue(oldItem.ImagePath) != getStringValue(newItem.ImagePath) {
		changes["image_path"] = map[string]string{
			"old": getStringValue(oldItem.ImagePath),
			"new": getStringValue(newItem.ImagePath),
		}
	}

	if len(changes) == 0 {
		return nil
	}

	return toJSONString(changes)
}

func getStringValue(ptr *string) string {
	if ptr != nil {
		return *ptr
	}
	return ""
}

func FormatMenuCSVRow(item models.MenuItem) []string {
	available := "no"
	if item.Available {
		available = "yes"
	}
	return []string{
		fmt.Sprintf("%d", item.ID),
		item.Name,
		getStringValue(item.Description),
		item.Price.StringFixed(2),
		item.Category,
		available,
	}
}

func MenuCSVHeaders() []string {
	return []string{"id", "name", "description", "price", "category", "available"}
}
