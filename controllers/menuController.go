package controllers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"resto-api/config"
	"resto-api/models"
	"resto-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type menuItemInput struct {
	Name        string          `json:"name" binding:"required"`
	Description *string         `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Available   *bool           `json:"available,omitempty"`
	ImagePath   *string         `json:"image_path,omitempty"`
}

func (in *menuItemInput) toModel() (models.MenuItem, error) {
	if in.Price.IsNegative() {
		return models.MenuItem{}, &models.ValidationError{Message: "price must not be negative"}
	}

	available := true
	if in.Available != nil {
		available = *in.Available
	}

	return models.MenuItem{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Available:   available,
		ImagePath:   in.ImagePath,
	}, nil
}

// Get all menu items (paginated, optional name search + availability filter)
func GetMenuItems(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	query := config.DB.Model(&models.MenuItem{})

	if name := c.Query("name"); name != "" {
		for _, term := range strings.Fields(strings.ToLower(strings.TrimSpace(name))) {
			query = query.Where("LOWER(name) LIKE ?", "%"+term+"%")
		}
	}
	if c.Query("available") == "true" {
		query = query.Where("available = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		handleError(c, "count menu items", err)
		return
	}

	var items []models.MenuItem
	if err := query.
		Order("category, name").
		Limit(limit).
		Offset(offset).
		Find(&items).Error; err != nil {
		handleError(c, "list menu items", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       items,
		"page":       page,
		"limit":      limit,
		"total":      total,
		"totalPages": int((total + int64(limit) - 1) / int64(limit)),
	})
}

// Get menu item by ID
func GetMenuItemByID(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// Public catalog: available items only
func GetPublicMenu(c *gin.Context) {
	var items []models.MenuItem
	if err := config.DB.
		Where("available = ?", true).
		Order("category, name").
		Find(&items).Error; err != nil {
		handleError(c, "list public menu", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func GetPublicMenuItemByID(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.
		Where("available = ?", true).
		First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// Create new menu item
func CreateMenuItem(c *gin.Context) {
	var input menuItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := input.toModel()
	if err != nil {
		handleError(c, "create menu item", err)
		return
	}

	var existing models.MenuItem
	if err := config.DB.Where("name = ?", item.Name).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item with this name already exists"})
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&item).Error; err != nil {
			return err
		}

		description := fmt.Sprintf("Menu item '%s' created", item.Name)
		return utils.CreateMenuAuditLog(tx, "create", item.ID, nil, &item, utils.GetUserID(c), c.ClientIP(), description)
	})

	if err != nil {
		handleError(c, "create menu item", err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// Update menu item by ID
func UpdateMenuItem(c *gin.Context) {
	var oldItem models.MenuItem
	if err := config.DB.First(&oldItem, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var input menuItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := input.toModel()
	if err != nil {
		handleError(c, "update menu item", err)
		return
	}

	var existing models.MenuItem
	if err := config.DB.Where("name = ? AND id != ?", updated.Name, oldItem.ID).
		First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item with this name already exists"})
		return
	}

	oldCopy := oldItem

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		oldItem.Name = updated.Name
		oldItem.Description = updated.Description
		oldItem.Price = updated.Price
		oldItem.Category = updated.Category
		oldItem.Available = updated.Available
		oldItem.ImagePath = updated.ImagePath

		if err := tx.Save(&oldItem).Error; err != nil {
			return err
		}

		description := fmt.Sprintf("Menu item '%s' updated", oldItem.Name)
		return utils.CreateMenuAuditLog(tx, "update", oldItem.ID, &oldCopy, &oldItem, utils.GetUserID(c), c.ClientIP(), description)
	})

	if err != nil {
		handleError(c, "update menu item", err)
		return
	}

	c.JSON(http.StatusOK, oldItem)
}

// Delete menu item by ID
func DeleteMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	itemCopy := item

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&item).Error; err != nil {
			return err
		}

		description := fmt.Sprintf("Menu item '%s' deleted", itemCopy.Name)
		return utils.CreateMenuAuditLog(tx, "delete", itemCopy.ID, &itemCopy, nil, utils.GetUserID(c), c.ClientIP(), description)
	})

	if err != nil {
		handleError(c, "delete menu item", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted successfully"})
}

func BulkCreateMenuItems(c *gin.Context) {
	var inputs []menuItemInput
	if err := c.ShouldBindJSON(&inputs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(inputs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No menu items provided"})
		return
	}

	items := make([]models.MenuItem, 0, len(inputs))
	for _, in := range inputs {
		// empty string pointers become nil
		if in.Description != nil && *in.Description == "" {
			in.Description = nil
		}
		if in.ImagePath != nil && *in.ImagePath == "" {
			in.ImagePath = nil
		}

		item, err := in.toModel()
		if err != nil {
			handleError(c, "bulk create menu items", err)
			return
		}
		items = append(items, item)
	}

	userID := utils.GetUserID(c)
	ipAddress := c.ClientIP()

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		for i := range items {
			description := fmt.Sprintf("Menu item '%s' created via bulk import", items[i].Name)
			if err := utils.CreateMenuAuditLog(tx, "create", items[i].ID, nil, &items[i], userID, ipAddress, description); err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		handleError(c, "bulk create menu items", err)
		return
	}

	c.JSON(http.StatusCreated, items)
}

func ExportMenuItems(c *gin.Context) {
	var items []models.MenuItem
	if err := config.DB.Order("category, name").Find(&items).Error; err != nil {
		handleError(c, "export menu items", err)
		return
	}

	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)

	writer.Write(utils.MenuCSVHeaders())
	for _, item := range items {
		writer.Write(utils.FormatMenuCSVRow(item))
	}
	writer.Flush()

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", `attachment; filename="menu.csv"`)
	c.Data(http.StatusOK, "text/csv", buffer.Bytes())
}
