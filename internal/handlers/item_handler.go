package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rahalrsh/point-of-sale/internal/db"
	"github.com/rahalrsh/point-of-sale/internal/models"
)

type ItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Quantity    int     `json:"quantity" binding:"required,gt=0"`
}

func CreateItem(c *gin.Context) {
	var req ItemRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.Item{
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
	}

	if err := db.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, item)
}

func GetAllItems(c *gin.Context) {
	var items []models.Item

	if err := db.DB.Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// An empty menu is a reportable condition, not a silent empty list
	if len(items) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Items not found. Please add items to menu"})
		return
	}

	c.JSON(http.StatusOK, items)
}

func GetItemByID(c *gin.Context) {
	idParam := c.Param("id")

	var itemID uint
	if _, err := fmt.Sscan(idParam, &itemID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Item %s not found", idParam)})
		return
	}

	var item models.Item

	if err := db.DB.First(&item, itemID).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Item %d not found", itemID)})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, item)
}

func UpdateItemByID(c *gin.Context) {
	idParam := c.Param("id")

	var itemID uint
	if _, err := fmt.Sscan(idParam, &itemID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Failed to update. Item %s not found", idParam)})
		return
	}

	var req ItemRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var item models.Item

	if err := db.DB.First(&item, itemID).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Failed to update. Item %d not found", itemID)})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	item.Description = req.Description
	item.Price = req.Price
	item.Quantity = req.Quantity

	if err := db.DB.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, item)
}

func DeleteItemByID(c *gin.Context) {
	idParam := c.Param("id")

	var itemID uint
	if _, err := fmt.Sscan(idParam, &itemID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Failed to delete. Item %s not found", idParam)})
		return
	}

	var item models.Item

	if err := db.DB.First(&item, itemID).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Failed to delete. Item %d not found", itemID)})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Historical orders keep their lines; deleting an item never cascades
	// to order_items rows that reference it.
	if err := db.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, item)
}
