package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rahalrsh/point-of-sale/internal/db"
	"github.com/rahalrsh/point-of-sale/internal/models"
	"github.com/rahalrsh/point-of-sale/internal/notifier"
	"github.com/rahalrsh/point-of-sale/internal/servererrors"
	"github.com/rahalrsh/point-of-sale/internal/validators"
)

type OrderItemRequest struct {
	ItemID        uint `json:"item_id" binding:"required"`
	OrderQuantity int  `json:"order_quantity" binding:"required,gt=0"`
}

type CreateOrderRequest struct {
	OrderItems    []OrderItemRequest `json:"order_items" binding:"required,min=1,dive"`
	PaymentAmount float64            `json:"payment_amount" binding:"required,gt=0"`
	OrderNote     string             `json:"order_note" binding:"required"`
}

// CreateOrder validates the requested lines and payment against current stock,
// then decrements inventory and persists the order with its lines in a single
// transaction. Any failure before commit leaves stock and orders untouched.
//
// Two orders placed at the same time can both pass validation against the same
// stock; placement is not serialized across requests.
func CreateOrder(c *gin.Context) {

	var req CreateOrderRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	orderLines := make([]validators.OrderLine, 0, len(req.OrderItems))
	for _, orderItem := range req.OrderItems {
		orderLines = append(orderLines, validators.OrderLine{
			ItemID:        orderItem.ItemID,
			OrderQuantity: orderItem.OrderQuantity,
		})
	}

	tx := db.DB.Begin()

	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start transaction"})
		return
	}

	// Pure check; stock is decremented below only once it fully passes
	if _, err := validators.ValidatePayment(tx, orderLines, req.PaymentAmount); err != nil {

		tx.Rollback()

		respondError(c, err)
		return
	}

	order := models.Order{
		Amount: req.PaymentAmount,
		Note:   req.OrderNote,
	}

	if err := tx.Create(&order).Error; err != nil {

		tx.Rollback()

		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	for _, line := range orderLines {

		var item models.Item

		if err := tx.First(&item, line.ItemID).Error; err != nil {

			tx.Rollback()

			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		if err := tx.Model(&item).Update("quantity", item.Quantity-line.OrderQuantity).Error; err != nil {

			tx.Rollback()

			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update item quantity"})
			return
		}

		orderItem := models.OrderItem{
			OrderID:         order.ID,
			ItemID:          line.ItemID,
			OrderedQuantity: line.OrderQuantity,
		}

		if err := tx.Create(&orderItem).Error; err != nil {

			tx.Rollback()

			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create order items"})
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to commit order"})
		return
	}

	go func(orderID uint, note string, lineCount int) {

		if err := notifier.SendKitchenTicket(orderID, note, lineCount); err != nil {
			log.Printf("Failed to send kitchen ticket for order %d: %v\n", orderID, err)
		}
	}(order.ID, order.Note, len(orderLines))

	go func(orderID uint, amount float64, note string) {

		if err := notifier.SendOrderReceipt(orderID, amount, note); err != nil {
			log.Printf("Failed to send receipt email for order %d: %v\n", orderID, err)
		}
	}(order.ID, order.Amount, order.Note)

	c.JSON(http.StatusOK, gin.H{"order_id": order.ID})
}

func GetOrderByID(c *gin.Context) {
	idParam := c.Param("id")

	var orderID uint
	if _, err := fmt.Sscan(idParam, &orderID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Order %s not found. Please place orders", idParam)})
		return
	}

	var order models.Order

	if err := db.DB.Preload("Items").First(&order, orderID).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Order %d not found. Please place orders", orderID)})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, order)
}

// respondError maps classified business-rule failures to their response codes;
// anything else is reported as a generic internal error.
func respondError(c *gin.Context, err error) {

	var serverErr *servererrors.Error

	if errors.As(err, &serverErr) {
		c.JSON(serverErr.HTTPStatus(), gin.H{"error": serverErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
