package validators

import (
	"errors"

	"gorm.io/gorm"

	"github.com/rahalrsh/point-of-sale/internal/models"
	"github.com/rahalrsh/point-of-sale/internal/servererrors"
)

type OrderLine struct {
	ItemID        uint
	OrderQuantity int
}

// ValidatePayment checks, in order, that every requested item exists, that its
// stock covers the requested quantity, and that the tendered amount exactly
// matches the accumulated total. It reads through the given transaction handle
// and never mutates stock; the order workflow decrements quantities only after
// this check fully passes.
//
// The total is accumulated in the order the lines were given and compared with
// exact float equality, matching the upstream till which sends amounts it
// computed the same way.
func ValidatePayment(tx *gorm.DB, orderLines []OrderLine, paymentAmount float64) (float64, error) {

	var expectedPaymentAmount float64

	for _, line := range orderLines {

		var item models.Item

		if err := tx.First(&item, line.ItemID).Error; err != nil {

			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, servererrors.New(servererrors.KindNotFound, "Items %d not found", line.ItemID)
			}

			return 0, err
		}

		if line.OrderQuantity > item.Quantity {
			return 0, servererrors.New(servererrors.KindInsufficientStock,
				"Quantity: %d not available for item: %d", line.OrderQuantity, line.ItemID)
		}

		expectedPaymentAmount += float64(line.OrderQuantity) * item.Price
	}

	if expectedPaymentAmount > paymentAmount {
		return 0, servererrors.New(servererrors.KindPaymentTooLow, "Payment amount is too low")
	}

	if expectedPaymentAmount < paymentAmount {
		return 0, servererrors.New(servererrors.KindPaymentTooHigh, "Payment amount is too high")
	}

	return expectedPaymentAmount, nil
}
