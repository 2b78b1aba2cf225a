package ledger

import (
	"context"
	"errors"

	"github.com/SebastianOso/api-habi3/models"
	"github.com/SebastianOso/api-habi3/utils"

	"gorm.io/gorm"
)

// PurchaseResult is returned once a purchase has committed.
type PurchaseResult struct {
	PurchaseID     uint   `json:"purchase_id"`
	TransactionRef string `json:"transaction_ref"`
	Message        string `json:"message"`
}

// PurchaseItem buys a shop item for a user, at most once per (user, item).
// On success the item sits in the user's inventory with quantity 1, unequipped.
//
// The debit is conditional (coins >= price in the UPDATE itself) so the
// non-negative balance invariant holds without row locks, and the unique index
// on purchases(user_id, item_id) is the authoritative duplicate guard.
func (s *Service) PurchaseItem(ctx context.Context, userID, itemID uint) (*PurchaseResult, error) {
	if userID == 0 || itemID == 0 {
		return nil, ErrInvalidArgument
	}

	var res *PurchaseResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Purchase
		err := tx.Where("user_id = ? AND item_id = ?", userID, itemID).
			First(&existing).Error
		if err == nil {
			return ErrAlreadyPurchased
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var item models.ShopItem
		if err := tx.First(&item, itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}

		coins, err := userCoins(tx, userID)
		if err != nil {
			return err
		}
		if coins < item.Price {
			return ErrInsufficientFunds
		}

		debit := tx.Model(&models.User{}).
			Where("id = ? AND coins >= ?", userID, item.Price).
			Update("coins", gorm.Expr("coins - ?", item.Price))
		if debit.Error != nil {
			return debit.Error
		}
		if debit.RowsAffected == 0 {
			// Balance moved under us since the check above.
			return ErrInsufficientFunds
		}

		purchase := models.Purchase{
			UserID:         userID,
			ItemID:         itemID,
			TransactionRef: utils.GenerateTransactionRef(userID),
			Amount:         item.Price,
		}
		if err := tx.Create(&purchase).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyPurchased
			}
			return err
		}

		entry := models.InventoryEntry{
			UserID:   userID,
			ItemID:   itemID,
			Quantity: 1,
			Equipped: false,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		res = &PurchaseResult{
			PurchaseID:     purchase.ID,
			TransactionRef: purchase.TransactionRef,
			Message:        "Purchase completed successfully",
		}
		return nil
	})
	if err != nil {
		return nil, txError(err)
	}
	return res, nil
}
