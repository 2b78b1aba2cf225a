package ledger

import (
	"context"
	"errors"

	"github.com/SebastianOso/api-habi3/models"

	"gorm.io/gorm"
)

// UseItemResult reports the equip state after the operation. AssetKey is nil
// when nothing is equipped.
type UseItemResult struct {
	UserID   uint    `json:"user_id"`
	ItemID   uint    `json:"item_id"`
	AssetKey *string `json:"asset_key"`
}

// UseItem equips the given item, or unequips everything when itemID is 0.
// Clearing the current entry, flagging the new one and updating the user's
// equipped asset happen in one transaction, so there is never a window with
// zero or two equipped items.
func (s *Service) UseItem(ctx context.Context, userID, itemID uint) (*UseItemResult, error) {
	if userID == 0 {
		return nil, ErrInvalidArgument
	}

	var res *UseItemResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := userCoins(tx, userID); err != nil {
			return err
		}

		if err := tx.Model(&models.InventoryEntry{}).
			Where("user_id = ? AND equipped = ?", userID, true).
			Update("equipped", false).Error; err != nil {
			return err
		}

		if itemID == 0 {
			if err := tx.Model(&models.User{}).Where("id = ?", userID).
				Update("equipped_asset", nil).Error; err != nil {
				return err
			}
			res = &UseItemResult{UserID: userID, ItemID: 0, AssetKey: nil}
			return nil
		}

		var entry models.InventoryEntry
		if err := tx.Where("user_id = ? AND item_id = ?", userID, itemID).
			First(&entry).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotOwned
			}
			return err
		}
		if err := tx.Model(&entry).Update("equipped", true).Error; err != nil {
			return err
		}

		var item models.ShopItem
		if err := tx.First(&item, itemID).Error; err != nil {
			return err
		}
		asset := item.ImageName
		if err := tx.Model(&models.User{}).Where("id = ?", userID).
			Update("equipped_asset", asset).Error; err != nil {
			return err
		}

		res = &UseItemResult{UserID: userID, ItemID: itemID, AssetKey: &asset}
		return nil
	})
	if err != nil {
		return nil, txError(err)
	}
	return res, nil
}
