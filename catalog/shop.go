package catalog

import (
	"log"

	"github.com/SebastianOso/api-habi3/models"
)

const imageURLExpirySeconds = 3600

type ShopItemView struct {
	ID               uint    `json:"id"`
	Name             string  `json:"name"`
	Category         string  `json:"category"`
	Price            int64   `json:"price"`
	AlreadyPurchased bool    `json:"already_purchased"`
	ImageURL         *string `json:"image_url"`
}

// ShopForUser lists active shop items with the user's purchase status and a
// presigned image URL per item. A failed presign leaves the URL null rather
// than failing the listing.
func (s *Service) ShopForUser(userID uint) ([]ShopItemView, error) {
	var items []models.ShopItem
	if err := s.db.Where("active = ?", true).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}

	var purchases []models.Purchase
	if err := s.db.Where("user_id = ?", userID).Find(&purchases).Error; err != nil {
		return nil, err
	}
	owned := make(map[uint]bool, len(purchases))
	for _, p := range purchases {
		owned[p.ItemID] = true
	}

	views := make([]ShopItemView, 0, len(items))
	for _, it := range items {
		v := ShopItemView{
			ID:               it.ID,
			Name:             it.Name,
			Category:         it.Category,
			Price:            it.Price,
			AlreadyPurchased: owned[it.ID],
		}
		if it.ImageName != "" && s.sign != nil {
			url, err := s.sign(it.ImageName, imageURLExpirySeconds)
			if err != nil {
				log.Printf("[catalog/shop] presign failed for %s: %v", it.ImageName, err)
			} else {
				v.ImageURL = &url
			}
		}
		views = append(views, v)
	}
	return views, nil
}
