// Package ledger holds the transactional progression and economy protocols:
// the only code paths that mutate completion state, coins, experience and
// inventory. Every protocol runs inside a single database transaction and
// either commits fully or leaves no trace.
package ledger

import (
	"errors"
	"log"

	"github.com/SebastianOso/api-habi3/models"

	"gorm.io/gorm"
)

type Service struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Service {
	return &Service{db: db}
}

// GrantedReward is one reward actually handed to the user during a completion.
type GrantedReward struct {
	GrantID uint   `json:"grant_id"`
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Value   int64  `json:"value"`
}

// grantRewards attempts each grant independently and collects the successes.
// A failed grant (malformed reward row, user already holds the reward) is
// logged and skipped; it never aborts the surrounding completion. Each insert
// runs on its own savepoint so a constraint violation cannot poison the
// enclosing transaction on stricter drivers.
func grantRewards(tx *gorm.DB, userID uint, rewards []models.Reward) ([]GrantedReward, int64) {
	granted := make([]GrantedReward, 0, len(rewards))
	var coins int64
	for _, rw := range rewards {
		grant := models.RewardGrant{UserID: userID, RewardID: rw.ID}
		err := tx.Transaction(func(inner *gorm.DB) error {
			return inner.Create(&grant).Error
		})
		if err != nil {
			log.Printf("[ledger/rewards] skipping reward %d for user %d: %v", rw.ID, userID, err)
			continue
		}
		granted = append(granted, GrantedReward{
			GrantID: grant.ID,
			ID:      rw.ID,
			Name:    rw.Name,
			Type:    rw.Type,
			Value:   rw.Value,
		})
		if rw.Type == models.RewardMonetary && rw.Value > 0 {
			coins += rw.Value
		}
	}
	return granted, coins
}

// userCoins loads the user's balance inside tx, translating a missing row.
func userCoins(tx *gorm.DB, userID uint) (int64, error) {
	var user models.User
	if err := tx.Select("id", "coins").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}
	return user.Coins, nil
}
