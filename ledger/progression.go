package ledger

import (
	"context"
	"errors"

	"github.com/SebastianOso/api-habi3/models"

	"gorm.io/gorm"
)

// CompletionResult is the read-back state after a successful completion.
type CompletionResult struct {
	AchievementID    uint            `json:"achievement_id"`
	UserID           uint            `json:"user_id"`
	ExperienceGained int64           `json:"experience_gained"`
	NewTreeLevel     int64           `json:"new_tree_level"`
	RewardsGranted   []GrantedReward `json:"rewards_granted"`
	TotalRewards     int             `json:"total_rewards"`
	CoinsAdded       int64           `json:"coins_added"`
	CurrentCoins     int64           `json:"current_coins"`
}

// CompleteAchievement marks an achievement completed for a user, exactly once.
// kind restricts the lookup to missions or quizzes; pass "" to accept either.
//
// The whole protocol runs in one transaction. The pre-check gives the common
// duplicate a clean conflict without burning an insert, but the authoritative
// guard is the unique index on completions(user_id, achievement_id): losing a
// race to a concurrent identical request surfaces as ErrAlreadyCompleted, not
// a double grant.
func (s *Service) CompleteAchievement(ctx context.Context, userID, achievementID uint, kind string) (*CompletionResult, error) {
	if userID == 0 || achievementID == 0 {
		return nil, ErrInvalidArgument
	}

	var res *CompletionResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Completion
		err := tx.Where("user_id = ? AND achievement_id = ?", userID, achievementID).
			First(&existing).Error
		if err == nil {
			return ErrAlreadyCompleted
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var ach models.Achievement
		if err := tx.First(&ach, achievementID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAchievementNotFound
			}
			return err
		}
		if kind != "" && ach.Kind != kind {
			return ErrAchievementNotFound
		}
		if !ach.Available {
			return ErrAchievementUnavailable
		}

		if _, err := userCoins(tx, userID); err != nil {
			return err
		}

		completion := models.Completion{
			UserID:        userID,
			AchievementID: achievementID,
			Status:        models.CompletionDone,
		}
		if err := tx.Create(&completion).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyCompleted
			}
			return err
		}

		var rewards []models.Reward
		if err := tx.
			Joins("JOIN achievement_rewards ar ON ar.reward_id = rewards.id").
			Where("ar.achievement_id = ? AND rewards.available = ?", achievementID, true).
			Find(&rewards).Error; err != nil {
			return err
		}

		granted, coinsAdded := grantRewards(tx, userID, rewards)
		if coinsAdded > 0 {
			if err := tx.Model(&models.User{}).Where("id = ?", userID).
				Update("coins", gorm.Expr("coins + ?", coinsAdded)).Error; err != nil {
				return err
			}
		}

		var tree models.Tree
		err = tx.Where("user_id = ?", userID).First(&tree).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			tree = models.Tree{UserID: userID, Level: ach.Experience}
			if err := tx.Create(&tree).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if err := tx.Model(&tree).
				Update("level", gorm.Expr("level + ?", ach.Experience)).Error; err != nil {
				return err
			}
		}

		// Read back post-update state for the response.
		if err := tx.Where("user_id = ?", userID).First(&tree).Error; err != nil {
			return err
		}
		coins, err := userCoins(tx, userID)
		if err != nil {
			return err
		}

		res = &CompletionResult{
			AchievementID:    achievementID,
			UserID:           userID,
			ExperienceGained: ach.Experience,
			NewTreeLevel:     tree.Level,
			RewardsGranted:   granted,
			TotalRewards:     len(rewards),
			CoinsAdded:       coinsAdded,
			CurrentCoins:     coins,
		}
		return nil
	})
	if err != nil {
		return nil, txError(err)
	}
	return res, nil
}
