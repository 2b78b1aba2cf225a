package catalog

import (
	"errors"

	"github.com/SebastianOso/api-habi3/ledger"
	"github.com/SebastianOso/api-habi3/models"

	"gorm.io/gorm"
)

type Stats struct {
	UserID         uint             `json:"user_id"`
	Name           string           `json:"name"`
	Coins          int64            `json:"coins"`
	TreeLevel      int64            `json:"tree_level"`
	TotalCompleted int64            `json:"total_completed"`
	ByCategory     map[string]int64 `json:"completed_by_category"`
}

// StatsForUser composes the profile summary: coins, tree level and completion
// counts. ByCategory is a total map over the closed category set under display
// titles, absent categories reported as zero. Name comes back as stored; the controller is
// responsible for decoding personal fields.
func (s *Service) StatsForUser(userID uint) (*Stats, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.ErrUserNotFound
		}
		return nil, err
	}

	var tree models.Tree
	var level int64
	err := s.db.Where("user_id = ?", userID).First(&tree).Error
	switch {
	case err == nil:
		level = tree.Level
	case errors.Is(err, gorm.ErrRecordNotFound):
		level = 0
	default:
		return nil, err
	}

	type catCount struct {
		Category string
		N        int64
	}
	var counts []catCount
	if err := s.db.Model(&models.Completion{}).
		Select("achievements.category AS category, COUNT(*) AS n").
		Joins("JOIN achievements ON achievements.id = completions.achievement_id").
		Where("completions.user_id = ?", userID).
		Group("achievements.category").
		Scan(&counts).Error; err != nil {
		return nil, err
	}

	byCategory := make(map[string]int64, len(models.Categories))
	for _, c := range models.Categories {
		byCategory[models.CategoryTitle(c)] = 0
	}
	var total int64
	for _, c := range counts {
		if key, ok := models.NormalizeCategory(c.Category); ok {
			byCategory[models.CategoryTitle(key)] = c.N
		}
		total += c.N
	}

	return &Stats{
		UserID:         user.ID,
		Name:           user.Name,
		Coins:          user.Coins,
		TreeLevel:      level,
		TotalCompleted: total,
		ByCategory:     byCategory,
	}, nil
}
