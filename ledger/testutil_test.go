package ledger

import (
	"fmt"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/SebastianOso/api-habi3/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB creates a file-backed sqlite database in a temp dir. A file DB
// (not :memory:) with _txlock=immediate makes concurrent transactions behave
// like a real server database: writers serialize instead of failing fast.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_txlock=immediate",
		filepath.Join(t.TempDir(), "ledger.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Achievement{},
		&models.Question{},
		&models.Reward{},
		&models.RewardGrant{},
		&models.Completion{},
		&models.Tree{},
		&models.ShopItem{},
		&models.Purchase{},
		&models.InventoryEntry{},
	))
	return db
}

var userSeq atomic.Uint64

func seedUser(t *testing.T, db *gorm.DB, coins int64) *models.User {
	t.Helper()
	n := userSeq.Add(1)
	u := &models.User{
		Name:      "Test User",
		Email:     fmt.Sprintf("user%d@example.com", n),
		EmailHash: fmt.Sprintf("hash-%d", n),
		Password:  "x",
		Coins:     coins,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedAchievement(t *testing.T, db *gorm.DB, kind string, exp int64, available bool, rewards ...models.Reward) *models.Achievement {
	t.Helper()
	a := &models.Achievement{
		Kind:        kind,
		Category:    "health",
		Description: "drink water",
		Experience:  exp,
		Available:   available,
		Rewards:     rewards,
	}
	require.NoError(t, db.Create(a).Error)
	return a
}

func seedItem(t *testing.T, db *gorm.DB, price int64) *models.ShopItem {
	t.Helper()
	it := &models.ShopItem{
		Name:      "Straw hat",
		Category:  "mind",
		Price:     price,
		Active:    true,
		ImageName: "hats/straw.png",
	}
	require.NoError(t, db.Create(it).Error)
	return it
}
