package catalog

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/SebastianOso/api-habi3/ledger"
	"github.com/SebastianOso/api-habi3/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_txlock=immediate",
		filepath.Join(t.TempDir(), "catalog.db"))
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

func fakeSigner(objectName string, expirySeconds int64) (string, error) {
	return "https://assets.test/" + objectName, nil
}

func seedUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	u := &models.User{Name: name, Email: name + "@example.com", EmailHash: name, Password: "x"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func TestAchievementsForUser_CompletionFlags(t *testing.T) {
	db := openTestDB(t)
	svc := New(db, nil)
	user := seedUser(t, db, "ana")

	done := models.Achievement{Kind: models.KindMission, Category: "health", Description: "walk", Experience: 10, Available: true}
	pending := models.Achievement{Kind: models.KindMission, Category: "mind", Description: "read", Experience: 10, Available: true}
	hidden := models.Achievement{Kind: models.KindMission, Category: "mind", Description: "retired", Experience: 10, Available: false}
	require.NoError(t, db.Create(&done).Error)
	require.NoError(t, db.Create(&pending).Error)
	require.NoError(t, db.Create(&hidden).Error)
	require.NoError(t, db.Create(&models.Completion{UserID: user.ID, AchievementID: done.ID}).Error)

	views, err := svc.AchievementsForUser(models.KindMission, user.ID)
	require.NoError(t, err)
	require.Len(t, views, 2, "unavailable achievements are not listed")

	byID := map[uint]AchievementView{}
	for _, v := range views {
		byID[v.ID] = v
	}
	assert.True(t, byID[done.ID].Completed)
	assert.False(t, byID[pending.ID].Completed)
}

func TestAchievementsForUser_QuizzesIncludeQuestions(t *testing.T) {
	db := openTestDB(t)
	svc := New(db, nil)
	user := seedUser(t, db, "bo")

	quiz := models.Achievement{
		Kind: models.KindQuiz, Category: "finance", Description: "budgeting basics",
		Experience: 20, Available: true,
		Questions: []models.Question{
			{Question: "What is a budget?", Answer: "A plan", WrongAnswers: "A tax|A loan"},
		},
	}
	require.NoError(t, db.Create(&quiz).Error)

	views, err := svc.AchievementsForUser(models.KindQuiz, user.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Len(t, views[0].Questions, 1)
	assert.Equal(t, "A plan", views[0].Questions[0].Answer)
}

func TestQuizByID_MissingIsNotFound(t *testing.T) {
	db := openTestDB(t)
	svc := New(db, nil)

	_, err := svc.QuizByID(9999)
	require.ErrorIs(t, err, ledger.ErrAchievementNotFound)

	// mission ids are invisible through the quiz lookup
	mission := models.Achievement{Kind: models.KindMission, Category: "health", Description: "walk", Available: true}
	require.NoError(t, db.Create(&mission).Error)
	_, err = svc.QuizByID(mission.ID)
	require.ErrorIs(t, err, ledger.ErrAchievementNotFound)
}

func TestShopForUser_OwnershipAndImageURLs(t *testing.T) {
	db := openTestDB(t)
	svc := New(db, fakeSigner)
	user := seedUser(t, db, "cy")

	owned := models.ShopItem{Name: "Hat", Price: 10, Active: true, ImageName: "hat.png"}
	other := models.ShopItem{Name: "Scarf", Price: 20, Active: true}
	inactive := models.ShopItem{Name: "Old", Price: 5, Active: false}
	require.NoError(t, db.Create(&owned).Error)
	require.NoError(t, db.Create(&other).Error)
	require.NoError(t, db.Create(&inactive).Error)
	require.NoError(t, db.Create(&models.Purchase{UserID: user.ID, ItemID: owned.ID, TransactionRef: "HAB-1", Amount: 10}).Error)

	views, err := svc.ShopForUser(user.ID)
	require.NoError(t, err)
	require.Len(t, views, 2, "inactive items are not listed")

	byID := map[uint]ShopItemView{}
	for _, v := range views {
		byID[v.ID] = v
	}
	assert.True(t, byID[owned.ID].AlreadyPurchased)
	assert.False(t, byID[other.ID].AlreadyPurchased)
	require.NotNil(t, byID[owned.ID].ImageURL)
	assert.Equal(t, "https://assets.test/hat.png", *byID[owned.ID].ImageURL)
	assert.Nil(t, byID[other.ID].ImageURL, "items without an image key get no URL")
}

func TestStatsForUser_ZeroDefaultedCategories(t *testing.T) {
	db := openTestDB(t)
	svc := New(db, nil)
	user := seedUser(t, db, "di")
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).Update("coins", 70).Error)
	require.NoError(t, db.Create(&models.Tree{UserID: user.ID, Level: 42}).Error)

	health := models.Achievement{Kind: models.KindMission, Category: "health", Description: "a", Available: true}
	mind := models.Achievement{Kind: models.KindQuiz, Category: "mind", Description: "b", Available: true}
	require.NoError(t, db.Create(&health).Error)
	require.NoError(t, db.Create(&mind).Error)
	require.NoError(t, db.Create(&models.Completion{UserID: user.ID, AchievementID: health.ID}).Error)
	require.NoError(t, db.Create(&models.Completion{UserID: user.ID, AchievementID: mind.ID}).Error)

	stats, err := svc.StatsForUser(user.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(70), stats.Coins)
	assert.Equal(t, int64(42), stats.TreeLevel)
	assert.Equal(t, int64(2), stats.TotalCompleted)
	require.Len(t, stats.ByCategory, len(models.Categories), "every category is present")
	assert.Equal(t, int64(1), stats.ByCategory["Health"])
	assert.Equal(t, int64(1), stats.ByCategory["Mind"])
	assert.Equal(t, int64(0), stats.ByCategory["Finance"])
}

func TestStatsForUser_MissingUser(t *testing.T) {
	svc := New(openTestDB(t), nil)
	_, err := svc.StatsForUser(9999)
	require.ErrorIs(t, err, ledger.ErrUserNotFound)
}
