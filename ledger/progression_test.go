package ledger

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/SebastianOso/api-habi3/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCompleteAchievement_GrantsExperienceAndRewards(t *testing.T) {
	db := openTestDB(t)
	svc := New(db)
	user := seedUser(t, db, 0)
	ach := seedAchievement(t, db, models.KindMission, 50, true,
		models.Reward{Name: "Coin bonus", Type: models.RewardMonetary, Value: 20, Available: true},
		models.Reward{Name: "Green thumb", Type: models.RewardStatus, Value: 0, Available: true},
	)

	res, err := svc.CompleteAchievement(context.Background(), user.ID, ach.ID, models.KindMission)
	require.NoError(t, err)

	assert.Equal(t, int64(50), res.ExperienceGained)
	assert.Equal(t, int64(50), res.NewTreeLevel)
	assert.Equal(t, 2, res.TotalRewards)
	assert.Len(t, res.RewardsGranted, 2)
	assert.Equal(t, int64(20), res.CoinsAdded)
	assert.Equal(t, int64(20), res.CurrentCoins)

	var u models.User
	require.NoError(t, db.First(&u, user.ID).Error)
	assert.Equal(t, int64(20), u.Coins)

	var grants int64
	require.NoError(t, db.Model(&models.RewardGrant{}).Where("user_id = ?", user.ID).Count(&grants).Error)
	assert.Equal(t, int64(2), grants)
}

func TestCompleteAchievement_SecondAttemptConflicts(t *testing.T) {
	db := openTestDB(t)
	svc := New(db)
	user := seedUser(t, db, 0)
	ach := seedAchievement(t, db, models.KindMission, 10, true,
		models.Reward{Name: "Coin bonus", Type: models.RewardMonetary, Value: 5, Available: true},
	)

	_, err := svc.CompleteAchievement(context.Background(), user.ID, ach.ID, models.KindMission)
	require.NoError(t, err)

	_, err = svc.CompleteAchievement(context.Background(), user.ID, ach.ID, models.KindMission)
	require.ErrorIs(t, err, ErrAlreadyCompleted)

	// the duplicate attempt must leave no trace
	var u models.User
	require.NoError(t, db.First(&u, user.ID).Error)
	assert.Equal(t, int64(5), u.Coins)

	var tree models.Tree
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&tree).Error)
	assert.Equal(t, int64(10), tree.Level)
}

func TestCompleteAchievement_Unavailable(t *testing.T) {
	db := openTestDB(t)
	svc := New(db)
	user := seedUser(t, db, 0)
	ach := seedAchievement(t, db, models.KindMission, 10, false)

	_, err := svc.CompleteAchievement(context.Background(), user.ID, ach.ID, models.KindMission)
	require.ErrorIs(t, err, ErrAchievementUnavailable)

	var count int64
	require.NoError(t, db.Model(&models.Completion{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCompleteAchievement_NotFound(t *testing.T) {
	db := openTestDB(t)
	svc := New(db)
	user := seedUser(t, db, 0)

	_, err := svc.CompleteAchievement(context.Background(), user.ID, 9999, models.KindMission)
	require.ErrorIs(t, err, ErrAchievementNotFound)
}

func TestCompleteAchievement_KindMismatch(t *testing.T) {
	db := openTestDB(t)
	svc := New(db)
	user := seedUser(t, db, 0)
	quiz := seedAchievement(t, db, models.KindQuiz, 10, true)

	// a quiz cannot be completed through the mission path
	_, err := svc.CompleteAchievement(context.Background(), user.ID, quiz.ID, models.KindMission)
	require.ErrorIs(t, err, ErrAchievementNotFound)

	_, err = svc.CompleteAchievement(context.Background(), user.ID, quiz.ID, models.KindQuiz)
	require.NoError(t, err)
}

func TestCompleteAchievement_UserNotFound(t *testing.T) {
	db := openTestDB(t)
	svc := New(db)
	ach := seedAchievement(t, db, models.KindMission, 10, true)

	_, err := svc.CompleteAchievement(context.Background(), 4242, ach.ID, models.KindMission)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestCompleteAchievement_InvalidArgument(t *testing.T) {
	svc := New(openTestDB(t))
	_, err := svc.CompleteAchievement(context.Background(), 0, 1, models.KindMission)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = svc.CompleteAchievement(context.Background(), 1, 0, models.KindMission)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCompleteAchievement_FailedGrantDoesNotAbortCompletion(t *testing.T) {
	db := openTestDB(t)
	svc := New(db)
	user := seedUser(t, db, 0)
	ach := seedAchievement(t, db, models.KindMission, 30, true,
		models.Reward{Name: "Coin bonus", Type: models.RewardMonetary, Value: 15, Available: true},
	)

	// the user already holds the reward, so the grant insert hits the
	// unique index and must be skipped without failing the completion
	require.NoError(t, db.Create(&models.RewardGrant{
		UserID:   user.ID,
		RewardID: ach.Rewards[0].ID,
	}).Error)

	res, err := svc.CompleteAchievement(context.Background(), user.ID, ach.ID, models.KindMission)
	require.NoError(t, err)

	assert.Equal(t, 1, res.TotalRewards)
	assert.Empty(t, res.RewardsGranted)
	assert.Zero(t, res.CoinsAdded)
	assert.Equal(t, int64(30), res.NewTreeLevel)

	var count int64
	require.NoError(t, db.Model(&models.Completion{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCompleteAchievement_ExistingTreeAccumulates(t *testing.T) {
	db := openTestDB(t)
	svc := New(db)
	user := seedUser(t, db, 0)
	require.NoError(t, db.Create(&models.Tree{UserID: user.ID, Level: 100}).Error)
	ach := seedAchievement(t, db, models.KindMission, 25, true)

	res, err := svc.CompleteAchievement(context.Background(), user.ID, ach.ID, models.KindMission)
	require.NoError(t, err)
	assert.Equal(t, int64(125), res.NewTreeLevel)
}

func TestCompleteAchievement_ConcurrentDuplicate(t *testing.T) {
	db := openTestDB(t)
	svc := New(db)
	user := seedUser(t, db, 0)
	ach := seedAchievement(t, db, models.KindMission, 40, true,
		models.Reward{Name: "Coin bonus", Type: models.RewardMonetary, Value: 10, Available: true},
	)

	const workers = 2
	errs := make([]error, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CompleteAchievement(context.Background(), user.ID, ach.ID, models.KindMission)
		}(i)
	}
	wg.Wait()

	var okCount, dupCount int
	for _, err := range errs {
		switch {
		case err == nil:
			okCount++
		case errors.Is(err, ErrAlreadyCompleted):
			dupCount++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, okCount, "exactly one completion must win")
	assert.Equal(t, 1, dupCount)

	// grants, coins and experience applied exactly once
	var u models.User
	require.NoError(t, db.First(&u, user.ID).Error)
	assert.Equal(t, int64(10), u.Coins)

	var tree models.Tree
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&tree).Error)
	assert.Equal(t, int64(40), tree.Level)
}

func TestCompletionUniqueIndexIsAuthoritative(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, 0)

	require.NoError(t, db.Create(&models.Completion{UserID: user.ID, AchievementID: 7}).Error)
	err := db.Create(&models.Completion{UserID: user.ID, AchievementID: 7}).Error
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
