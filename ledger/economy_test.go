package ledger

import (
	"context"
	"strings"
	"testing"

	"github.com/SebastianOso/api-habi3/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchaseItem_DebitsAndRecordsOwnership(t *testing.T) {
	db := openTestDB(t)
	svc := New(db)
	user := seedUser(t, db, 100)
	item := seedItem(t, db, 60)

	res, err := svc.PurchaseItem(context.Background(), user.ID, item.ID)
	require.NoError(t, err)
	assert.NotZero(t, res.PurchaseID)
	assert.True(t, strings.HasPrefix(res.TransactionRef, "HAB-"))
	assert.Equal(t, "Purchase completed successfully", res.Message)

	var u models.User
	require.NoError(t, db.First(&u, user.ID).Error)
	assert.Equal(t, int64(40), u.Coins)

	var purchase models.Purchase
	require.NoError(t, db.Where("user_id = ? AND item_id = ?", user.ID, item.ID).First(&purchase).Error)
	assert.Equal(t, int64(60), purchase.Amount)

	var entry models.InventoryEntry
	require.NoError(t, db.Where("user_id = ? AND item_id = ?", user.ID, item.ID).First(&entry).Error)
	assert.Equal(t, 1, entry.Quantity)
	assert.False(t, entry.Equipped)
}

func TestPurchaseItem_RepeatPurchaseConflicts(t *testing.T) {
	db := openTestDB(t)
	svc := New(db)
	user := seedUser(t, db, 100)
	item := seedItem(t, db, 60)

	_, err := svc.PurchaseItem(context.Background(), user.ID, item.ID)
	require.NoError(t, err)

	_, err = svc.PurchaseItem(context.Background(), user.ID, item.ID)
	require.ErrorIs(t, err, ErrAlreadyPurchased)

	// no double charge
	var u models.User
	require.NoError(t, db.First(&u, user.ID).Error)
	assert.Equal(t, int64(40), u.Coins)
}

func TestPurchaseItem_InsufficientFunds(t *testing.T) {
	db := openTestDB(t)
	svc := New(db)
	user := seedUser(t, db, 30)
	item := seedItem(t, db, 60)

	_, err := svc.PurchaseItem(context.Background(), user.ID, item.ID)
	require.ErrorIs(t, err, ErrInsufficientFunds)

	var u models.User
	require.NoError(t, db.First(&u, user.ID).Error)
	assert.Equal(t, int64(30), u.Coins)

	var count int64
	require.NoError(t, db.Model(&models.Purchase{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPurchaseItem_ExactBalanceSucceeds(t *testing.T) {
	db := openTestDB(t)
	svc := New(db)
	user := seedUser(t, db, 60)
	item := seedItem(t, db, 60)

	_, err := svc.PurchaseItem(context.Background(), user.ID, item.ID)
	require.NoError(t, err)

	var u models.User
	require.NoError(t, db.First(&u, user.ID).Error)
	assert.Zero(t, u.Coins)
}

func TestPurchaseItem_ItemNotFound(t *testing.T) {
	db := openTestDB(t)
	svc := New(db)
	user := seedUser(t, db, 100)

	_, err := svc.PurchaseItem(context.Background(), user.ID, 9999)
	require.ErrorIs(t, err, ErrItemNotFound)
}

func TestPurchaseItem_UserNotFound(t *testing.T) {
	db := openTestDB(t)
	svc := New(db)
	item := seedItem(t, db, 60)

	_, err := svc.PurchaseItem(context.Background(), 4242, item.ID)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestPurchaseItem_InvalidArgument(t *testing.T) {
	svc := New(openTestDB(t))
	_, err := svc.PurchaseItem(context.Background(), 0, 1)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = svc.PurchaseItem(context.Background(), 1, 0)
	require.ErrorIs(t, err, ErrInvalidArgument)
}
