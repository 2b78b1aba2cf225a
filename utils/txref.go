package utils

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

var mu sync.Mutex
var seededRand *rand.Rand

func init() {
	seededRand = rand.New(rand.NewSource(time.Now().UnixNano()))
}

// GenerateTransactionRef produces the purchase reference stored on each
// purchase row. Uniqueness comes from the nano timestamp plus a random part.
func GenerateTransactionRef(userID uint) string {
	mu.Lock()
	defer mu.Unlock()

	nowNano := time.Now().UnixNano()
	nanoPart := nowNano % 1000000

	randPart := seededRand.Intn(900) + 100

	return fmt.Sprintf("HAB-%06d%03d%d", nanoPart, randPart, userID)
}
