// Package catalog is the read side: it composes achievements, shop items and
// user state for presentation. Nothing here mutates the store.
package catalog

import "gorm.io/gorm"

// SignerFunc produces a time-limited retrieval URL for an asset key.
// Wired to the R2 presigner in production; nil disables image URLs.
type SignerFunc func(objectName string, expirySeconds int64) (string, error)

type Service struct {
	db   *gorm.DB
	sign SignerFunc
}

func New(db *gorm.DB, sign SignerFunc) *Service {
	return &Service{db: db, sign: sign}
}
