package model

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// TokenBlacklist menyimpan HASH access token yang sudah logout (bukan plaintext)
// sampai token itu kedaluwarsa.
type TokenBlacklist struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TokenHash string    `gorm:"size:64;not null;uniqueIndex:uq_token_blacklist_hash" json:"-"`
	ExpiredAt time.Time `gorm:"not null;index" json:"expired_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (TokenBlacklist) TableName() string {
	return "token_blacklist"
}

// HashToken: sha256 hex dari raw JWT.
func HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
