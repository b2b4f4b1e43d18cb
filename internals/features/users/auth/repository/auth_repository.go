package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authModel "officer_duty_backend/internals/features/users/auth/model"
	userModel "officer_duty_backend/internals/features/users/user/model"
)

/* ====================== USER ====================== */

func FindUserByUsername(db *gorm.DB, username string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, userID uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func IsUsernameTaken(db *gorm.DB, username string) (bool, error) {
	var n int64
	if err := db.Model(&userModel.UserModel{}).Where("username = ?", username).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func CreateUser(db *gorm.DB, user *userModel.UserModel) error {
	return db.Create(user).Error
}

func UpdateUserPassword(db *gorm.DB, userID uuid.UUID, passwordHash string) error {
	return db.Model(&userModel.UserModel{}).Where("id = ?", userID).Update("password", passwordHash).Error
}

/* ====================== BLACKLIST TOKEN ====================== */

// BlacklistToken: upsert hash token; logout dua kali cukup memperbarui expired_at.
func BlacklistToken(ctx context.Context, db *gorm.DB, rawToken string, expiresAt time.Time) error {
	row := authModel.TokenBlacklist{
		TokenHash: authModel.HashToken(rawToken),
		ExpiredAt: expiresAt.UTC(),
	}
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token_hash"}},
		DoUpdates: clause.AssignmentColumns([]string{"expired_at"}),
	}).Create(&row).Error
}

func IsTokenBlacklisted(ctx context.Context, db *gorm.DB, rawToken string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).Model(&authModel.TokenBlacklist{}).
		Where("token_hash = ?", authModel.HashToken(rawToken)).
		Count(&n).Error
	return n > 0, err
}

// CleanupExpiredBlacklist menghapus baris yang token-nya sudah lewat exp.
func CleanupExpiredBlacklist(db *gorm.DB, now time.Time) (int64, error) {
	res := db.Where("expired_at <= ?", now.UTC()).Delete(&authModel.TokenBlacklist{})
	return res.RowsAffected, res.Error
}
