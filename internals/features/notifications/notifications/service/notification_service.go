package service

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"officer_duty_backend/internals/features/notifications/notifications/model"
	helper "officer_duty_backend/internals/helpers"
)

const MsgNotificationNotFound = "Notification not found"

// Notify menyimpan notifikasi untuk satu principal. tx boleh transaksi pemanggil,
// sehingga notifikasi ikut rollback kalau aksi utamanya gagal.
func Notify(tx *gorm.DB, userID uuid.UUID, title, message string, data map[string]any) (*model.NotificationModel, error) {
	n := &model.NotificationModel{
		UserID:  userID,
		Title:   title,
		Message: message,
		Data:    datatypes.JSONMap(data),
	}
	if err := tx.Create(n).Error; err != nil {
		return nil, err
	}
	return n, nil
}

type Service struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Service {
	return &Service{DB: db}
}

func (s *Service) ListMine(ctx context.Context, userID uuid.UUID, unreadOnly bool, p helper.Paging) ([]model.NotificationModel, int64, error) {
	q := s.DB.WithContext(ctx).Model(&model.NotificationModel{}).Where("user_id = ?", userID)
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, helper.MapDBError(err, "")
	}
	var rows []model.NotificationModel
	if err := q.Order("created_at DESC").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return nil, 0, helper.MapDBError(err, "")
	}
	return rows, total, nil
}

func (s *Service) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&model.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&n).Error
	return n, helper.MapDBError(err, "")
}

// MarkRead: hanya pemilik; notifikasi orang lain diperlakukan 404.
func (s *Service) MarkRead(ctx context.Context, userID, id uuid.UUID) (*model.NotificationModel, error) {
	var n model.NotificationModel
	err := s.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&n).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, MsgNotificationNotFound)
	}
	if err != nil {
		return nil, helper.MapDBError(err, "")
	}
	if !n.IsRead {
		if err := s.DB.WithContext(ctx).Model(&n).Update("is_read", true).Error; err != nil {
			return nil, helper.MapDBError(err, "")
		}
	}
	return &n, nil
}

func (s *Service) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	res := s.DB.WithContext(ctx).Model(&model.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	return res.RowsAffected, helper.MapDBError(res.Error, "")
}
