package database

import (
	"log"

	"gorm.io/gorm"

	absenceModel "officer_duty_backend/internals/features/attendance/absence_requests/model"
	clockModel "officer_duty_backend/internals/features/attendance/clock_settings/model"
	attendanceModel "officer_duty_backend/internals/features/attendance/records/model"
	dutyModel "officer_duty_backend/internals/features/duty/assignments/model"
	notificationModel "officer_duty_backend/internals/features/notifications/notifications/model"
	authModel "officer_duty_backend/internals/features/users/auth/model"
	userModel "officer_duty_backend/internals/features/users/user/model"
)

// Models: urutan parent → child, dipakai AutoMigrate & DropAll (dibalik).
func Models() []interface{} {
	return []interface{}{
		&userModel.UserModel{},
		&authModel.TokenBlacklist{},
		&clockModel.ClockSettingModel{},
		&dutyModel.DutyAssignmentModel{},
		&attendanceModel.AttendanceModel{},
		&absenceModel.AbsenceRequestModel{},
		&notificationModel.NotificationModel{},
	}
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return err
	}
	log.Println("✅ AutoMigrate selesai.")
	return nil
}

// DropAll menghapus semua tabel aplikasi (child dulu).
func DropAll(db *gorm.DB) error {
	models := Models()
	m := db.Migrator()
	for i := len(models) - 1; i >= 0; i-- {
		if !m.HasTable(models[i]) {
			continue
		}
		if err := m.DropTable(models[i]); err != nil {
			return err
		}
	}
	log.Println("🧹 Semua tabel dihapus.")
	return nil
}

// Recreate = DropAll + Migrate.
func Recreate(db *gorm.DB) error {
	if err := DropAll(db); err != nil {
		return err
	}
	return Migrate(db)
}
