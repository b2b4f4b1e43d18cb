package user

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"officer_duty_backend/internals/constants"
	authHelper "officer_duty_backend/internals/features/users/auth/helper"
	authRepo "officer_duty_backend/internals/features/users/auth/repository"
	"officer_duty_backend/internals/features/users/user/model"
)

type UserSeed struct {
	Username   string  `json:"username"`
	Password   string  `json:"password"`
	Role       string  `json:"role"`
	FullName   *string `json:"fullName"`
	Department *string `json:"department"`
}

// SeedUsersFromJSON memasukkan principal dari file JSON; username yang sudah
// ada dilewati. Mengembalikan jumlah baris yang di-insert.
func SeedUsersFromJSON(db *gorm.DB, filePath string) (int, error) {
	log.Println("📥 Membaca file user:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("baca file seed: %w", err)
	}

	var inputs []UserSeed
	if err := sonic.Unmarshal(file, &inputs); err != nil {
		return 0, fmt.Errorf("decode JSON seed: %w", err)
	}
	return SeedUsers(db, inputs)
}

func SeedUsers(db *gorm.DB, inputs []UserSeed) (int, error) {
	inserted := 0
	for _, data := range inputs {
		username := strings.TrimSpace(data.Username)
		if username == "" || data.Password == "" {
			log.Printf("⚠️ Seed user tanpa username/password dilewati")
			continue
		}

		taken, err := authRepo.IsUsernameTaken(db, username)
		if err != nil {
			return inserted, err
		}
		if taken {
			log.Printf("ℹ️ User '%s' sudah ada, dilewati.", username)
			continue
		}

		role, err := constants.ParseRole(data.Role)
		if err != nil {
			return inserted, fmt.Errorf("user '%s': %w", username, err)
		}

		// 🔐 Hash password sebelum disimpan
		hashedPassword, err := authHelper.HashPassword(data.Password)
		if err != nil {
			return inserted, fmt.Errorf("hash password '%s': %w", username, err)
		}

		newUser := model.UserModel{
			Username:   username,
			Password:   hashedPassword,
			Role:       role,
			FullName:   data.FullName,
			Department: data.Department,
		}
		if err := newUser.Validate(); err != nil {
			return inserted, fmt.Errorf("user '%s': %w", username, err)
		}
		if err := authRepo.CreateUser(db, &newUser); err != nil {
			return inserted, fmt.Errorf("insert user '%s': %w", username, err)
		}
		log.Printf("✅ Berhasil insert user '%s' (%s)", username, role)
		inserted++
	}
	return inserted, nil
}
