package seeds

import (
	"log"

	"gorm.io/gorm"

	users "officer_duty_backend/internals/seeds/users/auth"
)

const DefaultUsersFile = "internals/seeds/users/auth/data_users.json"

func RunAllSeeds(db *gorm.DB, usersFile string) error {
	if usersFile == "" {
		usersFile = DefaultUsersFile
	}

	//* User
	n, err := users.SeedUsersFromJSON(db, usersFile)
	if err != nil {
		return err
	}
	log.Printf("🌱 Seed selesai: %d user baru", n)
	return nil
}
