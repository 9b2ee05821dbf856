package configs

import (
	"log"

	"github.com/Ashish12122003/Menumate-backend/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the platform admin on first boot.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.Vendor{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.Vendor{
		Email:    email,
		Password: string(hash),
		Name:     "Platform Admin",
		Role:     entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}
