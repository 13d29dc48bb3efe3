package database

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Ranayh14/Absen/config"
	"github.com/Ranayh14/Absen/models"
)

// Admin default — di-seed kalau belum ada admin sama sekali.
const (
	DefaultAdminEmail    = "admin@example.com"
	DefaultAdminPassword = "admin123"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Attendance{},
	); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}

	seedAdmin()
}

// seedAdmin membuat akun admin pertama kali supaya aplikasi bisa langsung
// dipakai setelah deploy (password wajib diganti).
func seedAdmin() {
	var existing models.User
	err := DB.Where("role = ?", "admin").First(&existing).Error
	if err == nil {
		return
	}
	if err != gorm.ErrRecordNotFound {
		log.Printf("[seed] warn: query admin failed: %v", err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[seed] warn: hash admin password failed: %v", err)
		return
	}
	admin := models.User{
		Role:         "admin",
		Email:        DefaultAdminEmail,
		Nama:         "Administrator",
		PasswordHash: string(hash),
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("[seed] warn: create admin failed: %v", err)
		return
	}
	log.Printf("[seed] default admin created: %s", DefaultAdminEmail)
}
