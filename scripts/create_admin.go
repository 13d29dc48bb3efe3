// scripts/create_admin.go
package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Ranayh14/Absen/config"
	"github.com/Ranayh14/Absen/database"
	"github.com/Ranayh14/Absen/models"
)

func main() {
	// Pakai config dan koneksi yang sama dengan main.go
	cfg := config.Load()
	database.Connect(cfg)

	email := database.DefaultAdminEmail
	password := database.DefaultAdminPassword
	if v := os.Getenv("ADMIN_EMAIL"); v != "" {
		email = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		password = v
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var existing models.User
	if err := database.DB.Where("email = ?", email).First(&existing).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("failed to query users: %v", err)
		}
	} else {
		fmt.Println("⚠️  Admin user already exists with email:", email)
		os.Exit(0)
	}

	u := models.User{
		Role:         "admin",
		Email:        email,
		Nama:         "Administrator",
		PasswordHash: string(hashed),
	}
	if err := database.DB.Create(&u).Error; err != nil {
		log.Fatalf("failed to insert admin: %v", err)
	}

	fmt.Println("✅ Admin user created successfully!")
	fmt.Println("   Email:", email)
	fmt.Println("   Password:", password, "(plain, remember to change later!)")
}
