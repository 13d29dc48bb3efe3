package models

import "time"

// User: admin atau pegawai. Foto disimpan sebagai data URL base64 —
// dipakai frontend untuk face matching di browser.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Role         string    `json:"role" gorm:"size:20;not null;default:pegawai"` // "admin" | "pegawai"
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	NIM          *string   `json:"nim" gorm:"uniqueIndex;size:100"` // NULL untuk admin
	Nama         string    `json:"nama" gorm:"size:255;not null"`
	Prodi        string    `json:"prodi" gorm:"size:255"`
	Startup      string    `json:"startup" gorm:"size:255"`
	FotoBase64   string    `json:"foto_base64" gorm:"type:text"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
