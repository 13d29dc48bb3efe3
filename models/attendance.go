package models

import "time"

// Catatan presensi per pegawai per hari kerja.
// Unique index (user_id, work_date) adalah pagar terakhir terhadap
// double check-in saat dua request lolos pengecekan duplikat bersamaan.
type Attendance struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	UserID         uint       `json:"user_id" gorm:"not null;uniqueIndex:uniq_user_work_date"`
	WorkDate       string     `json:"work_date" gorm:"size:10;not null;uniqueIndex:uniq_user_work_date"` // YYYY-MM-DD
	JamMasuk       string     `json:"jam_masuk" gorm:"size:20"` // HH:MM:SS waktu lokal
	JamMasukISO    time.Time  `json:"jam_masuk_iso"`
	EkspresiMasuk  string     `json:"ekspresi_masuk" gorm:"size:50"`
	JamPulang      string     `json:"jam_pulang" gorm:"size:20"`
	JamPulangISO   *time.Time `json:"jam_pulang_iso"`
	EkspresiPulang string     `json:"ekspresi_pulang" gorm:"size:50"`
	Status         string     `json:"status" gorm:"size:20;not null;default:ontime"` // ontime|terlambat
	CreatedAt      time.Time  `json:"created_at"`
}
