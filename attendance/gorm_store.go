package attendance

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Ranayh14/Absen/models"
)

// GormDirectory me-resolve NIM lewat tabel users.
type GormDirectory struct {
	db *gorm.DB
}

func NewGormDirectory(db *gorm.DB) *GormDirectory { return &GormDirectory{db: db} }

func (d *GormDirectory) FindByNIM(ctx context.Context, nim string) (*Member, error) {
	var u models.User
	err := d.db.WithContext(ctx).Where("nim = ?", nim).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	m := &Member{ID: u.ID, Nama: u.Nama}
	if u.NIM != nil {
		m.NIM = *u.NIM
	}
	return m, nil
}

// GormStore mengimplementasikan Store di atas tabel attendances.
// Serialisasi baca-cek-tulis didapat dengan membangun store dari *gorm.DB
// yang sedang di dalam transaksi (handler memakai database.DB.Transaction).
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{db: db} }

func (s *GormStore) FindTodayRecord(ctx context.Context, memberID uint, dayStart, dayEnd time.Time) (*models.Attendance, error) {
	var rec models.Attendance
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND jam_masuk_iso BETWEEN ? AND ?", memberID, dayStart, dayEnd).
		Order("jam_masuk_iso DESC").
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *GormStore) FindOpenRecord(ctx context.Context, memberID uint, workDate string) (*models.Attendance, error) {
	var rec models.Attendance
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND work_date = ? AND jam_pulang_iso IS NULL", memberID, workDate).
		Order("jam_masuk_iso DESC").
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *GormStore) Insert(ctx context.Context, rec *models.Attendance) error {
	return s.db.WithContext(ctx).Create(rec).Error
}

func (s *GormStore) Close(ctx context.Context, id uint, jam string, iso time.Time, ekspresi string) error {
	return s.db.WithContext(ctx).
		Model(&models.Attendance{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"jam_pulang":      jam,
			"jam_pulang_iso":  iso,
			"ekspresi_pulang": ekspresi,
		}).Error
}
