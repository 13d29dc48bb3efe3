// Package attendance berisi mesin status presensi: aturan jendela waktu,
// perhitungan keterlambatan, dan pencegahan presensi ganda.
//
// State machine per pegawai per hari lokal:
//
//	NoRecord --masuk(valid)--> Open --pulang(valid)--> Closed
//
// Closed bersifat terminal untuk hari itu; hari kalender baru memulai
// NoRecord baru.
package attendance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Ranayh14/Absen/models"
)

type Mode string

const (
	ModeMasuk  Mode = "masuk"
	ModePulang Mode = "pulang"
)

const (
	StatusOnTime = "ontime"
	StatusLate   = "terlambat"
)

// Kebijakan jam kantor. Jam masuk [06,16), deadline on-time 08:00:00,
// pulang mulai 17:00, minimal 8 jam kerja sejak jam masuk sendiri.
const (
	checkInOpenHour  = 6
	checkInCloseHour = 16
	deadlineHour     = 8
	checkOutOpenHour = 17
	minWorkHours     = 8.0
)

// Member adalah hasil resolve identitas dari direktori anggota.
type Member struct {
	ID   uint
	NIM  string
	Nama string
}

// MemberDirectory me-resolve NIM ke pegawai terdaftar.
// Mengembalikan (nil, nil) bila tidak ditemukan.
type MemberDirectory interface {
	FindByNIM(ctx context.Context, nim string) (*Member, error)
}

// Store adalah log presensi yang durable. Implementasi wajib menjalankan
// urutan baca-cek-tulis Recorder dalam satu transaksi (lihat GormStore).
type Store interface {
	// FindTodayRecord mencari catatan apa pun (open atau closed) yang jam
	// masuknya jatuh di [dayStart, dayEnd].
	FindTodayRecord(ctx context.Context, memberID uint, dayStart, dayEnd time.Time) (*models.Attendance, error)
	// FindOpenRecord mencari catatan hari workDate yang belum ada jam pulang.
	FindOpenRecord(ctx context.Context, memberID uint, workDate string) (*models.Attendance, error)
	Insert(ctx context.Context, rec *models.Attendance) error
	// Close menulis jam pulang tepat satu kali pada catatan open.
	Close(ctx context.Context, id uint, jam string, iso time.Time, ekspresi string) error
}

// Result adalah payload sukses yang dibacakan ke pengguna.
type Result struct {
	Message     string
	Nama        string
	Jam         string // HH:MM:SS lokal
	Status      string // ontime|terlambat (hanya terisi untuk masuk)
	StatusClass string
}

// Recorder mengevaluasi satu aksi presensi secara atomik: cek jendela,
// cek duplikat/catatan open, lalu insert/update.
type Recorder struct {
	members MemberDirectory
	store   Store
	loc     *time.Location
	now     func() time.Time
}

func NewRecorder(members MemberDirectory, store Store, loc *time.Location) *Recorder {
	return &Recorder{members: members, store: store, loc: loc, now: time.Now}
}

// Record menjalankan presensi masuk/pulang untuk NIM. Ekspresi adalah label
// bebas dari face detector di browser dan disimpan apa adanya.
func (r *Recorder) Record(ctx context.Context, nim string, mode Mode, ekspresi string) (*Result, error) {
	nim = strings.TrimSpace(nim)
	if nim == "" || (mode != ModeMasuk && mode != ModePulang) {
		return nil, &Rejection{Kind: KindInvalidRequest, Message: "Bad request", StatusClass: ClassRed}
	}

	m, err := r.members.FindByNIM(ctx, nim)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, &Rejection{Kind: KindMemberNotFound, Message: "NIM tidak ditemukan", StatusClass: ClassRed}
	}

	now := r.now().In(r.loc)
	if mode == ModeMasuk {
		return r.checkIn(ctx, m, now, ekspresi)
	}
	return r.checkOut(ctx, m, now, ekspresi)
}

func (r *Recorder) checkIn(ctx context.Context, m *Member, now time.Time, ekspresi string) (*Result, error) {
	if now.Hour() < checkInOpenHour || now.Hour() >= checkInCloseHour {
		return nil, &Rejection{
			Kind:        KindOutsideWindow,
			Message:     "Presensi masuk hanya tersedia dari jam 06:00 sampai 16:00.",
			StatusClass: ClassRed,
		}
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, r.loc)
	dayEnd := dayStart.Add(24*time.Hour - time.Second)
	existing, err := r.store.FindTodayRecord(ctx, m.ID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		// Satu catatan per hari, sudah pulang atau belum sama saja.
		return nil, &Rejection{
			Kind: KindAlreadyCheckedIn,
			Message: fmt.Sprintf("Anda sudah presensi masuk pada %s dan belum pulang.",
				existing.JamMasukISO.In(r.loc).Format("02/01/2006 15:04:05")),
			StatusClass: ClassYellow,
		}
	}

	status := StatusOnTime
	lateMessage := ""
	if now.Hour() > deadlineHour || (now.Hour() == deadlineHour && now.Minute() > 0) {
		status = StatusLate
		deadline := time.Date(now.Year(), now.Month(), now.Day(), deadlineHour, 0, 0, 0, r.loc)
		lateMessage = " (" + renderDelay(now.Sub(deadline)) + ")"
	}

	jam := now.Format("15:04:05")
	rec := &models.Attendance{
		UserID:        m.ID,
		WorkDate:      now.Format("2006-01-02"),
		JamMasuk:      jam,
		JamMasukISO:   now,
		EkspresiMasuk: ekspresi,
		Status:        status,
	}
	if err := r.store.Insert(ctx, rec); err != nil {
		return nil, err
	}

	if status == StatusLate {
		return &Result{
			Message: fmt.Sprintf("Selamat datang, %s! Anda terlihat %s. Jam masuk tercatat pukul %s. Anda telat masuk%s",
				m.Nama, ekspresi, jam, lateMessage),
			Nama:        m.Nama,
			Jam:         jam,
			Status:      status,
			StatusClass: ClassYellow,
		}, nil
	}
	return &Result{
		Message: fmt.Sprintf("Selamat datang, %s! Anda terlihat %s. Jam masuk tercatat pukul %s. On time!",
			m.Nama, ekspresi, jam),
		Nama:        m.Nama,
		Jam:         jam,
		Status:      status,
		StatusClass: ClassGreen,
	}, nil
}

func (r *Recorder) checkOut(ctx context.Context, m *Member, now time.Time, ekspresi string) (*Result, error) {
	if now.Hour() < checkOutOpenHour {
		return nil, &Rejection{Kind: KindOutsideWindow, Message: msgStillWorking, StatusClass: ClassRed}
	}

	open, err := r.store.FindOpenRecord(ctx, m.ID, now.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	if open == nil {
		return nil, &Rejection{
			Kind:        KindNoOpenCheckIn,
			Message:     "Anda belum melakukan presensi masuk hari ini atau sudah pulang.",
			StatusClass: ClassYellow,
		}
	}

	// Meskipun sudah lewat 17:00, wajib genap 8 jam sejak jam masuk sendiri.
	if now.Sub(open.JamMasukISO).Hours() < minWorkHours {
		return nil, &Rejection{Kind: KindMinimumHoursNotMet, Message: msgStillWorking, StatusClass: ClassRed}
	}

	jam := now.Format("15:04:05")
	if err := r.store.Close(ctx, open.ID, jam, now, ekspresi); err != nil {
		return nil, err
	}
	return &Result{
		Message: fmt.Sprintf("Selamat jalan, %s! Anda terlihat %s. Jam pulang tercatat pukul %s.",
			m.Nama, ekspresi, jam),
		Nama:        m.Nama,
		Jam:         jam,
		StatusClass: ClassGreen,
	}, nil
}

const msgStillWorking = "Hei Anda dilarang Kabur, ini masih jam Kerja.. Wardani Mengawasi Anda"

// renderDelay membentuk teks keterlambatan: "X jam Y menit" bila ≥1 jam,
// "Y menit" bila ≥1 menit, selain itu detik.
func renderDelay(d time.Duration) string {
	secs := int(d.Seconds())
	switch {
	case secs >= 3600:
		return fmt.Sprintf("Telat %d jam %d menit", secs/3600, (secs%3600)/60)
	case secs >= 60:
		return fmt.Sprintf("Telat %d menit", secs/60)
	default:
		return fmt.Sprintf("Telat %d detik", secs)
	}
}
