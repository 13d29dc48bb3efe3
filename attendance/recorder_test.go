package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ranayh14/Absen/models"
)

var wib = time.FixedZone("WIB", 7*60*60)

// 10 Maret 2025, hari kerja biasa
func at(h, m, s int) time.Time {
	return time.Date(2025, time.March, 10, h, m, s, 0, wib)
}

/* ---------- fakes ---------- */

type fakeDirectory map[string]*Member

func (d fakeDirectory) FindByNIM(_ context.Context, nim string) (*Member, error) {
	return d[nim], nil
}

type fakeStore struct {
	records []*models.Attendance
	nextID  uint
}

func (s *fakeStore) FindTodayRecord(_ context.Context, memberID uint, dayStart, dayEnd time.Time) (*models.Attendance, error) {
	for i := len(s.records) - 1; i >= 0; i-- {
		r := s.records[i]
		if r.UserID == memberID && !r.JamMasukISO.Before(dayStart) && !r.JamMasukISO.After(dayEnd) {
			return r, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) FindOpenRecord(_ context.Context, memberID uint, workDate string) (*models.Attendance, error) {
	for i := len(s.records) - 1; i >= 0; i-- {
		r := s.records[i]
		if r.UserID == memberID && r.WorkDate == workDate && r.JamPulangISO == nil {
			return r, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) Insert(_ context.Context, rec *models.Attendance) error {
	s.nextID++
	rec.ID = s.nextID
	s.records = append(s.records, rec)
	return nil
}

func (s *fakeStore) Close(_ context.Context, id uint, jam string, iso time.Time, ekspresi string) error {
	for _, r := range s.records {
		if r.ID == id {
			r.JamPulang = jam
			r.JamPulangISO = &iso
			r.EkspresiPulang = ekspresi
			return nil
		}
	}
	return fmt.Errorf("record %d not found", id)
}

func newTestRecorder(store *fakeStore, now time.Time) *Recorder {
	dir := fakeDirectory{
		"12345": {ID: 1, NIM: "12345", Nama: "Budi Santoso"},
	}
	r := NewRecorder(dir, store, wib)
	r.now = func() time.Time { return now }
	return r
}

func rejectionKind(t *testing.T, err error) Kind {
	t.Helper()
	require.Error(t, err)
	rej, ok := err.(*Rejection)
	require.True(t, ok, "expected *Rejection, got %T: %v", err, err)
	return rej.Kind
}

/* ---------- masuk ---------- */

func TestCheckInOutsideWindow(t *testing.T) {
	for _, h := range []int{0, 3, 5, 16, 17, 20, 23} {
		store := &fakeStore{}
		r := newTestRecorder(store, at(h, 30, 0))
		_, err := r.Record(context.Background(), "12345", ModeMasuk, "senang")
		assert.Equal(t, KindOutsideWindow, rejectionKind(t, err), "hour %d", h)
		assert.Empty(t, store.records)
	}
}

func TestCheckInOnTime(t *testing.T) {
	cases := []time.Time{at(6, 0, 0), at(7, 30, 0), at(8, 0, 0), at(8, 0, 59)}
	for _, now := range cases {
		store := &fakeStore{}
		r := newTestRecorder(store, now)
		res, err := r.Record(context.Background(), "12345", ModeMasuk, "senang")
		require.NoError(t, err, "now=%v", now)
		assert.Equal(t, StatusOnTime, res.Status)
		assert.Contains(t, res.Message, "On time!")
		assert.Contains(t, res.Message, "Budi Santoso")
		assert.Equal(t, ClassGreen, res.StatusClass)
		require.Len(t, store.records, 1)
		assert.Equal(t, "2025-03-10", store.records[0].WorkDate)
		assert.Equal(t, StatusOnTime, store.records[0].Status)
	}
}

func TestCheckInLate(t *testing.T) {
	cases := []struct {
		now   time.Time
		delay string
	}{
		{at(8, 1, 30), "Telat 1 menit"},
		{at(8, 15, 0), "Telat 15 menit"},
		{at(10, 30, 0), "Telat 2 jam 30 menit"},
		{at(15, 59, 59), "Telat 7 jam 59 menit"},
	}
	for _, tc := range cases {
		store := &fakeStore{}
		r := newTestRecorder(store, tc.now)
		res, err := r.Record(context.Background(), "12345", ModeMasuk, "netral")
		require.NoError(t, err, "now=%v", tc.now)
		assert.Equal(t, StatusLate, res.Status)
		assert.Contains(t, res.Message, "Anda telat masuk")
		assert.Contains(t, res.Message, tc.delay)
		assert.Equal(t, ClassYellow, res.StatusClass)
		require.Len(t, store.records, 1)
		assert.Equal(t, StatusLate, store.records[0].Status)
	}
}

func TestCheckInDuplicateOpenRecord(t *testing.T) {
	store := &fakeStore{}
	r := newTestRecorder(store, at(7, 0, 0))
	_, err := r.Record(context.Background(), "12345", ModeMasuk, "senang")
	require.NoError(t, err)

	r = newTestRecorder(store, at(9, 0, 0))
	_, err = r.Record(context.Background(), "12345", ModeMasuk, "senang")
	assert.Equal(t, KindAlreadyCheckedIn, rejectionKind(t, err))
	assert.Contains(t, err.Error(), "Anda sudah presensi masuk pada 10/03/2025 07:00:00")
	assert.Len(t, store.records, 1)
}

func TestCheckInDuplicateClosedRecord(t *testing.T) {
	// Catatan kemarin ditutup pun tetap menolak masuk kedua di hari yang sama.
	out := at(17, 5, 0)
	store := &fakeStore{records: []*models.Attendance{{
		ID:           1,
		UserID:       1,
		WorkDate:     "2025-03-10",
		JamMasuk:     "06:30:00",
		JamMasukISO:  at(6, 30, 0),
		JamPulang:    "17:05:00",
		JamPulangISO: &out,
		Status:       StatusOnTime,
	}}, nextID: 1}

	r := newTestRecorder(store, at(9, 0, 0))
	_, err := r.Record(context.Background(), "12345", ModeMasuk, "senang")
	assert.Equal(t, KindAlreadyCheckedIn, rejectionKind(t, err))
	assert.Len(t, store.records, 1)
}

func TestCheckInNewDayResets(t *testing.T) {
	out := at(17, 30, 0)
	store := &fakeStore{records: []*models.Attendance{{
		ID:           1,
		UserID:       1,
		WorkDate:     "2025-03-10",
		JamMasukISO:  at(7, 0, 0),
		JamPulangISO: &out,
		Status:       StatusOnTime,
	}}, nextID: 1}

	// Hari berikutnya: state kembali ke NoRecord.
	nextDay := time.Date(2025, time.March, 11, 7, 0, 0, 0, wib)
	r := newTestRecorder(store, nextDay)
	res, err := r.Record(context.Background(), "12345", ModeMasuk, "senang")
	require.NoError(t, err)
	assert.Equal(t, StatusOnTime, res.Status)
	assert.Len(t, store.records, 2)
}

/* ---------- pulang ---------- */

func TestCheckOutBeforeWindow(t *testing.T) {
	store := &fakeStore{}
	r := newTestRecorder(store, at(8, 0, 0))
	_, err := r.Record(context.Background(), "12345", ModeMasuk, "senang")
	require.NoError(t, err)

	for _, h := range []int{8, 12, 16} {
		r = newTestRecorder(store, at(h, 59, 0))
		_, err = r.Record(context.Background(), "12345", ModePulang, "lelah")
		assert.Equal(t, KindOutsideWindow, rejectionKind(t, err), "hour %d", h)
	}
	assert.Nil(t, store.records[0].JamPulangISO)
}

func TestCheckOutNoOpenRecord(t *testing.T) {
	store := &fakeStore{}
	r := newTestRecorder(store, at(17, 30, 0))
	_, err := r.Record(context.Background(), "12345", ModePulang, "lelah")
	assert.Equal(t, KindNoOpenCheckIn, rejectionKind(t, err))
	assert.Contains(t, err.Error(), "belum melakukan presensi masuk")
}

func TestCheckOutMinimumHoursNotMet(t *testing.T) {
	store := &fakeStore{records: []*models.Attendance{{
		ID:          1,
		UserID:      1,
		WorkDate:    "2025-03-10",
		JamMasuk:    "10:00:00",
		JamMasukISO: at(10, 0, 0),
		Status:      StatusLate,
	}}, nextID: 1}

	// 17:00 tapi baru 7 jam sejak masuk — tetap ditahan.
	r := newTestRecorder(store, at(17, 0, 0))
	_, err := r.Record(context.Background(), "12345", ModePulang, "lelah")
	assert.Equal(t, KindMinimumHoursNotMet, rejectionKind(t, err))
	assert.Contains(t, err.Error(), "dilarang Kabur")
	assert.Nil(t, store.records[0].JamPulangISO)
}

func TestCheckOutSuccessExactlyOnce(t *testing.T) {
	store := &fakeStore{records: []*models.Attendance{{
		ID:          1,
		UserID:      1,
		WorkDate:    "2025-03-10",
		JamMasuk:    "08:00:00",
		JamMasukISO: at(8, 0, 0),
		Status:      StatusOnTime,
	}}, nextID: 1}

	r := newTestRecorder(store, at(17, 0, 0))
	res, err := r.Record(context.Background(), "12345", ModePulang, "lelah")
	require.NoError(t, err)
	assert.Contains(t, res.Message, "Selamat jalan, Budi Santoso!")
	assert.Equal(t, "17:00:00", res.Jam)

	rec := store.records[0]
	require.NotNil(t, rec.JamPulangISO)
	assert.Equal(t, "17:00:00", rec.JamPulang)
	assert.Equal(t, "lelah", rec.EkspresiPulang)
	assert.Equal(t, StatusOnTime, rec.Status) // status tidak dihitung ulang

	// Percobaan kedua: catatan sudah Closed.
	r = newTestRecorder(store, at(17, 10, 0))
	_, err = r.Record(context.Background(), "12345", ModePulang, "lelah")
	assert.Equal(t, KindNoOpenCheckIn, rejectionKind(t, err))
}

func TestRoundTrip(t *testing.T) {
	store := &fakeStore{}

	r := newTestRecorder(store, at(7, 30, 0))
	res, err := r.Record(context.Background(), "12345", ModeMasuk, "senang")
	require.NoError(t, err)
	assert.Equal(t, StatusOnTime, res.Status)

	r = newTestRecorder(store, at(17, 45, 0))
	_, err = r.Record(context.Background(), "12345", ModePulang, "lelah")
	require.NoError(t, err)

	require.Len(t, store.records, 1)
	rec := store.records[0]
	assert.False(t, rec.JamMasukISO.IsZero())
	require.NotNil(t, rec.JamPulangISO)
	assert.Equal(t, StatusOnTime, rec.Status)
	assert.Equal(t, "senang", rec.EkspresiMasuk)
	assert.Equal(t, "lelah", rec.EkspresiPulang)
}

/* ---------- request errors ---------- */

func TestUnknownMember(t *testing.T) {
	r := newTestRecorder(&fakeStore{}, at(7, 0, 0))
	_, err := r.Record(context.Background(), "99999", ModeMasuk, "senang")
	assert.Equal(t, KindMemberNotFound, rejectionKind(t, err))
	assert.Equal(t, "NIM tidak ditemukan", err.Error())
}

func TestInvalidRequest(t *testing.T) {
	r := newTestRecorder(&fakeStore{}, at(7, 0, 0))

	_, err := r.Record(context.Background(), "", ModeMasuk, "")
	assert.Equal(t, KindInvalidRequest, rejectionKind(t, err))

	_, err = r.Record(context.Background(), "12345", Mode("keluar"), "")
	assert.Equal(t, KindInvalidRequest, rejectionKind(t, err))
}

/* ---------- delay rendering ---------- */

func TestRenderDelay(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{30 * time.Second, "Telat 30 detik"},
		{59 * time.Second, "Telat 59 detik"},
		{60 * time.Second, "Telat 1 menit"},
		{15 * time.Minute, "Telat 15 menit"},
		{59*time.Minute + 59*time.Second, "Telat 59 menit"},
		{time.Hour, "Telat 1 jam 0 menit"},
		{time.Hour + time.Minute, "Telat 1 jam 1 menit"},
		{2*time.Hour + 30*time.Minute, "Telat 2 jam 30 menit"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, renderDelay(tc.d), "d=%v", tc.d)
	}
}
