package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Ranayh14/Absen/attendance"
	"github.com/Ranayh14/Absen/database"
	"github.com/Ranayh14/Absen/metrics"
	"github.com/Ranayh14/Absen/models"
)

type AttendanceHandler struct {
	loc *time.Location
	col *metrics.Collector
}

func NewAttendanceHandler(loc *time.Location, col *metrics.Collector) *AttendanceHandler {
	return &AttendanceHandler{loc: loc, col: col}
}

// POST /attendance — endpoint presensi (dipanggil setelah wajah cocok di browser).
// Seluruh urutan cek-duplikat → insert/update jalan dalam satu transaksi.
func (h *AttendanceHandler) Record(c echo.Context) error {
	var req struct {
		NIM      string `json:"nim"`
		Mode     string `json:"mode"` // masuk/pulang
		Ekspresi string `json:"ekspresi"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"ok": false, "message": "Bad request"})
	}

	var res *attendance.Result
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		rec := attendance.NewRecorder(
			attendance.NewGormDirectory(tx),
			attendance.NewGormStore(tx),
			h.loc,
		)
		r, err := rec.Record(c.Request().Context(), req.NIM, attendance.Mode(req.Mode), req.Ekspresi)
		if err != nil {
			return err
		}
		res = r
		return nil
	})
	if err != nil {
		var rej *attendance.Rejection
		if errors.As(err, &rej) {
			h.col.RecordRejection(req.Mode, string(rej.Kind))
			return c.JSON(rejectionStatus(rej.Kind), map[string]any{
				"ok":          false,
				"message":     rej.Message,
				"error":       string(rej.Kind),
				"statusClass": rej.StatusClass,
			})
		}
		c.Logger().Errorf("record attendance: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{
			"ok": false, "message": "Terjadi kesalahan server", "error": "INTERNAL",
		})
	}

	h.col.RecordSuccess(req.Mode, res.Status)
	return c.JSON(http.StatusOK, map[string]any{
		"ok":          true,
		"message":     res.Message,
		"nama":        res.Nama,
		"jam":         res.Jam,
		"statusClass": res.StatusClass,
	})
}

func rejectionStatus(k attendance.Kind) int {
	if k == attendance.KindMemberNotFound {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

// baris laporan = attendance + identitas pegawai
type attendanceRow struct {
	models.Attendance
	NIM  string `json:"nim"`
	Nama string `json:"nama"`
}

// GET /attendance?start=YYYY-MM-DD&end=YYYY-MM-DD&statuses=ontime,terlambat
// Admin melihat semua; pegawai hanya miliknya sendiri.
func (h *AttendanceHandler) List(c echo.Context) error {
	start := strings.TrimSpace(c.QueryParam("start"))
	end := strings.TrimSpace(c.QueryParam("end"))
	statuses := strings.TrimSpace(c.QueryParam("statuses"))

	tx := database.DB.Table("attendances AS a").
		Select("a.*, u.nim, u.nama").
		Joins("JOIN users u ON u.id = a.user_id")

	role, _ := c.Get("role").(string)
	if role != "admin" {
		uid, _ := c.Get("user_id").(uint)
		tx = tx.Where("a.user_id = ?", uid)
	}
	if start != "" && end != "" {
		tx = tx.Where("a.work_date >= ? AND a.work_date <= ?", start, end)
	}
	if statuses != "" {
		if parts := splitCSV(statuses); len(parts) > 0 {
			tx = tx.Where("a.status IN ?", parts)
		}
	}

	var rows []attendanceRow
	if err := tx.Order("a.jam_masuk_iso DESC").Scan(&rows).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"ok": false, "error": err.Error()})
	}
	if rows == nil {
		rows = []attendanceRow{}
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true, "data": rows})
}

// GET /admin/attendance/recap?date=YYYY-MM-DD
// Rekap harian: setiap pegawai plus status hari itu ("" = belum hadir).
func (h *AttendanceHandler) Recap(c echo.Context) error {
	date := strings.TrimSpace(c.QueryParam("date"))
	if date == "" {
		date = time.Now().In(h.loc).Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"ok": false, "error": "INVALID_DATE"})
	}

	type row struct {
		UserID    uint   `json:"user_id"`
		NIM       string `json:"nim"`
		Nama      string `json:"nama"`
		Status    string `json:"status"`
		JamMasuk  string `json:"jam_masuk"`
		JamPulang string `json:"jam_pulang"`
	}
	var rows []row
	err := database.DB.Table("users AS u").
		Select("u.id AS user_id, u.nim, u.nama, COALESCE(a.status,'') AS status, COALESCE(a.jam_masuk,'') AS jam_masuk, COALESCE(a.jam_pulang,'') AS jam_pulang").
		Joins("LEFT JOIN attendances a ON a.user_id = u.id AND a.work_date = ?", date).
		Where("u.role = ?", "pegawai").
		Order("u.nama ASC").
		Scan(&rows).Error
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"ok": false, "error": err.Error()})
	}

	summary := map[string]int{"hadir": 0, "ontime": 0, "terlambat": 0, "belum": 0}
	for _, r := range rows {
		switch r.Status {
		case attendance.StatusOnTime:
			summary["hadir"]++
			summary["ontime"]++
		case attendance.StatusLate:
			summary["hadir"]++
			summary["terlambat"]++
		default:
			summary["belum"]++
		}
	}
	return c.JSON(http.StatusOK, map[string]any{
		"ok": true, "date": date, "summary": summary, "rows": rows,
	})
}

// DELETE /admin/attendance/:id — koreksi administratif
func (h *AttendanceHandler) Delete(c echo.Context) error {
	id := atoiOr(c.Param("id"), 0)
	if id <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"ok": false, "error": "INVALID_ID"})
	}
	if err := database.DB.Delete(&models.Attendance{}, id).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"ok": false, "error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}
