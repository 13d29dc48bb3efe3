package handlers

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Ranayh14/Absen/database"
	"github.com/Ranayh14/Absen/models"
)

type MemberHandler struct{}

func NewMemberHandler() *MemberHandler { return &MemberHandler{} }

// ===== Validation rules (sesuai form pendaftaran) =====
var (
	memReNIM  = regexp.MustCompile(`^[A-Za-z0-9\-]{1,100}$`)
	memReNama = regexp.MustCompile(`^[A-Za-z\s\.\'\-]{1,255}$`)
)

type memberPayload struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	NIM      string `json:"nim"`
	Nama     string `json:"nama"`
	Prodi    string `json:"prodi"`
	Startup  string `json:"startup"`
	Foto     string `json:"foto"` // data URL; kosong = jangan ganti
	Password string `json:"password"`
}

func (p *memberPayload) normalize() {
	p.Email = strings.TrimSpace(strings.ToLower(p.Email))
	p.NIM = strings.TrimSpace(p.NIM)
	p.Nama = strings.Join(strings.Fields(p.Nama), " ")
	p.Prodi = strings.TrimSpace(p.Prodi)
	p.Startup = strings.TrimSpace(p.Startup)
}

// GET /members — daftar pegawai dengan foto untuk face matching di browser.
// Field sensitif (hash password) tidak pernah ikut ter-serialize.
func (h *MemberHandler) List(c echo.Context) error {
	var rows []models.User
	if err := database.DB.
		Where("role = ?", "pegawai").
		Order("nama ASC").
		Find(&rows).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"ok": false, "error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true, "data": rows})
}

// POST /admin/members — create (tanpa id) atau update (dengan id)
func (h *MemberHandler) Save(c echo.Context) error {
	var p memberPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"ok": false, "error": "INVALID_PAYLOAD"})
	}
	p.normalize()

	if p.ID != 0 {
		return h.update(c, &p)
	}
	return h.create(c, &p)
}

func (h *MemberHandler) update(c echo.Context, p *memberPayload) error {
	var u models.User
	if err := database.DB.Where("id = ? AND role = ?", p.ID, "pegawai").First(&u).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"ok": false, "message": "Member tidak ditemukan"})
	}

	updates := map[string]any{
		"nama":    p.Nama,
		"prodi":   p.Prodi,
		"startup": p.Startup,
	}
	if p.Foto != "" {
		updates["foto_base64"] = p.Foto
	}
	if err := database.DB.Model(&u).Updates(updates).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"ok": false, "error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}

func (h *MemberHandler) create(c echo.Context, p *memberPayload) error {
	if p.NIM == "" || p.Nama == "" || p.Prodi == "" || p.Foto == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"ok": false, "message": "Field wajib belum lengkap"})
	}
	if p.Email == "" || p.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"ok": false, "message": "Email dan password wajib untuk member baru"})
	}
	if !memReNIM.MatchString(p.NIM) {
		return c.JSON(http.StatusBadRequest, map[string]any{"ok": false, "message": "NIM tidak valid"})
	}
	if !memReNama.MatchString(p.Nama) {
		return c.JSON(http.StatusBadRequest, map[string]any{"ok": false, "message": "Nama tidak valid"})
	}

	var dup models.User
	if err := database.DB.Where("email = ? OR nim = ?", p.Email, p.NIM).First(&dup).Error; err == nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"ok": false, "message": "Email atau NIM sudah terdaftar"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"ok": false, "error": "HASH_FAILED"})
	}
	rec := models.User{
		Role:         "pegawai",
		Email:        p.Email,
		NIM:          &p.NIM,
		Nama:         p.Nama,
		Prodi:        p.Prodi,
		Startup:      p.Startup,
		FotoBase64:   p.Foto,
		PasswordHash: string(hash),
	}
	if err := database.DB.Create(&rec).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"ok": false, "error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"ok": true, "id": rec.ID})
}

// DELETE /admin/members/:id — catatan presensi lama ikut terhapus via FK di
// level aplikasi: kita hapus eksplisit supaya tidak ada baris yatim.
func (h *MemberHandler) Delete(c echo.Context) error {
	id := atoiOr(c.Param("id"), 0)
	if id <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"ok": false, "error": "INVALID_ID"})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.Attendance{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ? AND role = ?", id, "pegawai").Delete(&models.User{}).Error
	})
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"ok": false, "error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}
