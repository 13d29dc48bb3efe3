package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/Ranayh14/Absen/database"
	"github.com/Ranayh14/Absen/models"
)

/* ====================== Config & Helpers ====================== */

type AuthHandler struct {
	JWTSecret string
}

func NewAuthHandler(secret string) *AuthHandler {
	return &AuthHandler{JWTSecret: secret}
}

func (h *AuthHandler) signJWT(sub uint, role, nama string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"nama": nama,
		"jti":  uuid.NewString(),
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	}
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tk.SignedString([]byte(h.JWTSecret))
}

/* ====================== DTOs ====================== */

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterReq struct {
	Email     string `json:"email"`
	NIM       string `json:"nim"`
	Nama      string `json:"nama"`
	Prodi     string `json:"prodi"`
	Startup   string `json:"startup"`
	Foto      string `json:"foto"` // data URL dari kamera pendaftaran
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

/* ====================== Handlers ====================== */

// POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"ok": false, "error": "INVALID_PAYLOAD"})
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"ok": false, "error": "MISSING_FIELDS"})
	}

	var u models.User
	if err := database.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"ok": false, "message": "Email atau password salah"})
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"ok": false, "message": "Email atau password salah"})
	}

	token, err := h.signJWT(u.ID, u.Role, u.Nama, 7*24*time.Hour)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"ok": false, "error": "TOKEN_GEN_FAILED"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"ok":    true,
		"role":  u.Role,
		"token": token,
		"user": map[string]any{
			"id": u.ID, "role": u.Role, "email": u.Email, "nim": u.NIM, "nama": u.Nama,
		},
	})
}

// POST /auth/register — pendaftaran mandiri pegawai (wajib bawa foto wajah)
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"ok": false, "error": "INVALID_PAYLOAD"})
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	nim := strings.TrimSpace(req.NIM)
	nama := strings.TrimSpace(req.Nama)
	prodi := strings.TrimSpace(req.Prodi)
	startup := strings.TrimSpace(req.Startup)

	if req.Password != req.Password2 {
		return c.JSON(http.StatusBadRequest, map[string]any{"ok": false, "message": "Konfirmasi password tidak cocok"})
	}
	if email == "" || nim == "" || nama == "" || prodi == "" || req.Password == "" || req.Foto == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"ok": false, "message": "Semua field wajib diisi (termasuk foto)"})
	}

	var dup models.User
	if err := database.DB.Where("email = ? OR nim = ?", email, nim).First(&dup).Error; err == nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"ok": false, "message": "Email atau NIM sudah terdaftar"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"ok": false, "error": "HASH_FAILED"})
	}
	rec := models.User{
		Role:         "pegawai",
		Email:        email,
		NIM:          &nim,
		Nama:         nama,
		Prodi:        prodi,
		Startup:      startup,
		FotoBase64:   req.Foto,
		PasswordHash: string(hash),
	}
	if err := database.DB.Create(&rec).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"ok": false, "error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"ok": true, "id": rec.ID})
}
