package handlers

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Ranayh14/Absen/avatar"
	"github.com/Ranayh14/Absen/database"
	"github.com/Ranayh14/Absen/models"
)

type AvatarHandler struct{}

func NewAvatarHandler() *AvatarHandler { return &AvatarHandler{} }

const imageCacheControl = "public, max-age=31536000" // 1 tahun

// GET /avatar?name=Budi%20Santoso&background=6366f1&color=fff&size=64
func (h *AvatarHandler) Avatar(c echo.Context) error {
	svg := avatar.SVG(avatar.Options{
		Name:       c.QueryParam("name"),
		Background: strings.TrimPrefix(c.QueryParam("background"), "#"),
		Color:      strings.TrimPrefix(c.QueryParam("color"), "#"),
		Size:       atoiOr(c.QueryParam("size"), 64),
	})
	c.Response().Header().Set("Cache-Control", imageCacheControl)
	return c.Blob(http.StatusOK, "image/svg+xml", []byte(svg))
}

// GET /icon?size=192 — ikon launcher untuk manifest PWA
func (h *AvatarHandler) Icon(c echo.Context) error {
	size := atoiOr(c.QueryParam("size"), 192)
	var buf bytes.Buffer
	if err := avatar.EncodeIconPNG(&buf, size); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"ok": false, "error": "ICON_ENCODE_FAILED"})
	}
	c.Response().Header().Set("Cache-Control", imageCacheControl)
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}

// GET /members/:id/photo?size=96 — thumbnail foto pegawai; fallback ke
// avatar inisial kalau foto belum ada atau rusak.
func (h *AvatarHandler) MemberPhoto(c echo.Context) error {
	id := atoiOr(c.Param("id"), 0)
	if id <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"ok": false, "error": "INVALID_ID"})
	}
	size := atoiOr(c.QueryParam("size"), 96)

	var u models.User
	if err := database.DB.Where("id = ? AND role = ?", id, "pegawai").First(&u).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"ok": false, "message": "Member tidak ditemukan"})
	}

	if u.FotoBase64 != "" {
		if img, err := avatar.DecodeDataURL(u.FotoBase64); err == nil {
			var buf bytes.Buffer
			if err := avatar.EncodeThumbnailPNG(&buf, img, size); err == nil {
				return c.Blob(http.StatusOK, "image/png", buf.Bytes())
			}
		}
		c.Logger().Warnf("member %d: stored photo unreadable, serving initials", u.ID)
	}

	svg := avatar.SVG(avatar.Options{Name: u.Nama, Size: size})
	return c.Blob(http.StatusOK, "image/svg+xml", []byte(svg))
}
