package avatar

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// DecodeDataURL membaca foto anggota yang disimpan sebagai data URL base64
// ("data:image/jpeg;base64,....") dari kamera pendaftaran.
func DecodeDataURL(s string) (image.Image, error) {
	idx := strings.Index(s, "base64,")
	if idx < 0 {
		return nil, fmt.Errorf("bukan data URL base64")
	}
	raw, err := base64.StdEncoding.DecodeString(s[idx+len("base64,"):])
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// Thumbnail memotong foto jadi persegi dan me-resize untuk tampilan daftar.
func Thumbnail(img image.Image, size int) image.Image {
	if size <= 0 {
		size = 96
	}
	return imaging.Fill(img, size, size, imaging.Center, imaging.Lanczos)
}

// EncodeThumbnailPNG menulis thumbnail persegi sebagai PNG.
func EncodeThumbnailPNG(w io.Writer, img image.Image, size int) error {
	return imaging.Encode(w, Thumbnail(img, size), imaging.PNG)
}
