// Package avatar menghasilkan gambar pendukung UI: avatar inisial SVG,
// ikon PWA, dan thumbnail foto anggota.
package avatar

import (
	"fmt"
	"html"
	"strings"
)

// Options untuk avatar inisial. Warna tanpa '#', mengikuti query string FE.
type Options struct {
	Name       string
	Background string
	Color      string
	Size       int
}

func (o *Options) defaults() {
	if strings.TrimSpace(o.Name) == "" {
		o.Name = "A"
	}
	if o.Background == "" {
		o.Background = "6366f1"
	}
	if o.Color == "" {
		o.Color = "fff"
	}
	if o.Size <= 0 {
		o.Size = 64
	}
}

// Initials mengambil maksimal dua huruf awal kata dari nama.
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r := []rune(word)[0]
		b.WriteString(strings.ToUpper(string(r)))
		if b.Len() >= 2 {
			break
		}
	}
	if b.Len() == 0 {
		return "A"
	}
	initials := []rune(b.String())
	if len(initials) > 2 {
		initials = initials[:2]
	}
	return string(initials)
}

// SVG merender avatar inisial bulat.
func SVG(o Options) string {
	o.defaults()
	size := o.Size
	initials := html.EscapeString(Initials(o.Name))
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg width="%d" height="%d" viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg">
    <rect width="%d" height="%d" fill="#%s" rx="%d"/>
    <text x="50%%" y="50%%" font-family="Inter, -apple-system, BlinkMacSystemFont, sans-serif" font-size="%d" font-weight="600" fill="#%s" text-anchor="middle" dominant-baseline="central">%s</text>
</svg>`,
		size, size, size, size,
		size, size, o.Background, size/2,
		size*2/5, o.Color, initials)
}
