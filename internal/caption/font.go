package caption

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

var fontExtensions = []string{".ttf", ".otf", ".TTF", ".OTF"}

// ResolveFace loads the named TrueType/OpenType font at size pixels. name may
// be a file path or a font file stem looked up in dirs. When nothing usable
// is found the fixed 7x13 bitmap face is returned with fallback set and size
// is ignored; the caller decides how loudly to report that.
func ResolveFace(name string, size float64, dirs []string) (face font.Face, fallback bool) {
	for _, path := range fontCandidates(name, dirs) {
		f, err := loadFace(path, size)
		if err == nil {
			return f, false
		}
	}
	return basicfont.Face7x13, true
}

func fontCandidates(name string, dirs []string) []string {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	var out []string
	if filepath.Ext(name) != "" {
		out = append(out, name)
	}
	stems := []string{name, strings.ToLower(name)}
	for _, dir := range dirs {
		for _, stem := range stems {
			for _, ext := range fontExtensions {
				out = append(out, filepath.Join(dir, stem+ext))
			}
		}
	}
	return out
}

func loadFace(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// ParseColor accepts #RRGGBB, #RRGGBBAA or an SVG color name such as "white".
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return nil, fmt.Errorf("unknown color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("unknown color %q", s)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	// Straight alpha in the config; color.NRGBA keeps it that way.
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
