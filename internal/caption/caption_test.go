package caption

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

// basicfont.Face7x13 advances exactly 7px per glyph and every line's ink box
// is 13px tall, which keeps the expected geometry easy to derive by hand.
var face = basicfont.Face7x13

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth int
		want     []string
	}{
		{"empty", "", 100, nil},
		{"whitespace only", " \t\n ", 100, nil},
		{"fits on one line", "hello world", 100, []string{"hello world"}},
		// "hello world" is 11 glyphs, 77px.
		{"exact width fits", "hello world", 77, []string{"hello world"}},
		{"one pixel short breaks", "hello world", 76, []string{"hello", "world"}},
		{"collapses runs of whitespace", "a   b\tc", 100, []string{"a b c"}},
		{"overlong word alone", "hi supercalifragilistic yo", 35, []string{"hi", "supercalifragilistic", "yo"}},
		{"overlong first word", "supercalifragilistic yo", 35, []string{"supercalifragilistic", "yo"}},
		{"greedy packing", "aa bb cc dd ee", 35, []string{"aa bb", "cc dd", "ee"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(face, tt.text, tt.maxWidth))
		})
	}
}

func TestWrapPreservesWords(t *testing.T) {
	texts := []string{
		"the quick brown fox jumps over the lazy dog",
		"  leading and trailing   spaces  ",
		"a b c d e f g h i j k l m n o p",
		"one",
	}
	for _, text := range texts {
		words := strings.Fields(text)
		widest := 0
		for _, w := range words {
			if n := len(w) * 7; n > widest {
				widest = n
			}
		}
		for width := widest; width <= widest+200; width += 13 {
			lines := Wrap(face, text, width)
			assert.Equal(t, strings.Join(words, " "), strings.Join(lines, " "), "width=%d", width)
			for _, line := range lines {
				assert.LessOrEqual(t, len(line)*7, width, "line %q exceeds width %d", line, width)
			}
		}
	}
}

func TestWrapDeterministic(t *testing.T) {
	text := "identical input always produces the identical sequence of lines"
	first := Wrap(face, text, 120)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Wrap(face, text, 120))
	}
}

func TestRenderEmptyIsTransparent(t *testing.T) {
	r := NewRenderer(face, color.White)
	img := r.Render("", 640, 480)

	require.Equal(t, 640, img.Bounds().Dx())
	require.Equal(t, 480, img.Bounds().Dy())
	for _, v := range img.Pix {
		if v != 0 {
			t.Fatal("empty caption produced non-transparent pixels")
		}
	}
}

func TestRenderStaysInsideMargins(t *testing.T) {
	r := NewRenderer(face, color.White)
	text := "this caption is long enough that it has to wrap onto more than one line " +
		"when the frame is only six hundred and forty pixels wide, which is the point of the test"
	img := r.Render(text, 640, 480)

	lines := Wrap(face, text, 640-HorizontalMargin)
	require.Greater(t, len(lines), 1)

	minX, maxX, minY, maxY := 640, -1, 480, -1
	for y := 0; y < 480; y++ {
		for x := 0; x < 640; x++ {
			if img.RGBAAt(x, y).A == 0 {
				continue
			}
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}

	require.GreaterOrEqual(t, maxX, 0, "nothing was drawn")
	assert.GreaterOrEqual(t, minX, 20)
	assert.LessOrEqual(t, maxX, 620)

	blockTop := 480 - 13*len(lines) - BottomMargin
	assert.GreaterOrEqual(t, minY, blockTop)
	lastBottom := blockTop + len(lines)*13 + (len(lines)-1)*LineSpacing
	assert.Less(t, maxY, lastBottom)
	assert.Less(t, maxY, 480)
}

func TestRenderCentersEachLine(t *testing.T) {
	r := NewRenderer(face, color.White)
	// Two lines of different widths at a 100px frame (60px budget).
	img := r.Render("aaaaaaa bb", 100, 100)

	rowExtent := func(top, bottom int) (int, int) {
		lo, hi := 100, -1
		for y := top; y < bottom; y++ {
			for x := 0; x < 100; x++ {
				if img.RGBAAt(x, y).A != 0 {
					lo, hi = min(lo, x), max(hi, x)
				}
			}
		}
		return lo, hi
	}

	// Block height 26, top at 100-26-30 = 44; second line starts at 44+13+5.
	lo1, hi1 := rowExtent(44, 57)
	lo2, hi2 := rowExtent(62, 75)

	// "aaaaaaa" is 49px starting at (100-49)/2 = 25; "bb" is 14px at 43.
	assert.GreaterOrEqual(t, lo1, 25)
	assert.Less(t, hi1, 25+49)
	assert.GreaterOrEqual(t, lo2, 43)
	assert.Less(t, hi2, 43+14)
}

func TestRenderUsesFillColor(t *testing.T) {
	fill := color.RGBA{R: 255, G: 0, B: 0, A: 255}
	img := NewRenderer(face, fill).Render("X", 200, 100)

	found := false
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i+3] == 255 {
			assert.Equal(t, []uint8{255, 0, 0, 255}, img.Pix[i:i+4])
			found = true
		}
	}
	assert.True(t, found)
}

func TestResolveFaceFallsBack(t *testing.T) {
	got, fallback := ResolveFace("DefinitelyNotInstalled", 48, []string{t.TempDir()})
	assert.True(t, fallback)
	assert.Equal(t, basicfont.Face7x13, got)

	// A file that exists but is not a font also degrades.
	bogus := filepath.Join(t.TempDir(), "Broken.ttf")
	require.NoError(t, os.WriteFile(bogus, []byte("not a font"), 0o644))
	_, fallback = ResolveFace(bogus, 48, nil)
	assert.True(t, fallback)

	_, fallback = ResolveFace("", 48, nil)
	assert.True(t, fallback)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.Color
		wantErr bool
	}{
		{in: "white", want: color.RGBA{255, 255, 255, 255}},
		{in: "Yellow", want: color.RGBA{255, 255, 0, 255}},
		{in: "#ff8000", want: color.NRGBA{255, 128, 0, 255}},
		{in: "#ff800080", want: color.NRGBA{255, 128, 0, 128}},
		{in: "#fff", wantErr: true},
		{in: "not-a-color", wantErr: true},
		{in: "#zzzzzz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
