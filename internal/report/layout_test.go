package report

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// charWidth measures one unit per character, which makes wrap behavior easy
// to reason about in tests.
func charWidth(s string) float64 { return float64(len(s)) }

func TestWrapTextFillsGreedily(t *testing.T) {
	lines := WrapText("one two three four five", 13, charWidth)
	assert.Equal(t, []string{"one two three", "four five"}, lines)
}

func TestWrapTextNeverExceedsWidth(t *testing.T) {
	text := "I actively listen to the experiences of others without being judgmental or defensive"
	lines := WrapText(text, 20, charWidth)
	require.NotEmpty(t, lines)
	for _, ln := range lines {
		// Multi-word lines stay within the width; only a single over-wide
		// word may exceed it.
		if strings.Contains(ln, " ") {
			assert.LessOrEqual(t, charWidth(ln), 20.0, "line %q", ln)
		}
	}
	assert.Equal(t, text, strings.Join(lines, " "), "no words lost")
}

func TestWrapTextDegenerateLongWord(t *testing.T) {
	lines := WrapText("averylongwordthatdoesnotfit another short one", 10, charWidth)
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "averylongwordthatdoesnotfit", lines[0])
}

func TestWrapTextEmpty(t *testing.T) {
	assert.Nil(t, WrapText("", 10, charWidth))
	assert.Nil(t, WrapText("   ", 10, charWidth))
}

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 9, 4))
	for x := 0; x < 9; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 0x37, G: 0x7b, B: 0xff, A: 0xff})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func galleryBlocks(t *testing.T, images int) []Block {
	t.Helper()
	blocks := []Block{
		HeaderBlock{Title: "Assessment Results"},
		ScoreLine{Label: "Equity & Inclusion Self-Assessment", Raw: 30, Max: 120},
		TextBlock{Content: "Interpretation paragraph for the report body."},
		PageBreak{},
	}
	img := testPNG(t)
	for i := 0; i < images; i++ {
		blocks = append(blocks, ImageBlock{PNG: img, Aspect: 9.0 / 4.0})
	}
	return blocks
}

func TestRenderGalleryPagination(t *testing.T) {
	// 7 images at 2 per page with a 3-page budget: 6 placed, 1 dropped.
	pdf, dropped := render(galleryBlocks(t, 7), DefaultLayout())
	assert.Equal(t, 1, dropped)
	// Page 1 (header + scores + text) plus 3 gallery pages.
	assert.Equal(t, 4, pdf.PageCount())
	require.NoError(t, pdf.Error())
}

func TestRenderGalleryUnderBudget(t *testing.T) {
	pdf, dropped := render(galleryBlocks(t, 3), DefaultLayout())
	assert.Equal(t, 0, dropped)
	assert.Equal(t, 3, pdf.PageCount())
}

func TestComposeProducesPDF(t *testing.T) {
	doc, err := Compose(galleryBlocks(t, 2), DefaultLayout())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF-")), "missing PDF header")
}

func TestComposeScoreLinesPageBreak(t *testing.T) {
	// Enough score lines to spill past the bottom margin of an A4 page.
	blocks := []Block{HeaderBlock{Title: "Long report"}}
	for i := 0; i < 60; i++ {
		blocks = append(blocks, ScoreLine{Label: "Category", Raw: 3, Max: 12})
	}
	pdf, dropped := render(blocks, DefaultLayout())
	assert.Equal(t, 0, dropped)
	assert.GreaterOrEqual(t, pdf.PageCount(), 2)
	require.NoError(t, pdf.Error())
}
