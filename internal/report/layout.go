package report

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"allyship/internal/scoring"
)

// Layout holds the page geometry and gallery budget. Units are millimetres
// on A4 portrait.
type Layout struct {
	Margin         float64
	LineHeight     float64
	BodySize       float64
	TitleSize      float64
	LogoWidth      float64
	ImageWidthFrac float64 // chart width as a fraction of the content width
	ImagesPerPage  int
	GalleryPages   int // images beyond this page budget are dropped
}

// DefaultLayout mirrors the original report: 200px logo, two charts per
// page, three gallery pages.
func DefaultLayout() Layout {
	return Layout{
		Margin:         15,
		LineHeight:     6,
		BodySize:       11,
		TitleSize:      16,
		LogoWidth:      40,
		ImageWidthFrac: 0.85,
		ImagesPerPage:  2,
		GalleryPages:   3,
	}
}

// Compose renders the block list to finalized PDF bytes. The buffer is fully
// written before returning; any drawing error surfaces from Output.
func Compose(blocks []Block, lay Layout) ([]byte, error) {
	pdf, dropped := render(blocks, lay)
	if dropped > 0 {
		log.Printf("report: gallery page budget reached, dropped %d chart image(s)", dropped)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("finalize report: %w", err)
	}
	return buf.Bytes(), nil
}

func render(blocks []Block, lay Layout) (pdf *gofpdf.Fpdf, dropped int) {
	pdf = gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	content := pageW - 2*lay.Margin
	y := lay.Margin

	newPage := func() {
		pdf.AddPage()
		y = lay.Margin
	}
	// Break to a new page before drawing anything that would cross the
	// bottom margin.
	ensure := func(h float64) {
		if y+h > pageH-lay.Margin {
			newPage()
		}
	}

	imgSeq := 0
	placeImage := func(png []byte, x, y, w, h float64) {
		imgSeq++
		name := fmt.Sprintf("img%d", imgSeq)
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
		pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
	}

	imagesOnPage := 0
	galleryPage := 0

	for _, b := range blocks {
		switch blk := b.(type) {
		case HeaderBlock:
			if len(blk.Logo) > 0 {
				h := lay.LogoWidth
				if blk.LogoAspect > 0 {
					h = lay.LogoWidth / blk.LogoAspect
				}
				placeImage(blk.Logo, lay.Margin, y, lay.LogoWidth, h)
				y += h + 4
			}
			pdf.SetFont("Helvetica", "B", lay.TitleSize)
			pdf.SetXY(lay.Margin, y)
			pdf.CellFormat(content, lay.LineHeight+2, tr(blk.Title), "", 0, "L", false, 0, "")
			y += lay.LineHeight + 8

		case ScoreLine:
			pdf.SetFont("Helvetica", "", lay.BodySize)
			ensure(lay.LineHeight)
			line := ScoreLineText(blk.Label, blk.Raw, blk.Max, scoring.Percent(blk.Raw, blk.Max))
			pdf.SetXY(lay.Margin, y)
			pdf.CellFormat(content, lay.LineHeight, tr(line), "", 0, "L", false, 0, "")
			y += lay.LineHeight

		case TextBlock:
			style := ""
			if blk.Emphasis {
				style = "B"
			}
			pdf.SetFont("Helvetica", style, lay.BodySize)
			y += 3
			measure := func(s string) float64 { return pdf.GetStringWidth(tr(s)) }
			for _, ln := range WrapText(blk.Content, content, measure) {
				ensure(lay.LineHeight)
				pdf.SetXY(lay.Margin, y)
				pdf.CellFormat(content, lay.LineHeight, tr(ln), "", 0, "L", false, 0, "")
				y += lay.LineHeight
			}

		case PageBreak:
			newPage()
			imagesOnPage = 0

		case ImageBlock:
			if galleryPage == 0 {
				galleryPage = 1
			}
			if imagesOnPage >= lay.ImagesPerPage {
				if galleryPage >= lay.GalleryPages {
					dropped++
					continue
				}
				newPage()
				imagesOnPage = 0
				galleryPage++
			}
			w := content * lay.ImageWidthFrac
			aspect := blk.Aspect
			if aspect <= 0 {
				aspect = 1
			}
			h := w / aspect
			placeImage(blk.PNG, lay.Margin, y, w, h)
			y += h + 6
			imagesOnPage++
		}
	}

	return pdf, dropped
}

// WrapText greedily fills lines with whitespace-separated words so that no
// rendered line exceeds width. A single word wider than the line is placed
// alone on its own line instead of looping.
func WrapText(text string, width float64, measure func(string) float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	cur := words[0]
	for _, w := range words[1:] {
		if measure(cur+" "+w) <= width {
			cur += " " + w
			continue
		}
		lines = append(lines, cur)
		cur = w
	}
	return append(lines, cur)
}
