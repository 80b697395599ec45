// Package report composes the downloadable results document. Content is
// described as a flat list of blocks; the layout engine consumes the list
// sequentially and decides where on the page each block lands.
package report

import (
	"fmt"

	"allyship/internal/model"
)

// Block is one renderable unit of the results document.
type Block interface {
	isBlock()
}

// HeaderBlock is the logo plus title at the top of the document. Logo may be
// nil when the asset is missing; the title still renders.
type HeaderBlock struct {
	Logo       []byte
	LogoAspect float64 // width / height
	Title      string
}

// ScoreLine is one "{label}: {raw} out of {max} ({percent}%)" line.
type ScoreLine struct {
	Label string
	Raw   int
	Max   int
}

// TextBlock is a word-wrapped paragraph.
type TextBlock struct {
	Content  string
	Emphasis bool
}

// ImageBlock is a pre-rendered chart placed in the gallery pages.
type ImageBlock struct {
	PNG    []byte
	Aspect float64 // width / height
}

// PageBreak forces a fresh page.
type PageBreak struct{}

func (HeaderBlock) isBlock() {}
func (ScoreLine) isBlock()   {}
func (TextBlock) isBlock()   {}
func (ImageBlock) isBlock()  {}
func (PageBreak) isBlock()   {}

// ScoreLineText is the rendered form of a score line.
func ScoreLineText(label string, raw, max, percent int) string {
	return fmt.Sprintf("%s: %d out of %d (%d%%)", label, raw, max, percent)
}

// BuildBlocks assembles the results document: header, one score line per
// category, the interpretation matching the total score, then the chart
// gallery on fresh pages.
func BuildBlocks(title string, logo []byte, logoAspect float64, sum *model.ScoreSummary, tiers []Tier, charts []ImageBlock) []Block {
	blocks := []Block{
		HeaderBlock{Logo: logo, LogoAspect: logoAspect, Title: title},
	}

	for _, c := range sum.Categories {
		blocks = append(blocks, ScoreLine{Label: c.Category, Raw: c.Raw, Max: c.Max})
	}

	tier := SelectTier(tiers, sum.Total)
	blocks = append(blocks,
		TextBlock{Content: tier.Label, Emphasis: true},
		TextBlock{Content: tier.Text},
	)

	if len(charts) > 0 {
		blocks = append(blocks, PageBreak{})
		for _, img := range charts {
			blocks = append(blocks, img)
		}
	}

	return blocks
}
