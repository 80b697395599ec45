package chart

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"allyship/internal/model"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestCategoryCharts(t *testing.T) {
	sum := &model.ScoreSummary{
		Categories: []model.CategoryTotals{
			{Category: "A", Raw: 6, Max: 24, Percent: 25},
			{Category: "B", Raw: 12, Max: 24, Percent: 50},
		},
		Subsections: []model.SubsectionTotals{
			{Category: "A", Section: "Speak out", Raw: 3, Max: 12, Percent: 25},
			{Category: "A", Section: "Amplify voices", Raw: 3, Max: 12, Percent: 25},
			{Category: "B", Section: "Drive accountability", Raw: 12, Max: 12, Percent: 100},
		},
	}

	images, err := CategoryCharts(sum)
	require.NoError(t, err)
	require.Len(t, images, 2, "one chart per category")

	for _, img := range images {
		assert.True(t, bytes.HasPrefix(img.PNG, pngMagic), "not a PNG")
		assert.InDelta(t, 2.25, img.Aspect, 0.001)
	}
}

func TestCategoryChartsEmptySummary(t *testing.T) {
	images, err := CategoryCharts(&model.ScoreSummary{})
	require.NoError(t, err)
	assert.Empty(t, images)
}
