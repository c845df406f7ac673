package collector

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestCleanSummaryStripsTagsAndTruncates(t *testing.T) {
	in := `<a href="https://example.com">Model X ships a new tool. It also does other things. Read more.</a>`
	assert.Equal(t, "Model X ships a new tool.", CleanSummary(in))
}

func TestCleanSummarySingleSentence(t *testing.T) {
	assert.Equal(t, "No trailing period here.", CleanSummary("No trailing period here"))
}

func TestCleanSummaryEmpty(t *testing.T) {
	assert.Equal(t, "", CleanSummary(""))
	assert.Equal(t, "", CleanSummary("<b></b>"))
}
