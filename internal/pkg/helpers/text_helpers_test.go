package helpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeExcerpt(t *testing.T) {
	t.Run("short content unchanged", func(t *testing.T) {
		assert.Equal(t, "hello world", MakeExcerpt("hello world"))
	})

	t.Run("long content truncated with ellipsis", func(t *testing.T) {
		content := strings.Repeat("a", 300)
		excerpt := MakeExcerpt(content)
		assert.Equal(t, strings.Repeat("a", 150)+"...", excerpt)
	})

	t.Run("exactly at the limit unchanged", func(t *testing.T) {
		content := strings.Repeat("b", 150)
		assert.Equal(t, content, MakeExcerpt(content))
	})

	t.Run("multibyte runes counted as characters", func(t *testing.T) {
		content := strings.Repeat("ü", 151)
		excerpt := MakeExcerpt(content)
		assert.Equal(t, strings.Repeat("ü", 150)+"...", excerpt)
	})
}

func TestEstimateReadTime(t *testing.T) {
	t.Run("empty content takes a minute", func(t *testing.T) {
		assert.Equal(t, 1, EstimateReadTime(""))
	})

	t.Run("short content rounds up to a minute", func(t *testing.T) {
		assert.Equal(t, 1, EstimateReadTime("just a few words here"))
	})

	t.Run("two hundred words is one minute", func(t *testing.T) {
		content := strings.TrimSpace(strings.Repeat("word ", 200))
		assert.Equal(t, 1, EstimateReadTime(content))
	})

	t.Run("two hundred and one words is two minutes", func(t *testing.T) {
		content := strings.TrimSpace(strings.Repeat("word ", 201))
		assert.Equal(t, 2, EstimateReadTime(content))
	})

	t.Run("thousand words is five minutes", func(t *testing.T) {
		content := strings.TrimSpace(strings.Repeat("word ", 1000))
		assert.Equal(t, 5, EstimateReadTime(content))
	})
}

func TestNormalizeTags(t *testing.T) {
	t.Run("lowercases and trims", func(t *testing.T) {
		assert.Equal(t, []string{"go", "postgres"}, NormalizeTags([]string{" Go ", "POSTGRES"}))
	})

	t.Run("drops empties and duplicates", func(t *testing.T) {
		assert.Equal(t, []string{"go", "web"}, NormalizeTags([]string{"go", "", "  ", "Go", "web", "GO"}))
	})

	t.Run("preserves first occurrence order", func(t *testing.T) {
		assert.Equal(t, []string{"b", "a", "c"}, NormalizeTags([]string{"b", "a", "B", "c"}))
	})

	t.Run("empty input gives empty slice", func(t *testing.T) {
		assert.Empty(t, NormalizeTags(nil))
	})
}

func TestSplitTagsParam(t *testing.T) {
	t.Run("splits on commas", func(t *testing.T) {
		assert.Equal(t, []string{"go", "gin", "pgx"}, SplitTagsParam("go, Gin ,pgx"))
	})

	t.Run("empty param gives nil", func(t *testing.T) {
		assert.Nil(t, SplitTagsParam(""))
	})
}
