package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayNameFor(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"bare script", "a.py", "a"},
		{"nested path", "/opt/scrapers/kbizoom_scraper.py", "kbizoom_scraper"},
		{"relative path", "./soomi_scraper.py", "soomi_scraper"},
		{"no extension", "/usr/local/bin/watermark", "watermark"},
		{"spaces become underscores", "/jobs/k news scraper.py", "k_news_scraper"},
		{"special characters removed", "jobs/the[pick]tool.py", "thepicktool"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DisplayNameFor(tt.path))
		})
	}
}

func TestNewJobs_PreservesDeclarationOrder(t *testing.T) {
	jobs := NewJobs([]string{"c.py", "a.py", "b.py"})

	require.Len(t, jobs, 3)
	assert.Equal(t, "c", jobs[0].DisplayName)
	assert.Equal(t, "a", jobs[1].DisplayName)
	assert.Equal(t, "b", jobs[2].DisplayName)
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input    string
		expected Mode
	}{
		{"sequential", ModeSequential},
		{"Sequential", ModeSequential},
		{" concurrent ", ModeConcurrent},
		{"CONCURRENT", ModeConcurrent},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mode, err := ParseMode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, mode)
		})
	}
}

func TestParseMode_Invalid(t *testing.T) {
	_, err := ParseMode("parallel")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid mode")
}
