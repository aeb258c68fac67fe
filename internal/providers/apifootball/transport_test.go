package apifootball

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBaseURL(t *testing.T) {
	assert.Equal(t, defaultBaseURL, normalizeBaseURL(""))
	assert.Equal(t, "https://example.test", normalizeBaseURL("https://example.test/"))
}

func TestResolveHelpers(t *testing.T) {
	assert.Equal(t, defaultMaxPages, resolveMaxPages(0))
	assert.Equal(t, 7, resolveMaxPages(7))

	custom := &http.Client{}
	assert.Same(t, custom, resolveHTTPClient(custom))

	c, ok := resolveHTTPClient(nil).(*http.Client)
	require.True(t, ok)
	assert.Equal(t, defaultHTTPTimeout, c.Timeout)
}

func TestParseRetryAfter(t *testing.T) {
	now := time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		raw  string
		want time.Duration
	}{
		{"", 0},
		{"12", 12 * time.Second},
		{"-3", 0},
		{"soon", 0},
		{now.Add(30 * time.Second).Format(http.TimeFormat), 30 * time.Second},
		{now.Add(-time.Minute).Format(http.TimeFormat), 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseRetryAfter(tt.raw, now), "parseRetryAfter(%q)", tt.raw)
	}
}
