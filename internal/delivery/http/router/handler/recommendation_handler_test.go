package handler

import (
	"log/slog"
	"os"
	"testing"

	"lelekart/config"

	"github.com/stretchr/testify/assert"
)

func newTestRecommendationHandler(cfg *config.Config) *RecommendationHandler {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	return NewRecommendationHandler(nil, cfg, logger)
}

func TestRecommendationHandler_ParseLimit(t *testing.T) {
	h := newTestRecommendationHandler(&config.Config{})

	tests := []struct {
		name      string
		raw       string
		fallback  int
		wantLimit int
		wantOK    bool
	}{
		{"absent uses fallback", "", 10, 10, true},
		{"explicit zero is valid", "0", 10, 0, true},
		{"plain value", "7", 10, 7, true},
		{"negative rejected", "-1", 10, 0, false},
		{"garbage rejected", "abc", 10, 0, false},
		{"oversized clamped to max", "1000", 10, defaultMaxLimit, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, ok := h.parseLimit(tt.raw, tt.fallback)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestRecommendationHandler_ConfigOverrides(t *testing.T) {
	cfg := &config.Config{
		Recommendation: &config.RecommendationConfig{
			DefaultLimit:        20,
			MaxLimit:            50,
			SimilarDefaultLimit: 8,
		},
	}

	h := newTestRecommendationHandler(cfg)
	assert.Equal(t, 20, h.defaultLimit)
	assert.Equal(t, 8, h.similarLimit)
	assert.Equal(t, 50, h.maxLimit)

	limit, ok := h.parseLimit("200", h.defaultLimit)
	assert.True(t, ok)
	assert.Equal(t, 50, limit)
}
