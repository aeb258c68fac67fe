package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/preston-bernstein/roster-filter-service/internal/config"
)

func TestProviderFactoryBuildsFixture(t *testing.T) {
	factory := newProviderFactory(nil, nil)
	assert.NotNil(t, factory.build(config.Config{Provider: "fixture"}))
}

func TestProviderFactoryBuildsRateLimitedUpstream(t *testing.T) {
	factory := newProviderFactory(nil, nil)
	prov := factory.build(config.Config{
		Provider:    "apifootball",
		APIFootball: config.APIFootballConfig{APIKey: "key", RateInterval: time.Second},
	})
	assert.NotNil(t, prov)
}

func TestNormalizeProviderName(t *testing.T) {
	assert.Equal(t, "apifootball", normalizeProviderName("APIFootball", nil))
	assert.Equal(t, "provider", normalizeProviderName("", nil))
	assert.Equal(t, "*fixture.provider", normalizeProviderName("", selectProvider(config.Config{}, nil)))
}
