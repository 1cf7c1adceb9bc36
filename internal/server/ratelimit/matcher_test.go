package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/auth/login", Method: "POST", Limit: 20, Window: time.Minute},
		{Path: "/api/", Method: "GET", Limit: 100, Window: time.Minute},
	}

	t.Run("health is always unlimited", func(t *testing.T) {
		match := MatchEndpoint("/health", "GET", configs)
		require.NotNil(t, match)
		assert.Equal(t, 0, match.Limit)
	})

	t.Run("exact match", func(t *testing.T) {
		match := MatchEndpoint("/auth/login", "POST", configs)
		require.NotNil(t, match)
		assert.Equal(t, 20, match.Limit)
	})

	t.Run("prefix match", func(t *testing.T) {
		match := MatchEndpoint("/api/daily-briefing", "GET", configs)
		require.NotNil(t, match)
		assert.Equal(t, 100, match.Limit)
	})

	t.Run("exact match wins over prefix", func(t *testing.T) {
		withExact := append(configs, EndpointConfig{
			Path: "/api/daily-briefing", Method: "GET", Limit: 5, Window: time.Minute,
		})
		match := MatchEndpoint("/api/daily-briefing", "GET", withExact)
		require.NotNil(t, match)
		assert.Equal(t, 5, match.Limit)
	})

	t.Run("method mismatch", func(t *testing.T) {
		assert.Nil(t, MatchEndpoint("/auth/login", "GET", configs))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Nil(t, MatchEndpoint("/metrics", "GET", configs))
	})
}
