package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("AZURE_SUBSCRIPTION_ID", "00000000-0000-0000-0000-000000000000")

	cfg := LoadConfig()
	assert.Equal(t, "00000000-0000-0000-0000-000000000000", cfg.SubscriptionID)
	assert.True(t, cfg.HasSubscription())
}

func TestLoadConfigWithoutSubscription(t *testing.T) {
	t.Setenv("AZURE_SUBSCRIPTION_ID", "")

	assert.False(t, LoadConfig().HasSubscription())
}
