package main

import "os"

// Config holds environment-based configuration for the MCP server
type Config struct {
	SubscriptionID string
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		SubscriptionID: os.Getenv("AZURE_SUBSCRIPTION_ID"),
	}
}

// HasSubscription returns true if a target subscription is configured
func (c *Config) HasSubscription() bool {
	return c.SubscriptionID != ""
}
