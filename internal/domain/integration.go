package domain

// IntegrationConfig holds the credentials and flags for one third-party
// integration. The JSON tags match the import/export interchange format
// (camelCase), which is fixed externally and differs from the rest of
// the persisted shapes.
type IntegrationConfig struct {
	APIKey           string         `json:"apiKey,omitempty"`
	Endpoint         string         `json:"endpoint,omitempty"`
	Enabled          bool           `json:"enabled"`
	AdditionalConfig map[string]any `json:"additionalConfig,omitempty"`
}

// DefaultIntegrationConfig returns the inert configuration used for
// unknown or never-configured integrations.
func DefaultIntegrationConfig() IntegrationConfig {
	return IntegrationConfig{Enabled: false}
}

// Clone returns a deep copy of the config.
func (c IntegrationConfig) Clone() IntegrationConfig {
	clone := c
	if c.AdditionalConfig != nil {
		clone.AdditionalConfig = make(map[string]any, len(c.AdditionalConfig))
		for k, v := range c.AdditionalConfig {
			clone.AdditionalConfig[k] = v
		}
	}
	return clone
}

// AdditionalString returns the named additional-config value as a
// string, or "" if missing or not a string.
func (c IntegrationConfig) AdditionalString(key string) string {
	if c.AdditionalConfig == nil {
		return ""
	}
	s, _ := c.AdditionalConfig[key].(string)
	return s
}
