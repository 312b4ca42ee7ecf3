package settings

// Well-known keys in the flat key-value store.
const (
	KeyMigrated   = "data_migrated"
	KeyLLMConfigs = "attendance_llms"
)

// LLMConfig describes one saved external text-completion endpoint.
// At most one config is flagged as default at any time.
type LLMConfig struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Provider    string  `json:"provider"`
	BaseURL     string  `json:"base_url"`
	Model       string  `json:"model"`
	APIKey      string  `json:"api_key"`
	Temperature float32 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
	IsDefault   bool    `json:"is_default"`
}

// Configured reports whether the config can actually be called.
func (c LLMConfig) Configured() bool {
	return c.APIKey != "" && c.Model != ""
}

// Masked returns a copy safe for listing: the credential is reduced to a
// presence indicator.
func (c LLMConfig) Masked() LLMConfig {
	out := c
	if out.APIKey != "" {
		out.APIKey = "********"
	}
	return out
}
