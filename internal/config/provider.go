package config

import "github.com/swtools/swcli/internal/domain"

// Provider reads one rc file and implements domain.ConfigProvider.
type Provider struct {
	path string
}

// NewProvider creates a provider for the rc file at path.
func NewProvider(path string) *Provider {
	return &Provider{path: path}
}

// Path returns the rc file location.
func (p *Provider) Path() string {
	return p.path
}

// Get returns the value for a configuration key.
func (p *Provider) Get(key string) (string, bool) {
	return Get(p.path, key)
}

// GetAll returns all configuration values.
func (p *Provider) GetAll() (map[string]string, error) {
	return GetAll(p.path)
}

// Verify Provider implements domain.ConfigProvider
var _ domain.ConfigProvider = (*Provider)(nil)
