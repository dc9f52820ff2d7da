// Package config loads azrest CLI profiles.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// DefaultTokenEnv is the environment variable read for a bearer token
// when a profile does not name one.
const DefaultTokenEnv = "AZREST_TOKEN"

// DefaultProfileName is used when the file does not set default_profile.
const DefaultProfileName = "default"

// ErrProfileNotFound is returned by File.Profile for an unknown name.
var ErrProfileNotFound = errors.New("profile not found")

// File is the CLI configuration file.
type File struct {
	// DefaultProfile is the profile used when --profile is not given.
	DefaultProfile string `yaml:"default_profile,omitempty" json:"default_profile,omitempty"`

	// Profiles are the named connection settings.
	Profiles map[string]Profile `yaml:"profiles" json:"profiles"`
}

// Profile holds the connection settings of one environment.
type Profile struct {
	// Endpoint is the Resource Manager base URL.
	Endpoint string `yaml:"endpoint,omitempty" json:"endpoint,omitempty"`

	// SubscriptionID is the subscription ARM commands operate on.
	SubscriptionID string `yaml:"subscription_id,omitempty" json:"subscription_id,omitempty"`

	// TenantID and ClientID select a service principal whose secret is
	// read from AZURE_CLIENT_SECRET.
	TenantID string `yaml:"tenant_id,omitempty" json:"tenant_id,omitempty"`
	ClientID string `yaml:"client_id,omitempty" json:"client_id,omitempty"`

	// ProxyURL routes requests through an SSH jump host.
	ProxyURL string `yaml:"proxy_url,omitempty" json:"proxy_url,omitempty"`

	// TokenEnv names the environment variable holding a bearer token.
	TokenEnv string `yaml:"token_env,omitempty" json:"token_env,omitempty"`

	// QueueEndpoint is the storage account queue endpoint.
	QueueEndpoint string `yaml:"queue_endpoint,omitempty" json:"queue_endpoint,omitempty"`

	// PubSubEndpoint is the Web PubSub service endpoint.
	PubSubEndpoint string `yaml:"pubsub_endpoint,omitempty" json:"pubsub_endpoint,omitempty"`
}

// DefaultPath returns ~/.config/azrest/config.yaml, honoring XDG_CONFIG_HOME.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "azrest.yaml")
	}
	return filepath.Join(dir, "azrest", "config.yaml")
}

// Load reads and validates the configuration file at path. A missing file
// yields an empty configuration.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &File{Profiles: map[string]Profile{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if file.Profiles == nil {
		file.Profiles = map[string]Profile{}
	}

	if err := file.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &file, nil
}

// Validate checks every profile and the default profile reference.
func (f *File) Validate() error {
	for _, name := range f.Names() {
		p := f.Profiles[name]
		if err := p.Validate(); err != nil {
			return fmt.Errorf("profiles.%s: %w", name, err)
		}
	}

	if f.DefaultProfile != "" {
		if _, ok := f.Profiles[f.DefaultProfile]; !ok {
			return fmt.Errorf("default_profile %q is not defined", f.DefaultProfile)
		}
	}
	return nil
}

// Names returns the profile names in sorted order.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Profiles))
	for name := range f.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Profile returns the named profile. An empty name selects the default
// profile; when the file has none, an empty profile is returned.
func (f *File) Profile(name string) (Profile, error) {
	explicit := name != ""
	if !explicit {
		name = f.DefaultProfile
		if name == "" {
			name = DefaultProfileName
		}
	}

	p, ok := f.Profiles[name]
	if !ok {
		if explicit {
			return Profile{}, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
		}
		return Profile{}, nil
	}
	return p, nil
}

// Validate checks that the profile is usable.
func (p *Profile) Validate() error {
	if p.SubscriptionID != "" {
		if _, err := uuid.Parse(p.SubscriptionID); err != nil {
			return fmt.Errorf("subscription_id is not a valid UUID: %s", p.SubscriptionID)
		}
	}
	if p.TenantID != "" {
		if _, err := uuid.Parse(p.TenantID); err != nil {
			return fmt.Errorf("tenant_id is not a valid UUID: %s", p.TenantID)
		}
	}
	if (p.TenantID == "") != (p.ClientID == "") {
		return fmt.Errorf("tenant_id and client_id must be set together")
	}

	for field, raw := range map[string]string{
		"endpoint":        p.Endpoint,
		"queue_endpoint":  p.QueueEndpoint,
		"pubsub_endpoint": p.PubSubEndpoint,
	} {
		if raw == "" {
			continue
		}
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s is not an absolute URL: %s", field, raw)
		}
	}
	return nil
}

// TokenVariable returns the environment variable holding the bearer token.
func (p *Profile) TokenVariable() string {
	if p.TokenEnv != "" {
		return p.TokenEnv
	}
	return DefaultTokenEnv
}
