package sdk

import (
	"errors"
	"testing"
	"time"
)

func TestClientConfig_Validate(t *testing.T) {
	cred := NewStaticTokenCredential("token")

	tests := []struct {
		name    string
		config  ClientConfig
		wantErr error
	}{
		{
			name:   "valid config",
			config: ClientConfig{Endpoint: "https://management.azure.com/", Credential: cred},
		},
		{
			name:    "missing endpoint",
			config:  ClientConfig{Credential: cred},
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "endpoint without scheme",
			config:  ClientConfig{Endpoint: "management.azure.com", Credential: cred},
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "missing credential",
			config:  ClientConfig{Endpoint: "https://management.azure.com"},
			wantErr: ErrMissingCredential,
		},
		{
			name:   "negative retries disable retrying",
			config: ClientConfig{Endpoint: "https://x", Credential: cred, RetryAttempts: -1},
		},
		{
			name: "max wait below min wait",
			config: ClientConfig{
				Endpoint: "https://x", Credential: cred,
				RetryWaitMin: 10 * time.Second, RetryWaitMax: time.Second,
			},
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "bad proxy URL",
			config:  ClientConfig{Endpoint: "https://x", Credential: cred, ProxyURL: "http://proxy:8080"},
			wantErr: ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() unexpected error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestClientConfig_Defaults(t *testing.T) {
	config := ClientConfig{
		Endpoint:          " https://management.azure.com/ ",
		Credential:        NewStaticTokenCredential("token"),
		RequestsPerSecond: 5,
	}
	if err := config.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if config.Endpoint != "https://management.azure.com" {
		t.Errorf("Endpoint = %q", config.Endpoint)
	}
	if len(config.Scopes) != 1 || config.Scopes[0] != "https://management.azure.com/.default" {
		t.Errorf("Scopes = %v", config.Scopes)
	}
	if config.UserAgent != "azrest/"+Version {
		t.Errorf("UserAgent = %q", config.UserAgent)
	}
	if config.RetryAttempts != 3 {
		t.Errorf("RetryAttempts = %d, want 3", config.RetryAttempts)
	}
	if config.RetryWaitMin != time.Second || config.RetryWaitMax != 30*time.Second {
		t.Errorf("RetryWait = %v..%v", config.RetryWaitMin, config.RetryWaitMax)
	}
	if config.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v", config.Timeout)
	}
	if config.Burst != 1 {
		t.Errorf("Burst = %d, want 1", config.Burst)
	}
	if config.HTTPClient == nil || config.HTTPClient.Timeout != 30*time.Second {
		t.Error("default HTTP client not created")
	}
	if config.Logger == nil {
		t.Error("default logger not set")
	}
}

func TestParseProxyURL(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantUser string
		wantHost string
		wantErr  bool
	}{
		{
			name:     "ssh socks5",
			raw:      "ssh+socks5://jump@10.0.0.5:22?private-key=/tmp/id_rsa",
			wantUser: "jump",
			wantHost: "10.0.0.5:22",
		},
		{
			name:     "plain socks5",
			raw:      "socks5://bastion.example.com:2222?private-key=/tmp/key",
			wantHost: "bastion.example.com:2222",
		},
		{name: "missing key", raw: "ssh+socks5://jump@host:22", wantErr: true},
		{name: "wrong scheme", raw: "http://host:22?private-key=/k", wantErr: true},
		{name: "missing host", raw: "ssh+socks5://?private-key=/k", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseProxyURL(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatal("parseProxyURL() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseProxyURL() error = %v", err)
			}
			if got.username != tt.wantUser || got.host != tt.wantHost {
				t.Errorf("parseProxyURL() = %+v", got)
			}
		})
	}
}
