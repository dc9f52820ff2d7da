package sdk

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	proxy "github.com/cloudfoundry/socks5-proxy"
	"go.uber.org/zap"
)

// proxySettings is a parsed ssh+socks5 proxy URL.
type proxySettings struct {
	username string
	host     string
	keyPath  string
}

// parseProxyURL parses ssh+socks5://user@host:port?private-key=/path/to/key.
func parseProxyURL(raw string) (*proxySettings, error) {
	if !strings.HasPrefix(raw, "ssh+socks5://") && !strings.HasPrefix(raw, "socks5://") {
		return nil, fmt.Errorf("proxy URL must use the ssh+socks5 scheme: %q", raw)
	}

	u, err := url.Parse(strings.TrimPrefix(raw, "ssh+"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse proxy URL: %w", err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("proxy URL has no host: %q", raw)
	}

	settings := &proxySettings{host: u.Host, keyPath: u.Query().Get("private-key")}
	if u.User != nil {
		settings.username = u.User.Username()
	}
	if settings.keyPath == "" {
		return nil, fmt.Errorf("proxy URL is missing the private-key query parameter")
	}

	return settings, nil
}

// newSOCKS5DialContext builds a dial function that tunnels connections over SSH
// to the jump host. The SSH session is opened on first use and shared afterwards.
func newSOCKS5DialContext(raw string, logger *zap.Logger) (func(ctx context.Context, network, address string) (net.Conn, error), error) {
	settings, err := parseProxyURL(raw)
	if err != nil {
		return nil, err
	}

	key, err := os.ReadFile(settings.keyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read SSH private key: %w", err)
	}

	socks5Proxy := proxy.NewSocks5Proxy(proxy.NewHostKey(), log.Default(), 1*time.Minute)

	var (
		dialer proxy.DialFunc
		mut    sync.RWMutex
	)

	return func(ctx context.Context, network, address string) (net.Conn, error) {
		mut.RLock()
		haveDialer := dialer != nil
		mut.RUnlock()

		if haveDialer {
			return dialer(network, address)
		}

		mut.Lock()
		defer mut.Unlock()
		if dialer == nil {
			logger.Debug("Opening SSH tunnel",
				zap.String("proxy_host", settings.host),
				zap.String("proxy_user", settings.username),
			)
			proxyDialer, err := socks5Proxy.Dialer(settings.username, string(key), settings.host)
			if err != nil {
				return nil, fmt.Errorf("failed to create SOCKS5 dialer: %w", err)
			}
			dialer = proxyDialer
		}
		return dialer(network, address)
	}, nil
}
