// Package config provides configuration management for the webeng web server.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

var AppVersion = "-unset-" // will be set at build time

const (
	// Default web server settings
	DefaultListenPort   = 3000
	DefaultViewsDir     = "views"
	DefaultStaticDir    = "static"
	DefaultReadTimeout  = 10 * time.Second
	DefaultWriteTimeout = 10 * time.Second
)

var (
	ErrInvalidPort = errors.New("invalid listen port")
	ErrMissingDir  = errors.New("directory not configured")
	ErrTLSFiles    = errors.New("ssl enabled but cert_file or key_file not specified")
	ErrTimeout     = errors.New("negative timeout")
)

// WebConfig holds web server configuration
type WebConfig struct {
	Host       string `yaml:"host"`
	ListenPort int    `yaml:"listen_port"`
	ViewsDir   string `yaml:"views_dir"`  // Directory holding index.html and profile.html
	StaticDir  string `yaml:"static_dir"` // Directory served under /static

	SSL      bool   `yaml:"ssl"`
	CertFile string `yaml:"cert_file,omitempty"`
	KeyFile  string `yaml:"key_file,omitempty"`

	Debug     bool   `yaml:"debug"`      // Debug log level and gin debug mode
	AccessLog bool   `yaml:"access_log"` // Apache style request log on stdout
	PprofAddr string `yaml:"pprof_addr"` // Empty disables the profiler

	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`

	TrustedProxies []string `yaml:"trusted_proxies"`
}

// DefaultTrustedProxies covers common reverse proxy setups (nginx on loopback or a private network)
var DefaultTrustedProxies = []string{"127.0.0.1", "::1", "10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"}

// NewDefaultConfig returns a configuration with sensible defaults
func NewDefaultConfig() *WebConfig {
	return &WebConfig{
		ListenPort:     DefaultListenPort,
		ViewsDir:       DefaultViewsDir,
		StaticDir:      DefaultStaticDir,
		ReadTimeout:    DefaultReadTimeout,
		WriteTimeout:   DefaultWriteTimeout,
		TrustedProxies: append([]string(nil), DefaultTrustedProxies...),
	}
}

// LoadFile reads a YAML file and overlays it onto the defaults.
// Keys missing from the file keep their default value.
func LoadFile(path string) (*WebConfig, error) {
	cfg := NewDefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the server cannot start with
func (c *WebConfig) Validate() error {
	// Port 0 lets the kernel pick a free port
	if c.ListenPort < 0 || c.ListenPort > 65535 {
		return fmt.Errorf("%w: %d (must be between 0 and 65535)", ErrInvalidPort, c.ListenPort)
	}
	if c.ViewsDir == "" {
		return fmt.Errorf("%w: views_dir", ErrMissingDir)
	}
	if c.StaticDir == "" {
		return fmt.Errorf("%w: static_dir", ErrMissingDir)
	}
	if c.SSL && (c.CertFile == "" || c.KeyFile == "") {
		return ErrTLSFiles
	}
	if c.ReadTimeout < 0 || c.WriteTimeout < 0 {
		return ErrTimeout
	}
	return nil
}

// Address returns the listen address in host:port form
func (c *WebConfig) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.ListenPort))
}
