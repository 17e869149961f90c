package config

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// DefaultPath is where the config file lives unless overridden on the
// command line.
const DefaultPath = "spord-tracker.json"

// Config is constructed once at startup and injected into each component.
// Nothing reads it after startup, so it needs no locking.
type Config struct {
	Log   LogConfig   `json:"log"`
	Store StoreConfig `json:"sql"`
	Web   WebConfig   `json:"web"`
}

type LogConfig struct {
	Level  string `json:"level"`
	Stdout bool   `json:"stdout"`
}

type StoreConfig struct {
	// Location is the path of the SQLite database file.
	Location string `json:"location"`
}

type WebConfig struct {
	Listen string `json:"listen"`
	// HTTPS is a capability flag only; the secured listener is not
	// implemented and the server refuses to start when it is set.
	HTTPS        bool   `json:"https"`
	CertFile     string `json:"cert_file"`
	KeyFile      string `json:"key_file"`
	SessionKey   string `json:"session_key"`
	CSRFKey      string `json:"csrf_key"`
	CookieSecure bool   `json:"cookie_secure"`
}

// SlogLevel maps the configured level name onto a slog level, defaulting to
// info for anything unrecognized.
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SessionKeyBytes decodes the configured session key. A missing or short key
// gets replaced with a random one, which invalidates sessions on restart.
func (w WebConfig) SessionKeyBytes() []byte {
	return decodeKey(w.SessionKey, "session_key")
}

// CSRFKeyBytes decodes the configured CSRF key, with the same fallback as
// SessionKeyBytes.
func (w WebConfig) CSRFKeyBytes() []byte {
	return decodeKey(w.CSRFKey, "csrf_key")
}

func decodeKey(encoded, name string) []byte {
	if encoded == "" {
		slog.Warn("Config key not set, generating a random one; sessions will not survive a restart", "key", name)
		return randomBytes(32)
	}
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || len(decoded) < 32 {
		slog.Warn("Config key invalid or shorter than 32 bytes, generating a random one", "key", name)
		return randomBytes(32)
	}
	return decoded
}

// Load reads and parses the config file at path.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadOrCreate loads the config file, writing the default one first if none
// exists yet.
func LoadOrCreate(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		slog.Info("No config file found, writing default", "path", path)
		if err := WriteDefault(path); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("stat config: %w", err)
	}
	return Load(path)
}

// WriteDefault writes a default config to path, with fresh random session
// and CSRF keys so they survive restarts.
func WriteDefault(path string) error {
	cfg := Default()
	content, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Default returns the configuration written on first run.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Stdout: true,
		},
		Store: StoreConfig{
			Location: "spord-tracker.db",
		},
		Web: WebConfig{
			Listen:     "127.0.0.1:8080",
			HTTPS:      false,
			CertFile:   "key.crt",
			KeyFile:    "privkey.key",
			SessionKey: base64.StdEncoding.EncodeToString(randomBytes(32)),
			CSRFKey:    base64.StdEncoding.EncodeToString(randomBytes(32)),
		},
	}
}

func randomBytes(n int) []byte {
	b := make([]byte, n)
	// crypto/rand.Read only fails when the OS entropy source is broken.
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("crypto/rand failed: %v", err))
	}
	return b
}
