package storage

import (
	"net/url"
	"path/filepath"

	"github.com/tequdev/xahau-governance-hook-test/lib/errors"
)

// Config is parsed from a storage uri, `memory://` or `file:///<path>`.
type Config struct {
	Scheme string
	Path   string
}

func NewConfigFromString(s string) (*Config, error) {
	parsed, err := url.Parse(s)
	if err != nil {
		return nil, errors.InvalidStorageConfig.Clone().SetData("error", err.Error())
	}

	config := &Config{Scheme: parsed.Scheme}
	switch parsed.Scheme {
	case "memory":
	case "file":
		path := parsed.Path
		if len(parsed.Host) > 0 {
			path = filepath.Join(parsed.Host, path)
		}
		if len(path) < 1 {
			return nil, errors.InvalidStorageConfig.Clone().SetData("error", "empty path")
		}
		config.Path = path
	default:
		return nil, errors.InvalidStorageConfig.Clone().SetData("scheme", parsed.Scheme)
	}

	return config, nil
}

func (c Config) String() string {
	if c.Scheme == "memory" {
		return "memory://"
	}

	return (&url.URL{Scheme: c.Scheme, Path: c.Path}).String()
}
