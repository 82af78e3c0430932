// Package config reads and writes the repository configuration file.
//
// The file is git-config flavoured ini. Only the core section is meaningful:
//
//	[core]
//	repositoryformatversion = 0
//	filemode                = false
//	bare                    = false
package config

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/ini.v1"
)

const (
	SectionCore = "core"

	KeyFormatVersion = "repositoryformatversion"
	KeyFileMode      = "filemode"
	KeyBare          = "bare"
)

// ErrMissingKey is returned when a required key is absent.
var ErrMissingKey = errors.New("missing config key")

var loadOptions = ini.LoadOptions{Insensitive: true}

// Config is a namespaced key-value table.
type Config struct {
	file *ini.File
}

// New returns an empty configuration.
func New() *Config {
	return &Config{file: ini.Empty(loadOptions)}
}

// Default returns the configuration written by a fresh repository.
func Default() *Config {
	c := New()
	c.Set(SectionCore, KeyFormatVersion, "0")
	c.Set(SectionCore, KeyFileMode, "false")
	c.Set(SectionCore, KeyBare, "false")
	return c
}

// Load parses the configuration file at path.
func Load(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	f, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &Config{file: f}, nil
}

// Save writes the configuration to path.
func (c *Config) Save(fs afero.Fs, path string) error {
	var buf bytes.Buffer
	if _, err := c.file.WriteTo(&buf); err != nil {
		return err
	}
	return afero.WriteFile(fs, path, buf.Bytes(), 0644)
}

// Get returns the raw value of section.key.
func (c *Config) Get(section, key string) (string, bool) {
	sec, err := c.file.GetSection(section)
	if err != nil || !sec.HasKey(key) {
		return "", false
	}
	return sec.Key(key).String(), true
}

func (c *Config) Set(section, key, value string) {
	c.file.Section(section).Key(key).SetValue(value)
}

// FormatVersion returns core.repositoryformatversion.
func (c *Config) FormatVersion() (int, error) {
	sec, err := c.file.GetSection(SectionCore)
	if err != nil || !sec.HasKey(KeyFormatVersion) {
		return 0, fmt.Errorf("%w: %s.%s", ErrMissingKey, SectionCore, KeyFormatVersion)
	}
	return sec.Key(KeyFormatVersion).Int()
}

// FileMode returns core.filemode, false when unset or unparsable.
func (c *Config) FileMode() bool {
	return c.file.Section(SectionCore).Key(KeyFileMode).MustBool(false)
}

// Bare returns core.bare, false when unset or unparsable.
func (c *Config) Bare() bool {
	return c.file.Section(SectionCore).Key(KeyBare).MustBool(false)
}
