// Copyright © 2025 StackedUI contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: JSON-backed configuration store for stackedui.

package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
)

const systemConfigName = "stackedui.json"

// Config stores configuration sections as JSON-compatible data.
type Config map[string]interface{}

// Section stores key/value pairs for a configuration section.
type Section map[string]interface{}

var (
	mu      sync.RWMutex
	once    sync.Once
	system  Config
	loadErr error
)

// Err returns the most recent system config load error.
func Err() error {
	once.Do(initStore)
	mu.RLock()
	defer mu.RUnlock()
	return loadErr
}

// System returns the system configuration (stackedui.json).
func System() Config {
	once.Do(initStore)
	mu.RLock()
	defer mu.RUnlock()
	return system
}

func initStore() {
	mu.Lock()
	defer mu.Unlock()
	system, loadErr = loadSystem(systemConfigPath())
}

func loadSystem(path string) (Config, error) {
	cfg := make(Config)
	data, err := os.ReadFile(path)
	if err == nil {
		if jsonErr := json.Unmarshal(data, &cfg); jsonErr != nil {
			log.Printf("Config: Failed to parse %s: %v", path, jsonErr)
			cfg = make(Config)
			err = jsonErr
		}
	} else if os.IsNotExist(err) {
		err = nil
	}
	applySystemDefaults(cfg)
	return cfg, err
}

func systemConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "stackedui", systemConfigName)
}

// RegisterDefaults fills missing keys in the named section. An empty section
// name targets the top level.
func (c Config) RegisterDefaults(section string, defaults Section) {
	if c == nil {
		return
	}
	if section == "" {
		for key, value := range defaults {
			if _, ok := c[key]; !ok {
				c[key] = value
			}
		}
		return
	}
	sec := c.SectionMap(section)
	for key, value := range defaults {
		if _, ok := sec[key]; !ok {
			sec[key] = value
		}
	}
	c[section] = sec
}

// SectionMap returns the named section, converting from raw JSON maps when
// needed. Missing sections yield an empty (detached) Section.
func (c Config) SectionMap(name string) Section {
	switch v := c[name].(type) {
	case Section:
		return v
	case map[string]interface{}:
		sec := make(Section, len(v))
		for key, value := range v {
			sec[key] = value
		}
		c[name] = sec
		return sec
	default:
		return make(Section)
	}
}

// String returns a string key from a section, or def when absent. An empty
// section name targets the top level.
func (c Config) String(section, key, def string) string {
	if section == "" {
		if v, ok := c[key].(string); ok {
			return v
		}
		return def
	}
	if v, ok := c.SectionMap(section)[key].(string); ok {
		return v
	}
	return def
}

// Int returns an integer key from a section, or def when absent. JSON numbers
// arrive as float64 and are truncated.
func (c Config) Int(section, key string, def int) int {
	switch v := c.SectionMap(section)[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return def
}

// Float returns a float key from a section, or def when absent.
func (c Config) Float(section, key string, def float64) float64 {
	switch v := c.SectionMap(section)[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return def
}

// Bool returns a boolean key from a section, or def when absent.
func (c Config) Bool(section, key string, def bool) bool {
	if v, ok := c.SectionMap(section)[key].(bool); ok {
		return v
	}
	return def
}
