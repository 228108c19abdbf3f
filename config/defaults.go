// Copyright © 2025 StackedUI contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values for the system configuration file.

package config

func applySystemDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("", Section{
		"activeTheme": "mocha",
	})
	cfg.RegisterDefaults("overlay", Section{
		"alignment": "top-right",
		"margin":    0,
	})
}
