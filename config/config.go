// Copyright © 2025 Texelcat contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: Optional per-user defaults for texelcat.

// Package config loads the optional defaults file. Built-in defaults
// are overridden by the file, which is overridden by flags. A missing
// file is normal; a malformed one is reported and ignored so a broken
// defaults file never blocks printing.
package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

const configName = "config.json"

// Defaults mirrors the defaults file. Pointer fields distinguish "not
// set" from meaningful zeros: tabs 0 passes tabs through and columns 0
// lifts the line limit.
type Defaults struct {
	Language *string `json:"language,omitempty"`
	Columns  *int    `json:"columns,omitempty"`
	Tabs     *int    `json:"tabs,omitempty"`
	Theme    *string `json:"theme,omitempty"`
}

// DefaultPath returns the user defaults file location,
// <user config dir>/texelcat/config.json.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}
	return filepath.Join(configDir, "texelcat", configName), nil
}

// Load reads the defaults file at path. A missing file yields empty
// defaults silently; unreadable or malformed files are logged and
// yield empty defaults.
func Load(path string) Defaults {
	var d Defaults
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("config: cannot read %s: %v", path, err)
		}
		return d
	}
	if err := json.Unmarshal(data, &d); err != nil {
		log.Printf("config: malformed %s: %v", path, err)
		return Defaults{}
	}
	return d
}
