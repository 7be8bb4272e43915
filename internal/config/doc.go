// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/apexsupport/config.cue (or $XDG_CONFIG_HOME on Linux,
// ~/Library/Application Support/apexsupport/config.cue on macOS, %APPDATA%\apexsupport\config.cue
// on Windows). It selects the APEX mount root, the manifest file name and the diagnostic log
// settings. Every key can be overridden from the environment with the APEXSUPPORT_ prefix.
//
// Configuration files are validated against a CUE schema (config_schema.cue); values coming
// from the environment are validated by the typed fields after decoding.
package config
