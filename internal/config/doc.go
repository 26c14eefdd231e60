// SPDX-License-Identifier: EPL-2.0

// Package config provides YAML configuration loading and validation for the
// audpost command. Every value can also be set by a command line flag,
// which takes precedence.
package config
