// Package config loads, normalizes, and validates quotefinder configuration.
//
// It supplies defaults matching the historical matching policy, expands user
// paths (including tilde shortcuts), reads TOML files, and honours the
// QUOTEFINDER_SUMMARIZE_BIN environment override. Every field is optional; a
// missing file simply yields the defaults.
//
// Always obtain settings through this package so downstream code receives
// trimmed values and clear validation errors naming the offending key.
package config
