// Package config loads the application's TOML configuration. Values
// missing from the file keep their defaults, so a partial or absent
// config file is always valid.
package config
