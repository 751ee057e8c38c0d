// Package config loads parser tuning Options from a TOML or YAML file.
package config
