// Package config provides configuration management for the bikeshare
// analysis tool. Configuration is layered: built-in defaults, an
// optional config.yaml, then BIKESHARE_* environment variables, with
// later layers taking precedence.
package config
