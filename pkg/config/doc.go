// Package config handles configuration management for quill.
// It supports loading configuration from multiple sources including
// TOML files and environment variables.
package config
