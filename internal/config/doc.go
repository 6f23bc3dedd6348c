// Package config manages user settings stored at ~/.pi/config.yaml,
// with environment overrides under the PI_ prefix.
package config
