// Package config binds buildkeep's archiving and notification settings
// from a YAML payload, with environment variable overrides under the
// BUILDKEEP_ prefix.
package config
