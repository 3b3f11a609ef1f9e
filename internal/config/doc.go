// Package config loads harness configuration from a YAML file with
// environment-variable overrides.
//
// Precedence: defaults < YAML file < FLOWLM_* environment variables. The
// file is optional; a missing file leaves defaults and env values in
// force, so CI and one-off runs need nothing on disk.
package config
