// Package config loads, normalizes, and validates clipseek configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// ASSEMBLYAI_API_KEY (including a .env file in the working directory). The
// Config type centralizes every knob the CLI needs, so downstream code
// receives sanitized paths and clear validation errors.
package config
