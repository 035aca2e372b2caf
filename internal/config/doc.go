// Package config loads converter configuration from TOML or YAML files.
//
// Configuration selects the German decoding strictness and may define
// custom conversion tables that hosts register alongside the builtin
// formats. A missing configuration file is not an error: Load returns
// the defaults.
package config
