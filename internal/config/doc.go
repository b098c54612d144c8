// Package config provides configuration structures and utilities for deptreport.
// It defines where employee data is read from, how its columns are laid out,
// and how the resulting reports are rendered and stored.
//
// Values are resolved in this order, later sources winning:
// defaults, the YAML configuration file, the environment (optionally seeded
// from a .env file), and finally command line flags.
package config
