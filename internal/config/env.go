package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables recognized by deptreport.
const (
	EnvInput     = "DEPTREPORT_INPUT"
	EnvOutput    = "DEPTREPORT_OUTPUT"
	EnvLang      = "DEPTREPORT_LANG"
	EnvFormat    = "DEPTREPORT_FORMAT"
	EnvDelimiter = "DEPTREPORT_DELIMITER"
	EnvHistory   = "DEPTREPORT_HISTORY"
	EnvDataDir   = "DEPTREPORT_DATA_DIR"
)

// DefaultEnvFile is the dotenv file read from the working directory.
const DefaultEnvFile = ".env"

// ApplyEnv overrides cfg with DEPTREPORT_* variables.
// Values from envFile are used first and the process environment wins over
// them. A missing envFile is not an error.
// DEPTREPORT_INPUT may hold several paths separated by the OS list separator.
func ApplyEnv(cfg *Config, envFile string) error {
	fileVars := map[string]string{}
	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			fileVars = vars
		case errors.Is(err, os.ErrNotExist):
		default:
			return fmt.Errorf("failed to read %s: %w", envFile, err)
		}
	}

	return applyEnv(cfg, func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	})
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvInput); ok && v != "" {
		var inputs []string
		for _, p := range filepath.SplitList(v) {
			if p != "" {
				inputs = append(inputs, p)
			}
		}
		if len(inputs) > 0 {
			cfg.Inputs = inputs
		}
	}
	if v, ok := lookup(EnvOutput); ok && v != "" {
		cfg.OutputPath = v
	}
	if v, ok := lookup(EnvLang); ok && v != "" {
		cfg.Language = v
	}
	if v, ok := lookup(EnvFormat); ok && v != "" {
		cfg.Format = v
	}
	if v, ok := lookup(EnvDelimiter); ok && v != "" {
		r, err := parseDelimiter(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvDelimiter, v, err)
		}
		cfg.Delimiter = r
	}
	if v, ok := lookup(EnvHistory); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvHistory, v, err)
		}
		cfg.SaveHistory = b
	}
	if v, ok := lookup(EnvDataDir); ok && v != "" {
		cfg.DBDir = v
	}
	return nil
}
