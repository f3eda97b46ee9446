package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr          string
	Env           string
	TLSCert       string
	TLSKey        string
	RateLimit     float64
	RateBurst     int
	ReportKey     []byte
	ReportLinkTTL time.Duration
	AccessHash    string
	PublicURL     string
}

// TLS reports whether both certificate and key are configured.
func (c Config) TLS() bool { return c.TLSCert != "" && c.TLSKey != "" }

// Load reads the environment, after merging an optional .env file from the
// working directory. Variables already set win over the file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function.
func FromEnv(getenv func(string) string) (Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}
	cfg := Config{
		Addr:       get("ADDR", ":8080"),
		Env:        get("APP_ENV", "dev"),
		TLSCert:    get("TLS_CERT", ""),
		TLSKey:     get("TLS_KEY", ""),
		ReportKey:  []byte(get("REPORT_KEY", "")),
		AccessHash: get("ACCESS_HASH", ""),
		PublicURL:  get("PUBLIC_URL", ""),
	}

	var errs []error
	var err error
	if cfg.RateLimit, err = strconv.ParseFloat(get("RATE_LIMIT", "1"), 64); err != nil || cfg.RateLimit <= 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT: must be a positive number"))
	}
	if cfg.RateBurst, err = strconv.Atoi(get("RATE_BURST", "5")); err != nil || cfg.RateBurst < 1 {
		errs = append(errs, fmt.Errorf("RATE_BURST: must be a positive integer"))
	}
	if cfg.ReportLinkTTL, err = time.ParseDuration(get("REPORT_LINK_TTL", "24h")); err != nil || cfg.ReportLinkTTL <= 0 {
		errs = append(errs, fmt.Errorf("REPORT_LINK_TTL: must be a positive duration"))
	}
	if (cfg.TLSCert == "") != (cfg.TLSKey == "") {
		errs = append(errs, fmt.Errorf("TLS_CERT and TLS_KEY must be set together"))
	}
	if cfg.PublicURL == "" {
		scheme := "http"
		if cfg.TLS() {
			scheme = "https"
		}
		host := cfg.Addr
		if strings.HasPrefix(host, ":") {
			host = "localhost" + host
		}
		cfg.PublicURL = scheme + "://" + host
	}
	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
