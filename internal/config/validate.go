package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSite(); err != nil {
		return err
	}
	if err := c.validateFetch(); err != nil {
		return err
	}
	if err := c.validateCrawl(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateSite() error {
	for key, value := range map[string]string{
		"site.base_url":             c.Site.BaseURL,
		"site.filmography_base_url": c.Site.FilmographyBaseURL,
		"site.search_url":           c.Site.SearchURL,
	} {
		if err := validateHTTPURL(value); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

func (c *Config) validateFetch() error {
	if c.Fetch.ProxyURL == "" {
		return nil
	}
	if err := validateHTTPURL(c.Fetch.ProxyURL); err != nil {
		return fmt.Errorf("fetch.proxy_url: %w", err)
	}
	return nil
}

func (c *Config) validateCrawl() error {
	if c.Crawl.HopWorkers > maxHopWorkers {
		return fmt.Errorf("crawl.hop_workers must be between 1 and %d", maxHopWorkers)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
}

func validateHTTPURL(value string) error {
	if value == "" {
		return errors.New("must be set")
	}
	parsed, err := url.Parse(value)
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return errors.New("missing host")
	}
	return nil
}
