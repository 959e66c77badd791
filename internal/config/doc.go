// Package config loads, normalizes, and validates imdbooo configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the IMDBOOO_DATA_DIR environment
// override. The Config type centralizes the database location, the crawled
// site's endpoints, fetch policy and log output so the CLI can wire every
// component from one value.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, trimmed URLs, and clear validation errors.
package config
