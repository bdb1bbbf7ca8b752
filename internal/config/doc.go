// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables, seeded from an optional .env file
//  2. Command-line flags
//  3. JSON config file
//
// Defaults are applied to whatever is still empty, then the result is
// validated. The main entry point is [GetStructuredConfig].
package config
