// Package config provides configuration loading, merging, and validation
// facilities for the zentask server.
//
// Configuration is assembled from multiple sources in the following priority
// order (the first source providing a non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig].
package config
