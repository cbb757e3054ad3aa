// Package config provides configuration loading, merging, and validation
// facilities for the forms-auth server and the admin-setup tool.
//
// Configuration is assembled from multiple sources. Earlier sources take
// precedence over later ones for non-zero fields:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetAdminSetupConfig] for the admin-setup tool.
package config
