// Package config loads, merges and validates the configuration of the
// cols tracker server and terminal client.
//
// Sources, highest priority first:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// [GetServerConfig] and [GetClientConfig] are the entry points of the two
// binaries; [GetStructuredConfig] returns the merged tree.
package config
