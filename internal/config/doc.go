// Package config provides application configuration loaded from
// environment variables and an optional YAML file, plus the
// centralized path resolution used by every binary.
//
// Environment variables use the AIMDASH prefix, for example
// AIMDASH_SERVER_PORT=8080. When both a config file and environment
// variables set the same value, the environment wins.
//
// All data paths resolve relative to the executable directory, never
// the current working directory, so the binaries behave the same
// whether launched from a shell or a service manager.
package config
