// Package config loads the YAML run configuration for the tamper
// detection evaluation: dataset directory, image extensions, random
// seed and report destinations.
package config
