package config

import "errors"

// ErrConfigNotFound is returned when the configuration file does not exist.
// Callers decide whether that matters based on whether the path was
// explicitly requested.
var ErrConfigNotFound = errors.New("config: configuration file not found")
