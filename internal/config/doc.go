// Package config loads the optional pagegen configuration file, which
// supplies defaults for the archetype and capability toggles. Flags and
// operands on the command line always win over the file.
package config
