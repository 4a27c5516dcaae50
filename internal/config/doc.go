// Package config defines the settings shared by the maintenance tools and
// provides helpers to load, validate and save them in YAML format.
//
// A missing default settings file is not an error: the tools then run on
// built-in defaults, and command-line arguments override either source.
package config
