// Package integration runs the tools' services end to end against real files.
package integration
