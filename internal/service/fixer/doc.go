// Package fixer removes asset-catalog files that were added to the Resources
// build phase one by one, which makes Xcode fail with "Multiple commands
// produce" errors.
package fixer
