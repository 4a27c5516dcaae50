// Package common holds helpers shared by several services.
//
// It detects whether Xcode is running, since an open project writes its
// in-memory copy of the manifest back on save and silently drops changes
// made on disk.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
