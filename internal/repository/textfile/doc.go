// Package textfile loads and writes back the text files the tools patch.
//
// A FileRepository remembers what it read, so Save only touches the disk
// when the content actually changed and reports ErrNoChanges otherwise.
package textfile
