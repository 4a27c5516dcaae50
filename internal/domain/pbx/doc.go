// Package pbx contains the domain vocabulary of an Xcode project manifest.
//
// It defines build phases, the file references and build files the patcher
// reads and writes, and the mapping from file extensions to the
// lastKnownFileType tags Xcode expects.
package pbx
