// Package adder registers a new source or resource file in an Xcode project.
//
// It resolves the file type and build phase, splices the four manifest
// entries through pbxproj and writes the manifest back only when every
// step succeeded.
package adder
