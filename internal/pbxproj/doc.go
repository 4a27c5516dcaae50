// Package pbxproj patches Xcode project manifests (project.pbxproj) in place.
//
// It does not parse the manifest into a tree. Sections, objects and lists are
// located by their textual shape (section markers, "ID /* name */ = {"
// headers, "files = (" lists) and new lines are spliced in next to the
// existing ones, so unrelated content keeps its exact bytes. Anything that
// does not have the expected shape is reported as a missing section rather
// than guessed at.
package pbxproj
