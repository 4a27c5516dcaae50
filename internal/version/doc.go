// Package version holds the build metadata printed by the `version`
// subcommand of pbx-add, pbx-fix-resources and localize.
//
// Version, Commit and BuildTime are set with -ldflags "-X ..." at build time.
package version
