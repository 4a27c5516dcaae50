// Package localization manages Localizable.strings files for the app.
//
// It ships static translation tables (embedded YAML keyed by the English
// phrase), reads and renders the "key" = "value"; format, and extracts the
// user-visible Text("...") literals from Swift sources.
package localization
