// Package localizer keeps the Localizable.strings files of the app in step
// with the Text() literals of its Swift sources.
//
// Sync extracts the literals and rewrites every language file, AddFormats
// appends the printf-style patterns that SwiftUI looks up for interpolated
// text, Scan reports those interpolations and Lookup answers a single
// translation from the built-in tables.
package localizer
