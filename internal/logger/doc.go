// Package logger wraps zap with:
//   - a global sugared logger writing a compact console format,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level parsing for the --log-level flag,
//   - leveled convenience functions (Infof, WarnKV, ErrorKV, etc.).
//
// Every tool attaches a named logger to its context and the packages below
// pull it back out, so a single run prints one consistent progress stream.
package logger
