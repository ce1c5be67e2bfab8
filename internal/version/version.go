// internal/version/version.go
package version

// Version is stamped at release time.
var Version = "0.4.0"
