// internal/version/version.go
package version

// Version is the toolkit version, overridable at build time with
// -ldflags "-X orfscan/internal/version.Version=...".
var Version = "0.3.0"
