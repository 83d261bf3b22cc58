// Package buildinfo exposes version information stamped at build time.
package buildinfo

import "runtime"

// These vars are set at build time via ldflags:
// -X github.com/rashtad-web/rockgyo-kakao-analyze/pkg/buildinfo.Version=v1.2.0
// -X github.com/rashtad-web/rockgyo-kakao-analyze/pkg/buildinfo.Commit=3fa1c02
// -X github.com/rashtad-web/rockgyo-kakao-analyze/pkg/buildinfo.BuildTime=2026-08-14T09:30:00Z
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Info holds build information for the binary.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
}

// Get returns the build info for this binary.
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
	}
}

// String returns a human-readable one-liner like "v1.2.0 (3fa1c02, 2026-08-14T09:30:00Z)"
func String() string {
	return Version + " (" + Commit + ", " + BuildTime + ")"
}
