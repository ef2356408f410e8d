// Package version holds the value objects printed by --version.
package version

import (
	"fmt"
	"strings"
	"time"
)

const (
	shortSHALen = 7

	timestampLayout       = "2006-01-02T15:04:05-07:00"
	timestampLayoutMillis = "2006-01-02T15:04:05.000-07:00"
)

// BuildInfo describes where and from what the binary was built.
type BuildInfo struct {
	Host        string
	CommitSHA   string
	TimestampMs int64 // milliseconds since the Unix epoch
}

// ShortSHA returns the first seven characters of the commit.
func (b BuildInfo) ShortSHA() string {
	if len(b.CommitSHA) > shortSHALen {
		return b.CommitSHA[:shortSHALen]
	}
	return b.CommitSHA
}

// Time returns the build time in UTC.
func (b BuildInfo) Time() time.Time {
	return time.UnixMilli(b.TimestampMs).UTC()
}

// Timestamp formats the build time as RFC 3339 with an explicit +00:00 offset.
// Milliseconds are only shown when non-zero.
func (b BuildInfo) Timestamp() string {
	if b.TimestampMs%1000 != 0 {
		return b.Time().Format(timestampLayoutMillis)
	}
	return b.Time().Format(timestampLayout)
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("Build: %s @ %s (%s)", b.ShortSHA(), b.Host, b.Timestamp())
}

// Version is everything --version prints.
type Version struct {
	Version     string
	Copyright   string
	LicenseName string
	LicenseURL  string
	Build       BuildInfo
}

// String renders the multi-line display text. The last line has no newline.
func (v Version) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Version: %s\n", v.Version)
	fmt.Fprintf(&b, "%s\n", v.Copyright)
	fmt.Fprintf(&b, "%s License: %s\n", v.LicenseName, v.LicenseURL)
	b.WriteString(v.Build.String())
	return b.String()
}
