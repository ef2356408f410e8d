package app

import (
	"strconv"
	"strings"

	"github.com/swtools/swcli/internal/version"
)

// Build metadata, set at link time:
//
//	go build -ldflags "-X github.com/swtools/swcli/internal/app.Version=1.2.0 \
//	  -X github.com/swtools/swcli/internal/app.Commit=$(git rev-parse HEAD) \
//	  -X github.com/swtools/swcli/internal/app.BuildHost=$(hostname) \
//	  -X github.com/swtools/swcli/internal/app.BuildTimestamp=$(date +%s000)"
var (
	Version        = "dev"
	Commit         = "unknown"
	BuildHost      = "unknown"
	BuildTimestamp = "0" // milliseconds since the Unix epoch
)

// VersionInfo assembles the --version text from the link-time variables.
// An unparsable BuildTimestamp reads as the epoch.
func VersionInfo(copyright, licenseName, licenseURL string) version.Version {
	ms, err := strconv.ParseInt(strings.TrimSpace(BuildTimestamp), 10, 64)
	if err != nil {
		ms = 0
	}

	return version.Version{
		Version:     Version,
		Copyright:   copyright,
		LicenseName: licenseName,
		LicenseURL:  licenseURL,
		Build: version.BuildInfo{
			Host:        BuildHost,
			CommitSHA:   Commit,
			TimestampMs: ms,
		},
	}
}
