package models

import "fmt"

const notAvailable = "N/A"

// AppBuildInfo is the build metadata injected by linker flags into the
// server and admin-setup binaries. Missing values read as "N/A".
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orNotAvailable(version),
		date:    orNotAvailable(date),
		commit:  orNotAvailable(commit),
	}
}

func (a AppBuildInfo) Version() string {
	return a.version
}

func (a AppBuildInfo) Date() string {
	return a.date
}

func (a AppBuildInfo) Commit() string {
	return a.commit
}

// Known reports whether a version was injected at build time.
func (a AppBuildInfo) Known() bool {
	return a.version != "" && a.version != notAvailable
}

// String renders the three "Build ...:" lines printed on startup.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", a.version, a.date, a.commit)
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
