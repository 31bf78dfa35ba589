package main

import "runtime/debug"

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = ""

func init() {
	if Version != "" {
		return
	}
	Version = moduleVersion()
}

// moduleVersion falls back to the version recorded by `go install`, or "dev".
func moduleVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" || info.Main.Version == "(devel)" {
		return "dev"
	}
	return info.Main.Version
}
