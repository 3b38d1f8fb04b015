package main

import "github.com/rx-tui/rx-tui/cmd"

// Overridden at build time with -ldflags "-X main.Version=... -X main.Build=...".
var (
	Version = "0.1.0"
	Build   = "dev"
)

func main() {
	cmd.Execute(Version, Build)
}
