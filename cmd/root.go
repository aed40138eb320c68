// Package cmd provides the command-line interface for blogc.
package cmd

import (
	kongcompletion "github.com/jotaen/kong-completion"
)

// CLI represents the root command structure for Kong.
type CLI struct {
	Build      BuildCmd                  `cmd:"" help:"Compile sources through a template" default:"withargs"` //nolint:lll,revive // Kong struct tag with alignment
	Version    VersionCmd                `cmd:"" help:"Show version info"`                                     //nolint:lll,revive // Kong struct tag with alignment
	Completion kongcompletion.Completion `cmd:"" help:"Generate shell completions"`                            //nolint:lll,revive // Kong struct tag with alignment
}
