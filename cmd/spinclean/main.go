package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("spinclean"),
		kong.Description("Run the clean or build commands declared in spin-clean.toml."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(&cli); err != nil {
		fmt.Fprintf(os.Stderr, "spinclean: %v\n", err)
		os.Exit(1)
	}
}
