package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/google/subcommands"
)

type cmdDemo struct {
}

func (cmd *cmdDemo) Name() string     { return "demo" }
func (cmd *cmdDemo) Synopsis() string { return "run the built-in twelve-key example" }
func (cmd *cmdDemo) Usage() string    { return "demo\n" }

func (cmd *cmdDemo) SetFlags(f *flag.FlagSet) {
}

func (cmd *cmdDemo) Execute(_ context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	if err := runDemo(os.Stdout, *dupRoute); err != nil {
		log.Println("demo:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
