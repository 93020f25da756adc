package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/google/subcommands"
)

type cmdWalk struct {
	order string
}

func (cmd *cmdWalk) Name() string     { return "walk" }
func (cmd *cmdWalk) Synopsis() string { return "print one depth-first traversal" }
func (cmd *cmdWalk) Usage() string    { return "walk [-order in|pre|post] key...\n" }

func (cmd *cmdWalk) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.order, "order", "in", "traversal order: in, pre or post")
}

func (cmd *cmdWalk) Execute(_ context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	o, err := parseOrder(cmd.order)
	if err != nil {
		log.Println("walk:", err)
		return subcommands.ExitUsageError
	}
	t, status := treeFromArgs("walk", f)
	if t == nil {
		return status
	}
	if err = writeTraversal(os.Stdout, t, o); err != nil {
		log.Println("walk:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
