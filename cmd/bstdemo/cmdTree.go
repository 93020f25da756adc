package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/google/subcommands"
)

type cmdTree struct {
}

func (cmd *cmdTree) Name() string     { return "tree" }
func (cmd *cmdTree) Synopsis() string { return "print the tree as an indented diagram" }
func (cmd *cmdTree) Usage() string    { return "tree key...\n" }

func (cmd *cmdTree) SetFlags(f *flag.FlagSet) {
}

func (cmd *cmdTree) Execute(_ context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	t, status := treeFromArgs("tree", f)
	if t == nil {
		return status
	}
	if err := t.Fprint(os.Stdout); err != nil {
		log.Println("tree:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
