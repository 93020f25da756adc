package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/google/subcommands"

	"github.com/katalvlaran/bstree/bst"
)

type cmdStats struct {
}

func (cmd *cmdStats) Name() string     { return "stats" }
func (cmd *cmdStats) Synopsis() string { return "print size, height, max degree, min and max" }
func (cmd *cmdStats) Usage() string    { return "stats key...\n" }

func (cmd *cmdStats) SetFlags(f *flag.FlagSet) {
}

func (cmd *cmdStats) Execute(_ context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	t, status := treeFromArgs("stats", f)
	if t == nil {
		return status
	}
	if err := writeStats(os.Stdout, t); err != nil {
		log.Println("stats:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// treeFromArgs builds a tree from the positional arguments of f using
// the global -dup flag. On failure it logs and returns a nil tree with
// the exit status to report.
func treeFromArgs(name string, f *flag.FlagSet) (*bst.Tree[int], subcommands.ExitStatus) {
	keys, err := parseKeys(f.Args())
	if err != nil {
		log.Printf("%s: %v", name, err)
		return nil, subcommands.ExitUsageError
	}
	t, err := buildTree(*dupRoute, keys)
	if err != nil {
		log.Printf("%s: %v", name, err)
		return nil, subcommands.ExitUsageError
	}
	return t, subcommands.ExitSuccess
}
