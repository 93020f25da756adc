package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/google/subcommands"
)

type cmdFind struct {
	key int
}

func (cmd *cmdFind) Name() string     { return "find" }
func (cmd *cmdFind) Synopsis() string { return "search a key and print the visited path" }
func (cmd *cmdFind) Usage() string    { return "find -key N key...\n" }

func (cmd *cmdFind) SetFlags(f *flag.FlagSet) {
	f.IntVar(&cmd.key, "key", 0, "key to search for")
}

func (cmd *cmdFind) Execute(_ context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	t, status := treeFromArgs("find", f)
	if t == nil {
		return status
	}
	if err := writeFind(os.Stdout, t, cmd.key); err != nil {
		log.Println("find:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
