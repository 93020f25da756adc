// Command bstdemo builds a binary search tree from integer keys on the
// command line and prints its traversals, shape and search paths.
//
//	bstdemo demo
//	bstdemo -dup left walk -order pre 5 3 8 5
//	bstdemo find -key 12 15 10 20 12
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/google/subcommands"
)

// dupRoute is the global -dup flag shared by every subcommand.
var dupRoute = flag.String("dup", "right", "duplicate key route: right or left")

func main() {
	log.SetFlags(0)
	log.SetPrefix("bstdemo: ")

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&cmdDemo{}, "")
	subcommands.Register(&cmdWalk{}, "")
	subcommands.Register(&cmdStats{}, "")
	subcommands.Register(&cmdFind{}, "")
	subcommands.Register(&cmdTree{}, "")
	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
