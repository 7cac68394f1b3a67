package main

import (
	"os"

	"github.com/keshon/svcs/internal/cli"
)

func main() {
	root := cli.NewRootCmd(cli.Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr})
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
