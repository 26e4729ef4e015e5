package main

import (
	"fmt"
	"os"

	"fjacquet/nexus-classifier/cmd/batch"
	"fjacquet/nexus-classifier/cmd/classify"
	"fjacquet/nexus-classifier/cmd/root"
	"fjacquet/nexus-classifier/cmd/serve"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(serve.Cmd)
	root.Cmd.AddCommand(classify.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
