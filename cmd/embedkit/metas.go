package main

import (
	"fmt"

	"github.com/fwojciec/embedkit"
)

// Run executes the metas command.
func (c *MetasCmd) Run(deps *Dependencies) error {
	files, err := parseFiles(deps, c.Files, c.Concurrency)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", embedkit.ErrorMessage(err))
		return err
	}

	for i, f := range files {
		printHeader(deps.Stdout, files, i)
		for _, m := range embedkit.ExtractMetas(f.doc) {
			if m.Name == "" && m.Value == "" {
				continue
			}
			fmt.Fprintf(deps.Stdout, "%s\t%s\n", m.Name, m.Value)
		}
	}

	return nil
}
