package main

import (
	"fmt"

	"github.com/fwojciec/embedkit"
)

// Run executes the links command.
func (c *LinksCmd) Run(deps *Dependencies) error {
	files, err := parseFiles(deps, c.Files, c.Concurrency)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", embedkit.ErrorMessage(err))
		return err
	}

	for i, f := range files {
		printHeader(deps.Stdout, files, i)
		for _, l := range embedkit.ExtractLinks(f.doc) {
			fmt.Fprintf(deps.Stdout, "%s\t%s\n", l.Rel, l.Href)
		}
	}

	return nil
}
