package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/fwojciec/embedkit"
	"golang.org/x/sync/errgroup"
)

// parsedFile is a parsed input kept at its argument position.
type parsedFile struct {
	name string
	doc  embedkit.Document
}

// parseFiles parses files concurrently and returns them in argument order.
// Stdin may be listed at most once.
func parseFiles(deps *Dependencies, files []string, concurrency int) ([]parsedFile, error) {
	if concurrency <= 0 {
		concurrency = 4
	}

	stdin := 0
	for _, name := range files {
		if name == "-" {
			stdin++
		}
	}
	if stdin > 1 {
		return nil, embedkit.Errorf(embedkit.EINVALID, "stdin (-) can only be read once")
	}

	results := make([]parsedFile, len(files))

	g, gctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(concurrency)

	for i, name := range files {
		i, name := i, name
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			doc, err := parseFile(deps, name)
			if err != nil {
				return err
			}
			results[i] = parsedFile{name: name, doc: doc}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func parseFile(deps *Dependencies, name string) (embedkit.Document, error) {
	r, closeFn, err := openInput(deps, name)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	return deps.Parser.Parse(r)
}

// openInput opens a named file, or stdin for "-".
func openInput(deps *Dependencies, name string) (io.Reader, func(), error) {
	if name == "-" {
		return deps.Stdin, func() {}, nil
	}

	f, err := os.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil, embedkit.Errorf(embedkit.ENOTFOUND, "file %q not found", name)
	} else if err != nil {
		return nil, nil, fmt.Errorf("failed to open %q: %w", name, err)
	}
	return f, func() { _ = f.Close() }, nil
}

// printHeader writes a "# name" header when several files are listed.
func printHeader(w io.Writer, files []parsedFile, i int) {
	if len(files) < 2 {
		return
	}
	if i > 0 {
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "# %s\n", files[i].name)
}
