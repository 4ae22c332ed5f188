package main

import (
	"fmt"
	"strconv"
	"strings"

	embedhtml "github.com/fwojciec/embedkit/html"
)

// Run executes the render image command.
func (c *RenderImageCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, embedhtml.Image(c.Src, c.Alt, c.Width, c.Height))
	return nil
}

// Run executes the render video command.
func (c *RenderVideoCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, embedhtml.Video(c.Poster, c.Sources, c.Width, c.Height))
	return nil
}

// Run executes the render audio command.
func (c *RenderAudioCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, embedhtml.Audio(c.Sources))
	return nil
}

// Run executes the render iframe command.
func (c *RenderIframeCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, embedhtml.Iframe(c.Src, parseDimension(c.Width), parseDimension(c.Height), c.Style))
	return nil
}

// Run executes the render google command.
func (c *RenderGoogleCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, embedhtml.GoogleViewer(c.Src))
	return nil
}

// Run executes the render flash command.
func (c *RenderFlashCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, embedhtml.Flash(c.Src, c.Width, c.Height))
	return nil
}

// parseDimension treats plain integers as pixels and anything else as a
// CSS length.
func parseDimension(s string) embedhtml.Dimension {
	s = strings.TrimSpace(s)
	if s == "" {
		return embedhtml.Dimension{}
	}
	if n, err := strconv.Atoi(s); err == nil {
		return embedhtml.Px(n)
	}
	return embedhtml.CSS(s)
}
