package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/embedkit"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Parser embedkit.Parser

	// Logger is set when debug logging is enabled.
	Logger *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug bool `env:"EMBEDKIT_DEBUG" help:"Log parsing and URL resolution to stderr"`

	Metas   MetasCmd   `cmd:"" help:"List meta tags of HTML documents"`
	Links   LinksCmd   `cmd:"" help:"List link tags of HTML documents"`
	Collect CollectCmd `cmd:"" help:"Merge provider values for a field into ranked candidates"`
	Render  RenderCmd  `cmd:"" help:"Render an HTML embed fragment"`
}

// MetasCmd is the "metas" subcommand.
type MetasCmd struct {
	Files       []string `arg:"" help:"HTML files to read (- for stdin)"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent parse limit"`
}

// LinksCmd is the "links" subcommand.
type LinksCmd struct {
	Files       []string `arg:"" help:"HTML files to read (- for stdin)"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent parse limit"`
}

// CollectCmd is the "collect" subcommand.
type CollectCmd struct {
	Field  string `arg:"" help:"Field to collect (title, description, image, ...)"`
	File   string `arg:"" help:"JSON file with provider values (- for stdin)"`
	Base   string `env:"EMBEDKIT_BASE_URL" help:"Resolve URL fields against this base URL"`
	Pick   string `enum:"all,first,popular,largest" default:"all" help:"Candidate selection (all, first, popular, largest)"`
	Prefer string `help:"Move this value to the front of the candidates"`
	JSON   bool   `help:"Print candidates as JSON"`
}

// RenderCmd groups the fragment rendering subcommands.
type RenderCmd struct {
	Image  RenderImageCmd  `cmd:"" help:"Render an <img> element"`
	Video  RenderVideoCmd  `cmd:"" help:"Render a <video> element"`
	Audio  RenderAudioCmd  `cmd:"" help:"Render an <audio> element"`
	Iframe RenderIframeCmd `cmd:"" help:"Render an <iframe> element"`
	Google RenderGoogleCmd `cmd:"" help:"Render a Google Docs viewer iframe"`
	Flash  RenderFlashCmd  `cmd:"" help:"Render a Flash object"`
}

// RenderImageCmd is the "render image" subcommand.
type RenderImageCmd struct {
	Src    string `arg:"" help:"Image URL"`
	Alt    string `help:"Alternative text"`
	Width  int    `help:"Width in pixels (0 omits)"`
	Height int    `help:"Height in pixels (0 omits)"`
}

// RenderVideoCmd is the "render video" subcommand.
type RenderVideoCmd struct {
	Sources []string `arg:"" help:"Video source URLs"`
	Poster  string   `help:"Poster image URL"`
	Width   int      `help:"Width in pixels (0 omits)"`
	Height  int      `help:"Height in pixels (0 omits)"`
}

// RenderAudioCmd is the "render audio" subcommand.
type RenderAudioCmd struct {
	Sources []string `arg:"" help:"Audio source URLs"`
}

// RenderIframeCmd is the "render iframe" subcommand.
type RenderIframeCmd struct {
	Src    string `arg:"" help:"Frame URL"`
	Width  string `help:"Width as pixels or CSS length (default 600px)"`
	Height string `help:"Height as pixels or CSS length (default 400px)"`
	Style  string `help:"Extra inline style"`
}

// RenderGoogleCmd is the "render google" subcommand.
type RenderGoogleCmd struct {
	Src string `arg:"" help:"Document URL"`
}

// RenderFlashCmd is the "render flash" subcommand.
type RenderFlashCmd struct {
	Src    string `arg:"" help:"Flash movie URL"`
	Width  int    `help:"Width in pixels (default 600)"`
	Height int    `help:"Height in pixels (default 400)"`
}
