// seehuhn.de/go/funcgraph - plot the graphs of real functions
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command funcgraph plots the graphs of real functions.
//
// Usage:
//
//	funcgraph [flags] expr...
//
// Every expression is a function of x, for example "sin(x)" or
// "x^2/100".  The image is written to graph.png, or graph.gif for
// animations.  Plot descriptions can also be read from a TOML or YAML
// file using -config; flags given on the command line take precedence
// over the file.  Without expressions and without a config file,
// expressions are read interactively from standard input.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/muesli/termenv"

	"seehuhn.de/go/funcgraph"
	"seehuhn.de/go/funcgraph/config"
	"seehuhn.de/go/funcgraph/output"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

var errNoExpressions = errors.New("no expressions given")

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// cli holds the command line settings of one invocation.
type cli struct {
	size, width, height int
	graduation          int
	animated            bool
	legend              bool
	bounds              bool
	file                string
	format              string
	scale               int
	timing              bool
	verbose, debug      bool
	quiet               bool
	config              string
	watch               bool

	set       map[string]bool // flags given on the command line
	outFormat output.Format

	stdout, stderr io.Writer
	logger         *slog.Logger
	term           *termenv.Output
}

func (c *cli) flagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("funcgraph", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: funcgraph [flags] expr...")
		fs.PrintDefaults()
	}

	fs.IntVar(&c.size, "s", funcgraph.DefaultSize, "width and height of the graph in pixels")
	fs.IntVar(&c.width, "W", 0, "width of the graph in pixels, overrides -s")
	fs.IntVar(&c.height, "H", 0, "height of the graph in pixels, overrides -s")
	fs.IntVar(&c.graduation, "g", config.DefaultGraduation, "domain units from the centre to the right edge, 0 for one unit per pixel")
	fs.BoolVar(&c.animated, "a", false, "write an animated GIF")
	fs.BoolVar(&c.legend, "legend", false, "list the expressions in the top left corner")
	fs.BoolVar(&c.bounds, "bounds", true, "treat values above and below the canvas as gaps")
	fs.StringVar(&c.file, "f", config.DefaultOutput, "output file name, `-` for standard output")
	fs.StringVar(&c.format, "format", "", "output format: png, gif, bmp, tiff or pdf")
	fs.IntVar(&c.scale, "scale", 1, "enlarge the output image by this factor")
	fs.BoolVar(&c.timing, "t", false, "print timing information")
	fs.BoolVar(&c.verbose, "v", false, "report progress")
	fs.BoolVar(&c.debug, "vv", false, "report every failed sample and skipped segment")
	fs.BoolVar(&c.quiet, "q", false, "only report errors")
	fs.StringVar(&c.config, "config", "", "read the plot description from a TOML or YAML `file`")
	fs.BoolVar(&c.watch, "watch", false, "redraw whenever the config file changes")
	return fs
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	c := &cli{stdout: stdout, stderr: stderr}
	fs := c.flagSet()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	c.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { c.set[f.Name] = true })

	format, err := output.ParseFormat(c.format)
	if err != nil {
		fmt.Fprintf(stderr, "funcgraph: %v\n", err)
		return exitUsage
	}
	c.outFormat = format

	level := levelFromFlags(c.debug, c.verbose, c.quiet)
	c.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	c.term = termenv.NewOutput(stdout)

	exprs := fs.Args()
	switch {
	case c.watch && c.config == "":
		fmt.Fprintln(stderr, "funcgraph: -watch needs -config")
		return exitUsage
	case c.config == "" && len(exprs) == 0:
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
		defer stop()
		return c.interactive(ctx, stdin)
	case c.watch:
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
		defer stop()
		err = c.watchConfig(ctx, exprs)
	default:
		_, err = c.render(exprs)
	}
	if err != nil {
		fmt.Fprintf(stderr, "funcgraph: %v\n", err)
		if errors.Is(err, errNoExpressions) || errors.Is(err, output.ErrScale) {
			return exitUsage
		}
		return exitFailure
	}
	return exitOK
}

// levelFromFlags determines the log level from the -vv, -v and -q flags.
func levelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// settings combines the config file, if any, with the command line.
func (c *cli) settings(extra []string) (funcgraph.Colored, *funcgraph.Options, *output.File, error) {
	var exprs funcgraph.Colored
	opt := &funcgraph.Options{
		Width:      funcgraph.DefaultSize,
		Height:     funcgraph.DefaultSize,
		Graduation: config.DefaultGraduation,
	}
	dst := &output.File{Path: config.DefaultOutput}

	if c.config != "" {
		cf, err := config.Load(c.config)
		if err != nil {
			return nil, nil, nil, err
		}
		exprs, err = cf.Expressions()
		if err != nil {
			return nil, nil, nil, err
		}
		dst, err = cf.Destination()
		if err != nil {
			return nil, nil, nil, err
		}
		opt = cf.Options()
	}

	if c.set["s"] {
		opt.Width, opt.Height = c.size, c.size
	}
	if c.set["W"] {
		opt.Width = c.width
	}
	if c.set["H"] {
		opt.Height = c.height
	}
	if c.set["g"] {
		opt.Graduation = c.graduation
	}
	if c.set["a"] {
		opt.Animated = c.animated
	}
	if c.set["legend"] {
		opt.Legend = c.legend
	}
	if c.set["bounds"] {
		opt.Unbounded = !c.bounds
	}
	if c.set["f"] {
		dst.Path = c.file
	}
	if c.set["format"] {
		dst.Format = c.outFormat
	}
	if c.set["scale"] {
		dst.Scale = c.scale
	}
	opt.Logger = c.logger

	for _, e := range extra {
		exprs = append(exprs, funcgraph.Curve{Expr: e})
	}
	if len(exprs) == 0 {
		return nil, nil, nil, errNoExpressions
	}
	if err := output.CheckScale(opt.Width, opt.Height, dst.Scale); err != nil {
		return nil, nil, nil, err
	}
	return exprs, opt, dst, nil
}

// render draws the graph and writes it to the output file.  The name of
// the file is returned.
func (c *cli) render(extra []string) (string, error) {
	exprs, opt, dst, err := c.settings(extra)
	if err != nil {
		return "", err
	}
	res, err := funcgraph.Plot(exprs, opt)
	if err != nil {
		return "", err
	}
	if err := res.Save(dst); err != nil {
		return "", err
	}
	name, format := dst.Name(res)
	c.logger.Info("graph written", "file", name, "format", format)
	if c.timing {
		c.report(res)
	}
	return name, nil
}

// report prints the timing information and a summary for each curve.
func (c *cli) report(res *funcgraph.Result) {
	label := func(s string) string {
		return c.term.String(s).Bold().String()
	}
	fmt.Fprintf(c.stdout, "%s %v\n", label("Calculation time:"), res.Stats.Calculation)
	fmt.Fprintf(c.stdout, "%s %v\n", label("       Draw time:"), res.Stats.Draw)
	fmt.Fprintf(c.stdout, "%s %v\n", label("       Save time:"), res.Stats.Save)
	for _, cs := range res.Curves {
		swatch := c.term.String("██").Foreground(c.term.Color(funcgraph.FormatColor(cs.Color)))
		fmt.Fprintf(c.stdout, "%s %s: %d segments, %d gaps, %d jumps\n",
			swatch, cs.Expr, cs.Drawn, cs.Gaps, cs.Jumps)
	}
}
