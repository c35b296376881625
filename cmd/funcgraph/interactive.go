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

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"seehuhn.de/go/funcgraph/expr"
)

// interactive reads expressions from stdin, one per line, and plots each
// of them.  Errors are reported and the next line is read.  The prompt
// ends at the end of input, on :q, or when ctx is cancelled.
func (c *cli) interactive(ctx context.Context, stdin io.Reader) int {
	fmt.Fprint(c.stdout,
		"Welcome to this simple function graph generator.\n"+
			"Enter an expression in x, :help lists the known names, :q quits.\n")

	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		var err error
		defer func() {
			errc <- err
			close(lines)
		}()
		sc := bufio.NewScanner(stdin)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		err = sc.Err()
	}()

	for {
		fmt.Fprint(c.stdout, ": ")
		var text string
		var ok bool
		select {
		case <-ctx.Done():
			fmt.Fprintln(c.stdout)
			return exitOK
		case text, ok = <-lines:
		}
		if !ok {
			break
		}
		line := strings.TrimSpace(text)
		switch line {
		case "":
			continue
		case ":q", ":quit":
			return exitOK
		case ":help":
			c.help()
			continue
		}

		name, err := c.render([]string{line})
		if err != nil {
			fmt.Fprintf(c.stderr, "funcgraph: %v\n", err)
			continue
		}
		fmt.Fprintf(c.stdout, "wrote %s\n", name)
	}
	fmt.Fprintln(c.stdout)

	if err := <-errc; err != nil {
		fmt.Fprintf(c.stderr, "funcgraph: %v\n", err)
		return exitFailure
	}
	return exitOK
}

func (c *cli) help() {
	fmt.Fprintln(c.stdout, "operators: + - * / // % ^ **")
	fmt.Fprintln(c.stdout, "names:", strings.Join(expr.Names(), " "))
}

// watchConfig draws the graph and then redraws it every time the config
// file is written, until ctx is cancelled.  Errors during redraws are
// logged and do not stop the loop.
func (c *cli) watchConfig(ctx context.Context, extra []string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// Editors often replace the file instead of writing it, so the
	// directory is watched.
	if err := w.Add(filepath.Dir(c.config)); err != nil {
		return err
	}
	target := filepath.Clean(c.config)

	if _, err := c.render(extra); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			c.logger.Info("config changed", "file", event.Name)
			if _, err := c.render(extra); err != nil {
				c.logger.Error("redraw failed", "err", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			c.logger.Warn("watching config", "err", err)
		}
	}
}
