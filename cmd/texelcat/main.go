// Copyright © 2025 Texelcat contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelcat/main.go
// Summary: Command line entry point for the texelcat source renderer.
// Usage: texelcat [flags] [file ...]; with no files (or "-") it renders stdin.
// Notes: Wires user defaults, terminal capabilities and the printer together.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/framegrace/texelcat/config"
	"github.com/framegrace/texelcat/printer"
	"github.com/framegrace/texelcat/termcaps"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	log.SetFlags(0)
	log.SetPrefix("texelcat: ")

	var (
		language string
		columns  int
		tabs     int
	)
	flag.StringVar(&language, "language", "", "force the highlight language (name, alias or extension)")
	flag.StringVar(&language, "l", "", "force the highlight language (shorthand)")
	flag.IntVar(&columns, "columns", 0, "maximum output columns per line (0 = unlimited)")
	flag.IntVar(&columns, "c", 0, "maximum output columns per line (shorthand)")
	flag.IntVar(&tabs, "tabs", 4, "tab stop width (0 passes tabs through)")
	flag.IntVar(&tabs, "t", 4, "tab stop width (shorthand)")
	theme := flag.String("theme", "", "color theme name (empty = bundled theme)")
	fit := flag.Bool("fit", false, "clamp output to the terminal width")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("texelcat", version)
		return 0
	}

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg := printer.DefaultConfig()
	cfg.TrueColor = termcaps.TrueColor(os.Getenv)

	if path, err := config.DefaultPath(); err == nil {
		applyDefaults(&cfg, config.Load(path))
	}
	if set["language"] || set["l"] {
		cfg.Language = language
	}
	if set["columns"] || set["c"] {
		cfg.Columns = columns
	}
	if set["tabs"] || set["t"] {
		cfg.Tabs = tabs
	}
	if set["theme"] {
		cfg.Theme = *theme
	}

	if cfg.Columns < 0 {
		log.Printf("columns must be 0 or positive, got %d", cfg.Columns)
		return 2
	}
	if cfg.Tabs < 0 {
		log.Printf("tab width must be 0 or positive, got %d", cfg.Tabs)
		return 2
	}
	if *fit {
		if w := termcaps.Width(os.Stdout); w > 0 && (cfg.Columns == 0 || cfg.Columns > w) {
			cfg.Columns = w
		}
	}

	p := printer.New(cfg)
	out := bufio.NewWriter(os.Stdout)

	if err := render(p, out, flag.Args()); err != nil {
		out.Flush()
		log.Printf("%v", err)
		return 1
	}
	if err := out.Flush(); err != nil {
		log.Printf("write stdout: %v", err)
		return 1
	}
	return 0
}

// render prints each argument in order, stopping at the first failure
// so a bad file aborts the whole run. No arguments, or a single "-",
// means stdin.
func render(p *printer.Printer, out io.Writer, files []string) error {
	if len(files) == 0 || (len(files) == 1 && files[0] == "-") {
		return p.Print(out, os.Stdin)
	}
	for _, path := range files {
		if err := p.PrintFile(out, path); err != nil {
			return err
		}
	}
	return nil
}

// applyDefaults layers the user defaults file over the built-ins.
// Flags are applied afterwards and win.
func applyDefaults(cfg *printer.Config, d config.Defaults) {
	if d.Language != nil {
		cfg.Language = *d.Language
	}
	if d.Columns != nil {
		cfg.Columns = *d.Columns
	}
	if d.Tabs != nil {
		cfg.Tabs = *d.Tabs
	}
	if d.Theme != nil {
		cfg.Theme = *d.Theme
	}
}
