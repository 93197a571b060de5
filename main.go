package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"flaggallery/app"
	"flaggallery/hal"
	"flaggallery/internal/buildinfo"
)

func main() {
	var (
		configPath string
		version    bool
		immediate  bool
		snapshots  []string
		cli        = app.DefaultConfig()
	)
	flag.StringVar(&configPath, "config", "", "TOML config file.")
	flag.BoolVar(&version, "version", false, "Print the version and exit.")
	flag.BoolVar(&cli.Headless, "headless", false, "Draw once without a window.")
	flag.IntVar(&cli.Width, "width", cli.Width, "Window width in pixels.")
	flag.IntVar(&cli.Height, "height", cli.Height, "Window height in pixels.")
	flag.Float64Var(&cli.CellWidth, "cell", cli.CellWidth, "Cell width.")
	flag.Float64Var(&cli.Border, "border", cli.Border, "Border around the grid.")
	flag.StringVar(&cli.Labels, "labels", cli.Labels, "none|below|over.")
	flag.StringVar(&cli.Ratio, "ratio", cli.Ratio, "fixed|flag.")
	flag.StringVar(&cli.Sort, "sort", cli.Sort, "code|name.")
	flag.StringVar(&cli.Lang, "lang", "", "Display language (default: user locale).")
	flag.StringVar(&cli.NamesDir, "names", "", "Directory with names_<lang>.txt files.")
	flag.BoolVar(&immediate, "immediate", false, "Show the drawing step by step as it is made.")
	flag.BoolVar(&cli.Debug, "debug", false, "Draw the primitive test sheet.")
	flag.IntVar(&cli.Preview, "flag", 0, "Draw only the flag with this numeric code.")
	flag.Func("snapshot", "Write the drawing to a .png or .svg file (repeatable).", func(s string) error {
		for _, p := range strings.Split(s, ",") {
			if p = strings.TrimSpace(p); p != "" {
				snapshots = append(snapshots, p)
			}
		}
		return nil
	})
	flag.Parse()

	if version {
		fmt.Println("flaggallery", buildinfo.String())
		return
	}

	cfg := app.DefaultConfig()
	if configPath != "" {
		if err := app.LoadFile(configPath, &cfg); err != nil {
			fatal(err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "headless":
			cfg.Headless = cli.Headless
		case "width":
			cfg.Width = cli.Width
		case "height":
			cfg.Height = cli.Height
		case "cell":
			cfg.CellWidth = cli.CellWidth
		case "border":
			cfg.Border = cli.Border
		case "labels":
			cfg.Labels = cli.Labels
		case "ratio":
			cfg.Ratio = cli.Ratio
		case "sort":
			cfg.Sort = cli.Sort
		case "lang":
			cfg.Lang = cli.Lang
		case "names":
			cfg.NamesDir = cli.NamesDir
		case "immediate":
			cfg.Buffered = !immediate
		case "debug":
			cfg.Debug = cli.Debug
		case "flag":
			cfg.Preview = cli.Preview
		case "snapshot":
			cfg.Snapshots = snapshots
		}
	})

	log := hal.NewLogger(os.Stderr)
	s, err := app.New(cfg, log)
	if err != nil {
		fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := s.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
