package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"

	"github.com/jextract/jx"
)

var errExclusiveFlags = errors.New("flags are mutually exclusive")

func main() {
	if err := rootCommand().Run(context.Background(), os.Args); err != nil {
		slog.Error("jx failed", "error", err)
		os.Exit(1)
	}
}

func rootCommand() *cli.Command {
	return &cli.Command{
		Name:      "jx",
		Usage:     "extract fields easily from json",
		ArgsUsage: "[fields...]",
		Description: "Reads JSON records from stdin (or --infile) and prints the " +
			"requested fields as aligned columns, or delimited text with -t/-d. " +
			"Arrays, pretty-printed objects and paginated {\"items\": [...]} " +
			"responses are detected automatically unless -s is given. Nested " +
			"fields are reachable after flattening with -F or -f, e.g. " +
			"addresses_0_zipcode or addresses.0.zipcode.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "tsv",
				Aliases: []string{"t"},
				Usage:   "tab-delimited output, shorthand for -d $'\\t'",
			},
			&cli.StringFlag{
				Name:    "delimiter",
				Aliases: []string{"d"},
				Usage:   "delimiter for output fields/columns",
			},
			&cli.BoolFlag{
				Name:    "names",
				Aliases: []string{"n"},
				Usage:   "show column names from the initial object and exit",
			},
			&cli.BoolFlag{
				Name:    "all-names",
				Aliases: []string{"N"},
				Usage:   "print unique key names from all objects in the order they appear",
			},
			&cli.BoolFlag{
				Name:    "flatten",
				Aliases: []string{"F"},
				Usage:   "flatten json before selecting, joining keys with --joiner",
			},
			&cli.BoolFlag{
				Name:    "flatten-dot",
				Aliases: []string{"f"},
				Usage:   "flatten json before selecting, joining keys with '.'",
			},
			&cli.StringFlag{
				Name:    "joiner",
				Aliases: []string{"j"},
				Value:   jx.DefaultJoiner,
				Usage:   "joiner for key names when flattening levels, e.g. \"key1_key2\"",
			},
			&cli.BoolFlag{
				Name:    "no-headers",
				Aliases: []string{"H"},
				Usage:   "skip header printing",
			},
			&cli.BoolFlag{
				Name:    "no-smart",
				Aliases: []string{"s"},
				Usage:   "disable smart detection of arrays and paginated responses",
			},
			&cli.BoolFlag{
				Name:    "whitespace",
				Aliases: []string{"w"},
				Usage:   "translate whitespace to _ in output fields",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"D"},
				Usage:   "enable debug logging",
			},
			&cli.StringFlag{
				Name:    "infile",
				Aliases: []string{"i"},
				Usage:   "alternate input file (default is stdin)",
			},
		},
		Action: run,
	}
}

func run(_ context.Context, cmd *cli.Command) error {
	setupLogging(cmd.Root().ErrWriter, cmd.Bool("debug"))

	for _, pair := range [][2]string{
		{"tsv", "delimiter"},
		{"names", "all-names"},
		{"flatten", "flatten-dot"},
	} {
		if cmd.IsSet(pair[0]) && cmd.IsSet(pair[1]) {
			return fmt.Errorf("%w: --%s and --%s", errExclusiveFlags, pair[0], pair[1])
		}
	}

	opts := jx.Options{
		Flatten:        cmd.Bool("flatten"),
		Joiner:         cmd.String("joiner"),
		Smart:          !cmd.Bool("no-smart"),
		SkipHeaders:    cmd.Bool("no-headers"),
		NormalizeSpace: cmd.Bool("whitespace"),
		Names:          cmd.Bool("names"),
		AllKeys:        cmd.Bool("all-names"),
		Fields:         cmd.Args().Slice(),
	}
	switch {
	case cmd.Bool("tsv"):
		tab := "\t"
		opts.Delimiter = &tab
	case cmd.IsSet("delimiter"):
		d := cmd.String("delimiter")
		opts.Delimiter = &d
	}
	if cmd.Bool("flatten-dot") {
		opts.Flatten = true
		opts.Joiner = "."
	}

	input, closeInput, err := openInput(cmd)
	if err != nil {
		return err
	}
	defer closeInput()

	// Flush per row when writing straight to a terminal so the user
	// gets feedback before the stream ends.
	if f, ok := cmd.Root().Writer.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		opts.FlushEachRow = true
	}

	out := bufio.NewWriter(cmd.Root().Writer)
	if err := jx.Run(out, input, opts); err != nil {
		return err
	}
	return out.Flush()
}

// openInput returns the record source and a close func. The file, when
// one is named, is closed on every exit path by the deferred call in
// run.
func openInput(cmd *cli.Command) (io.Reader, func() error, error) {
	path := cmd.String("infile")
	if path == "" {
		return cmd.Root().Reader, func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return f, f.Close, nil
}

func setupLogging(w io.Writer, debug bool) {
	if w == nil {
		w = os.Stderr
	}
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
