package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rubiojr/exprgen/ast"
	"github.com/rubiojr/exprgen/gen"
	"github.com/rubiojr/exprgen/loader"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// Execute runs the exprgen CLI with the given version string.
func Execute(version string) {
	if err := newCommand(version).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newCommand(version string) *cli.Command {
	return &cli.Command{
		Name:                   "exprgen",
		Usage:                  "Render expression trees as source text",
		Version:                version,
		UseShortOptionHandling: true,
		Commands: []*cli.Command{
			{
				Name:      "render",
				Usage:     "Render every expression in the given YAML files",
				ArgsUsage: "[file.yaml | -]...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "indent",
						Usage:   "Indentation for closure bodies (an empty string disables it)",
						Value:   gen.DefaultIndent,
						Sources: cli.EnvVars("EXPRGEN_INDENT"),
					},
					&cli.BoolFlag{
						Name:    "tabs",
						Aliases: []string{"t"},
						Usage:   "Indent closure bodies with a tab",
					},
					&cli.IntFlag{
						Name:    "max-depth",
						Usage:   "Reject expressions nested deeper than this",
						Value:   loader.DefaultMaxDepth,
						Sources: cli.EnvVars("EXPRGEN_MAX_DEPTH"),
					},
					&cli.IntFlag{
						Name:    "max-nodes",
						Usage:   "Reject documents that expand to more nodes than this",
						Value:   loader.DefaultMaxNodes,
						Sources: cli.EnvVars("EXPRGEN_MAX_NODES"),
					},
				},
				Action: renderAction,
			},
			{
				Name:   "kinds",
				Usage:  "List the accepted expression kinds",
				Action: kindsAction,
			},
		},
	}
}

func renderAction(ctx context.Context, cmd *cli.Command) error {
	g := &gen.Generator{Indent: cmd.String("indent")}
	switch {
	case cmd.Bool("tabs"):
		g.Indent = "\t"
	case cmd.IsSet("indent") && g.Indent == "":
		g.Flat = true
	}
	opts := loader.Options{MaxDepth: cmd.Int("max-depth"), MaxNodes: cmd.Int("max-nodes")}
	if opts.MaxDepth < 1 {
		return fmt.Errorf("--max-depth must be positive, got %d", opts.MaxDepth)
	}
	if opts.MaxNodes < 1 {
		return fmt.Errorf("--max-nodes must be positive, got %d", opts.MaxNodes)
	}

	files := cmd.Args().Slice()
	if len(files) == 0 {
		if isTerminal(stdin(cmd)) {
			return fmt.Errorf("usage: exprgen render [file.yaml | -]... (no input on stdin)")
		}
		files = []string{"-"}
	}

	out := stdout(cmd)
	for _, file := range files {
		exprs, err := load(cmd, file, opts)
		if err != nil {
			return err
		}
		if err := write(out, g, exprs); err != nil {
			return err
		}
	}
	return nil
}

func load(cmd *cli.Command, file string, opts loader.Options) ([]ast.Expr, error) {
	if file != "-" {
		return loader.LoadFile(file, opts)
	}
	exprs, err := loader.Load(stdin(cmd), opts)
	if err != nil {
		return nil, fmt.Errorf("<stdin>: %w", err)
	}
	return exprs, nil
}

func write(w io.Writer, g *gen.Generator, exprs []ast.Expr) error {
	for _, e := range exprs {
		if _, err := fmt.Fprintln(w, g.Generate(e)); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	return nil
}

func kindsAction(ctx context.Context, cmd *cli.Command) error {
	out := stdout(cmd)
	for _, k := range loader.Kinds() {
		fmt.Fprintln(out, k)
	}
	return nil
}

func stdin(cmd *cli.Command) io.Reader {
	if r := cmd.Root().Reader; r != nil {
		return r
	}
	return os.Stdin
}

func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
