package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/rubiojr/chainext/ast"
	"github.com/rubiojr/chainext/chainext"
	"github.com/rubiojr/chainext/diag"
	"github.com/rubiojr/chainext/parser"
)

// Execute runs the chainext CLI with the given version string.
func Execute(version string) {
	cmd := &cli.Command{
		Name:                   "chainext",
		Usage:                  "Validate chain-extension interface declarations",
		Version:                version,
		UseShortOptionHandling: true,
		// Allow `chainext decl.cxi` as shorthand for `chainext check decl.cxi`
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() > 0 && strings.HasSuffix(cmd.Args().First(), ".cxi") {
				return checkFile(cmd.Args().First(), cmd.Bool("no-color"))
			}
			return cli.ShowAppHelp(cmd)
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "no-color",
				Aliases: []string{"C"},
				Usage:   "Disable ANSI color output",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "check",
				Usage:     "Validate a .cxi declaration file",
				ArgsUsage: "<file.cxi>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "no-color",
						Aliases: []string{"C"},
						Usage:   "Disable ANSI color output",
					},
				},
				Action: checkAction,
			},
			{
				Name:      "emit",
				Usage:     "Validate a .cxi file and print the extension manifest as YAML",
				ArgsUsage: "<file.cxi>",
				Action:    emitAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func checkAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: chainext check <file.cxi>")
	}
	return checkFile(cmd.Args().First(), cmd.Bool("no-color"))
}

func emitAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: chainext emit <file.cxi>")
	}
	filename := cmd.Args().First()
	ext, err := validateFile(filename)
	if err != nil {
		diag.Render(os.Stderr, filename, err, false)
		os.Exit(1)
	}
	out, err := yaml.Marshal(ext.Manifest())
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	fmt.Print(string(out))
	return nil
}

func checkFile(filename string, noColor bool) error {
	ext, err := validateFile(filename)
	if err != nil {
		diag.Render(os.Stderr, filename, err, useColor(noColor))
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "%s: chain extension %s, %d methods\n", filename, ext.Name(), len(ext.Methods))
	return nil
}

// validateFile parses and validates one declaration file.
func validateFile(filename string) (*chainext.Extension, error) {
	decl, err := parseFile(filename)
	if err != nil {
		return nil, err
	}
	return chainext.New(decl)
}

func parseFile(filename string) (*ast.InterfaceDecl, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	p := &parser.Parser{}
	return p.Parse(filename, src)
}

// useColor honors --no-color and the NO_COLOR convention, and disables
// color when stderr is not a terminal.
func useColor(noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stderr.Fd()))
}
