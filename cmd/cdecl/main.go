// Command cdecl is a one-shot, scriptable front end over the
// declaration-checking and rendering engine, modeled on cmd/morfx's
// one-shot (non-REPL) command mode: a cobra root command dispatching
// to declare/explain/cast/show subcommands. explain and declare build
// an AST via internal/cliparse and run it through internal/checker
// before rendering; cast renders its parsed phrase as gibberish without
// checking it; show lists the TypedefStore. Each prints the rendered
// result or a CLIError as JSON.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/paul-j-lucas/cdecl-sub004/internal/cli"
	"github.com/paul-j-lucas/cdecl-sub004/internal/cliparse"
	"github.com/paul-j-lucas/cdecl-sub004/internal/config"
	"github.com/paul-j-lucas/cdecl-sub004/internal/diag"
	"github.com/paul-j-lucas/cdecl-sub004/internal/dialect"
	"github.com/paul-j-lucas/cdecl-sub004/internal/render/gibberish"
	"github.com/paul-j-lucas/cdecl-sub004/internal/show"
)

var (
	jsonOutput  bool
	historyPath string
)

func main() {
	opts := config.Load()
	runner := cli.New(opts)

	root := &cobra.Command{
		Use:   "cdecl",
		Short: "translate between C/C++ declaration syntax and English",
	}
	root.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print results as JSON")
	root.PersistentFlags().StringVar(&historyPath, "history", "", "path to a SQLite history file (empty disables history)")

	root.AddCommand(
		newExplainCmd(runner),
		newDeclareCmd(runner),
		newCastCmd(runner),
		newShowCmd(runner),
	)

	cobra.OnInitialize(func() {
		if historyPath != "" {
			if err := runner.AttachHistory(historyPath, false); err != nil {
				fmt.Fprintf(os.Stderr, "warning: history disabled: %v\n", err)
			}
		}
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
	_ = runner.Close()
}

func newExplainCmd(runner *cli.Runner) *cobra.Command {
	return &cobra.Command{
		Use:   "explain <phrase>",
		Short: "check an English type phrase and explain it in English",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, root, err := cliparse.Parse(args[0])
			if err != nil {
				return printErr(diag.CLIError{Code: diag.UnknownName, Message: err.Error()})
			}
			out, diags, err := runner.Explain(b.Arena, root)
			return emit(out, diags, err)
		},
	}
}

func newDeclareCmd(runner *cli.Runner) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "declare <phrase>",
		Short: "declare a name as a given English type phrase, rendering gibberish",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return printErr(diag.CLIError{Code: diag.UnknownName, Message: "declare requires --as <name>"})
			}
			b, root, err := cliparse.Parse(args[0])
			if err != nil {
				return printErr(diag.CLIError{Code: diag.UnknownName, Message: err.Error()})
			}
			out, diags, err := runner.Declare(b.Arena, root, name)
			return emit(out, diags, err)
		},
	}
	cmd.Flags().StringVar(&name, "as", "", "the declared identifier")
	return cmd
}

func newCastCmd(runner *cli.Runner) *cobra.Command {
	return &cobra.Command{
		Use:   "cast <phrase>",
		Short: "render a cast to the given English type phrase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, root, err := cliparse.Parse(args[0])
			if err != nil {
				return printErr(diag.CLIError{Code: diag.UnknownName, Message: err.Error()})
			}
			opts := runner.Opts
			out := gibberish.Render(b.Arena, root, "", gibberish.Options{EastConst: opts.EastConst})
			return emit(out, nil, nil)
		},
	}
}

func newShowCmd(runner *cli.Runner) *cobra.Command {
	var glob, format string
	cmd := &cobra.Command{
		Use:   "show [glob]",
		Short: "list previously defined typedefs matching a glob",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := "*"
			if len(args) == 1 {
				pattern = args[0]
			}
			if glob != "" {
				pattern = glob
			}
			f := show.English
			if format == "gibberish" {
				f = show.Gibberish
			}
			results, err := runner.Show(show.Options{
				Glob:          pattern,
				DialectFilter: dialect.AllDialects,
				Format:        f,
				EastConst:     runner.Opts.EastConst,
			})
			if err != nil {
				return printErr(diag.CLIError{Code: diag.UnknownName, Message: err.Error()})
			}
			for _, r := range results {
				fmt.Printf("%s: %s\n", r.Name, r.Output)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&glob, "glob", "", "glob pattern (overrides the positional argument)")
	cmd.Flags().StringVar(&format, "format", "english", "english or gibberish")
	return cmd
}

func emit(out string, diags []diag.Diagnostic, err error) error {
	if err != nil {
		if ce, ok := err.(diag.CLIError); ok {
			return printErr(ce)
		}
		return printErr(diag.CLIError{Code: diag.UnknownName, Message: err.Error()})
	}
	if jsonOutput {
		b, _ := json.Marshal(struct {
			Output      string           `json:"output"`
			Diagnostics []diag.Diagnostic `json:"diagnostics,omitempty"`
		}{out, diags})
		fmt.Println(string(b))
		return nil
	}
	fmt.Println(out)
	for _, d := range diags {
		fmt.Fprintf(os.Stderr, "%s: %s\n", d.Severity, d.Error())
	}
	return nil
}

func printErr(ce diag.CLIError) error {
	if jsonOutput {
		fmt.Println(ce.JSON())
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", ce.Error())
	}
	return ce
}
