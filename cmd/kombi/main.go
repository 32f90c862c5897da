package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/clarete/kombi/ascii"
	"github.com/clarete/kombi/internal/config"
)

var log = commonlog.GetLogger("kombi")

type app struct {
	cfg *config.Config

	verbose    int
	noColor    bool
	showConfig bool
}

func newApp() *app {
	return &app{cfg: config.New()}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kombi",
		Short: "Parse bencode, templates and colors with parser combinators",

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.cfg.SetInt("log.verbosity", a.verbose)
			a.cfg.SetBool("output.color", !a.noColor)
			commonlog.Configure(a.cfg.GetInt("log.verbosity"), nil)
			if a.showConfig {
				a.cfg.Dump(cmd.ErrOrStderr())
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&a.verbose, "verbose", "v", "increase log verbosity (repeat for more)")
	flags.BoolVar(&a.noColor, "no-color", false, "don't colorize error messages")
	flags.BoolVar(&a.showConfig, "show-config", false, "print the effective configuration to stderr")

	rootCmd.AddCommand(newBencodeCmd(a))
	rootCmd.AddCommand(newRenderCmd(a))
	rootCmd.AddCommand(newColorCmd(a))

	return rootCmd
}

// theme returns the colors to use when writing to `w`.  Only
// terminals get colors, and only if they weren't disabled.
func (a *app) theme(w io.Writer) ascii.Theme {
	if f, ok := w.(*os.File); ok && a.cfg.GetBool("output.color") && isatty.IsTerminal(f.Fd()) {
		return ascii.DefaultTheme
	}
	return ascii.Theme{}
}

func (a *app) printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %s\n", ascii.Color(a.theme(w).Error, "error:"), err)
}

// readInput returns the contents of the file named by the first
// argument, or of the standard input when there are no arguments or
// the argument is `-`
func readInput(cmd *cobra.Command, args []string) (string, error) {
	var (
		data []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		log.Debug("reading standard input")
		data, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	log.Debugf("reading %s", args[0])
	data, err = os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return string(data), nil
}

func main() {
	a := newApp()
	if err := newRootCmd(a).Execute(); err != nil {
		a.printError(os.Stderr, err)
		os.Exit(1)
	}
}
