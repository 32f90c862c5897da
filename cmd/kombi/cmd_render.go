package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clarete/kombi/examples/blueprint"
)

func newRenderCmd(a *app) *cobra.Command {
	var missing string

	cmd := &cobra.Command{
		Use:   "render <template> [key=value...]",
		Short: "Render a blueprint template",
		Long: `Render a blueprint template against a context.

The template is read from the given file, or from stdin if the file
is "-".  Every other argument is a key=value context entry.

	Hello {name}!
	{:if admin}You can manage {project}.{:end}`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("missing") {
				a.cfg.SetString("blueprint.missing_keys", missing)
			}
			opts := blueprint.Options{MissingKeys: a.cfg.GetString("blueprint.missing_keys")}
			if opts.MissingKeys != "error" && opts.MissingKeys != "empty" {
				return fmt.Errorf("--missing must be `error` or `empty`, got `%s`", opts.MissingKeys)
			}

			ctx, err := parseContext(args[1:])
			if err != nil {
				return err
			}

			template, err := readInput(cmd, args[:1])
			if err != nil {
				return err
			}

			out, err := blueprint.Execute(template, ctx, opts)
			if err != nil {
				return err
			}
			log.Debugf("rendered %d bytes with %d context entries", len(out), len(ctx))

			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVar(&missing, "missing", "error", "how to render keys missing from the context: error or empty")

	return cmd
}

func parseContext(entries []string) (map[string]string, error) {
	ctx := make(map[string]string, len(entries))
	for _, entry := range entries {
		k, v, ok := strings.Cut(entry, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("context entries must look like key=value, got `%s`", entry)
		}
		ctx[k] = v
	}
	return ctx, nil
}
