package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/clarete/kombi/examples/bencode"
)

func newBencodeCmd(a *app) *cobra.Command {
	var (
		query  string
		indent string
	)

	cmd := &cobra.Command{
		Use:   "bencode [file]",
		Short: "Decode bencode and print it as JSON",
		Long: `Decode a bencode document and print it as JSON.

If no file is provided, reads bencode from stdin.  The whole input
must be a single value, including any trailing newline.

Use -q with a gjson path (e.g. "info.files.#.path") to print only
part of the document.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("indent") {
				a.cfg.SetString("json.indent", indent)
			}

			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			v, err := bencode.Decode(input)
			if err != nil {
				return err
			}
			log.Infof("decoded a %s from %d bytes", v.Type(), len(input))

			out, err := bencode.ToJSON(v, a.cfg.GetString("json.indent"))
			if err != nil {
				return fmt.Errorf("render json: %w", err)
			}

			if query != "" {
				res := gjson.GetBytes(out, query)
				if !res.Exists() {
					return fmt.Errorf("query `%s` didn't match anything", query)
				}
				if res.Type == gjson.String {
					out = []byte(res.String())
				} else {
					out = []byte(res.Raw)
				}
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", bytes.TrimRight(out, "\n"))
			return err
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "gjson path of the value to print")
	cmd.Flags().StringVar(&indent, "indent", "  ", "JSON indentation, empty for compact output")

	return cmd
}
