package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNormalizeCmd(a *app) *cobra.Command {
	var (
		pretty, digestOnly, strict, allowComments bool
		color                                     string
	)

	cmd := &cobra.Command{
		Use:   "normalize [file...]",
		Short: "Decode bid requests and print their canonical encoding",
		Long: `Decode each input as a bid request and print it re-encoded: members in
declaration order, absent optionals dropped, unknown members removed.
Reads stdin when no file is given. .zst, .gz and .lz4 inputs are
decompressed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			out := a.cfg.Output
			decode := a.cfg.Decode
			if flags.Changed("pretty") {
				out.Pretty = pretty
			}
			if flags.Changed("digest") {
				out.Digest = digestOnly
			}
			if flags.Changed("color") {
				out.Color = color
			}
			if flags.Changed("strict") {
				decode.Strict = strict
			}
			if flags.Changed("jsonc") {
				decode.JSONC = allowComments
			}

			inputs := args
			if len(inputs) == 0 {
				inputs = []string{"-"}
			}

			codec := a.newCodec(decode.Strict)
			w := cmd.OutOrStdout()
			for _, name := range inputs {
				data, err := readInput(name, cmd.InOrStdin(), decode.JSONC)
				if err != nil {
					return err
				}
				req, err := codec.DecodeBidRequest(data)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				doc, err := codec.EncodeBidRequest(req)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}

				if out.Digest {
					fmt.Fprintf(w, "%s  %s\n", digest(doc), name)
					continue
				}
				if err := printDocument(w, doc, out); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent output")
	cmd.Flags().BoolVar(&digestOnly, "digest", false, "print a blake3 digest of each canonical request instead of the request")
	cmd.Flags().StringVar(&color, "color", "auto", "highlight output: auto, always or never")
	cmd.Flags().BoolVar(&strict, "strict", false, "require at least one impression")
	cmd.Flags().BoolVar(&allowComments, "jsonc", false, "accept comments and trailing commas")
	return cmd
}
