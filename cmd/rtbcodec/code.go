package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anirudhraja/openrtb/enum"
	"github.com/anirudhraja/openrtb/wire"
)

func newCodeCmd() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "code <type> <integer>",
		Short: "Decode one wire integer with a coded type",
		Example: `  rtbcodec code AuctionType 501
  rtbcodec code StartDelay -1
  rtbcodec code --list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if list {
				for _, name := range enum.Names() {
					fmt.Fprintln(w, name)
				}
				return nil
			}
			if len(args) != 2 {
				return fmt.Errorf("expected a type name and an integer, got %d arguments", len(args))
			}

			v, ok := enum.New(args[0])
			if !ok {
				return fmt.Errorf("unknown coded type %q (see --list)", args[0])
			}
			if err := wire.UnmarshalCode([]byte(args[1]), v); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			fmt.Fprintf(w, "%s %s %s\n", args[0], v, wire.MarshalCode(v))
			return nil
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "list known types")
	// negative codes such as -1 are arguments, not flags
	cmd.Flags().SetInterspersed(false)
	return cmd
}
