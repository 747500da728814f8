package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newValidateCmd(a *app) *cobra.Command {
	var (
		jobs          int
		strict        bool
		allowComments bool
	)

	cmd := &cobra.Command{
		Use:   "validate file...",
		Short: "Check that bid request files decode",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			decode := a.cfg.Decode
			if !flags.Changed("jobs") {
				jobs = a.cfg.Validate.Jobs
			}
			if flags.Changed("strict") {
				decode.Strict = strict
			}
			if flags.Changed("jsonc") {
				decode.JSONC = allowComments
			}
			if jobs < 1 {
				return fmt.Errorf("--jobs must be at least 1")
			}

			codec := a.newCodec(decode.Strict)
			results := make([]error, len(args))

			// decode failures are results; only read failures stop the run
			var g errgroup.Group
			g.SetLimit(jobs)
			for i, name := range args {
				i, name := i, name
				g.Go(func() error {
					data, err := readInput(name, cmd.InOrStdin(), decode.JSONC)
					if err != nil {
						return err
					}
					_, results[i] = codec.DecodeBidRequest(data)
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			failed := 0
			for i, name := range args {
				if results[i] != nil {
					failed++
					fmt.Fprintf(w, "fail %s: %v\n", name, results[i])
					continue
				}
				fmt.Fprintf(w, "ok %s\n", name)
			}
			a.logger.Info("validated", zap.Int("files", len(args)), zap.Int("failed", failed))
			if failed > 0 {
				return fmt.Errorf("%d of %d requests failed validation", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", 4, "files decoded concurrently")
	cmd.Flags().BoolVar(&strict, "strict", false, "require at least one impression")
	cmd.Flags().BoolVar(&allowComments, "jsonc", false, "accept comments and trailing commas")
	return cmd
}
