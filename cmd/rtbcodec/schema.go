package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/anirudhraja/openrtb"
	"github.com/anirudhraja/openrtb/registry"
	"github.com/anirudhraja/openrtb/schema"
)

func newSchemaCmd(a *app) *cobra.Command {
	var protoPath string

	cmd := &cobra.Command{
		Use:   "schema [object...]",
		Short: "Print the member tables of the bid request objects",
		Long: `Print each object's members in emission order with their presence policy
and type. With --proto, compare the objects against a .proto definition
and report members missing on either side or with a different label;
any difference makes the command fail.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.registry.Register(openrtb.BidRequest{}); err != nil {
				return err
			}
			names := args
			if len(names) == 0 {
				names = a.registry.ListMessages()
			}
			messages := make([]*schema.Message, 0, len(names))
			for _, name := range names {
				msg, err := a.registry.GetMessage(name)
				if err != nil {
					return err
				}
				messages = append(messages, msg)
			}

			w := cmd.OutOrStdout()
			if protoPath == "" {
				return printTables(w, messages)
			}
			return reportDrift(w, protoPath, messages)
		},
	}

	cmd.Flags().StringVar(&protoPath, "proto", "", "compare against a .proto file")
	return cmd
}

func printTables(w io.Writer, messages []*schema.Message) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, msg := range messages {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintln(tw, msg.Name)
		for _, f := range msg.Fields {
			label := string(f.Label)
			if f.NonEmpty {
				label += ",nonempty"
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", f.Name, label, f.Type)
		}
	}
	return tw.Flush()
}

func reportDrift(w io.Writer, path string, messages []*schema.Message) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	protoFile, err := registry.LoadProto(path, f)
	if err != nil {
		return err
	}

	total := 0
	for _, msg := range messages {
		protoMsg, ok := protoFile.Messages[msg.Name]
		if !ok {
			fmt.Fprintf(w, "%s: missing in proto\n", msg.Name)
			total++
			continue
		}
		for _, d := range registry.Diff(msg, protoMsg) {
			fmt.Fprintln(w, d)
			total++
		}
	}
	if total > 0 {
		return fmt.Errorf("%d differences against %s", total, path)
	}
	fmt.Fprintf(w, "no differences against %s\n", path)
	return nil
}
