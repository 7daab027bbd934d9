package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/glint-dev/glint/internal/demo"
	"github.com/glint-dev/glint/pkg/liveroute"
	"github.com/spf13/cobra"
)

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the compiled routes of the demo application",
		Long: `Compile the demo router definition and print its route table:
helper name, path pattern, target view, and action, in declaration order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := demo.BuildTable()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 8, 2, ' ', 0)
			fmt.Fprintln(w, "HELPER\tPATH\tVIEW\tACTION")
			for _, route := range table.Routes() {
				action := route.Action
				if meta, ok := route.Metadata.(liveroute.Metadata); ok {
					action = string(meta.Action)
				}
				if action == "" {
					action = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", route.Helper, route.Path, route.View, action)
			}
			return w.Flush()
		},
	}
}
