package main

import (
	"sort"

	"github.com/arthur-debert/docmd/pkg/render"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the node kinds docmd can render",
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := render.Kinds()
			sort.Strings(kinds)

			data := pterm.TableData{{"KIND", "DESCRIPTION"}}
			for _, kind := range kinds {
				h, err := render.Lookup(kind)
				if err != nil {
					continue
				}
				data = append(data, []string{kind, h.Description()})
			}

			return pterm.DefaultTable.
				WithHasHeader().
				WithData(data).
				WithWriter(cmd.OutOrStdout()).
				Render()
		},
	}
}
