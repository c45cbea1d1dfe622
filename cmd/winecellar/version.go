package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show winecellar and wine versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("winecellar %s\n", version)

			w, err := newWine()
			if err != nil {
				return err
			}
			if v, err := w.Version(); err == nil {
				fmt.Printf("wine %s\n", v)
			}
			return nil
		},
	}
}
