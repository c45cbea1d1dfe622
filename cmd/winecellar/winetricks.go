package main

import (
	"os"

	"github.com/spf13/cobra"

	"winecellar/pkg/winetricks"
)

func winetricksCmd() *cobra.Command {
	var script string

	cmd := &cobra.Command{
		Use:   "winetricks <component> [args...]",
		Short: "Install a winetricks component into the prefix",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := newWine()
			if err != nil {
				return err
			}

			t := winetricks.FromWine(w)
			if script != "" {
				t = t.WithScript(script)
			}

			install := t.Install(args[0], args[1:], nil)
			install.Stdin = os.Stdin
			install.Stdout = os.Stdout
			install.Stderr = os.Stderr

			logger.Debug("🧰 Running winetricks", "component", args[0])
			return install.Run()
		},
	}

	cmd.Flags().StringVar(&script, "script", "", "Path to the winetricks script (default found in PATH)")
	return cmd
}
