package main

import (
	"github.com/spf13/cobra"

	"winecellar/pkg/wine"
)

func prefixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefix",
		Short: "Manage the prefix lifecycle",
	}

	var force bool

	type lifecycleOp struct {
		use   string
		short string
	}

	ops := []lifecycleOp{
		{"init", "Initialize the prefix"},
		{"update", "Create or update the prefix"},
		{"stop", "End processes running in the prefix"},
		{"restart", "Imitate a windows restart"},
		{"shutdown", "Imitate a windows shutdown"},
		{"end-session", "End the wineboot session"},
	}

	for _, op := range ops {
		sub := &cobra.Command{
			Use:   op.use,
			Short: op.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runLifecycle(op.use, force)
			},
		}
		if op.use == "stop" {
			sub.Flags().BoolVarP(&force, "force", "f", false, "Kill processes instead of asking them to quit")
		}
		cmd.AddCommand(sub)
	}

	return cmd
}

// runLifecycle dispatches one boot-helper operation against either the
// plain wine prefix or the proton bundle, depending on configuration.
func runLifecycle(op string, force bool) error {
	var out []byte
	var err error

	if cfg.ProtonDir != "" {
		p, perr := newProton()
		if perr != nil {
			return perr
		}
		switch op {
		case "init":
			out, err = p.InitPrefix("")
		case "update":
			out, err = p.UpdatePrefix("")
		case "stop":
			out, err = p.StopProcesses("", force)
		case "restart":
			out, err = p.Restart("")
		case "shutdown":
			out, err = p.Shutdown("")
		case "end-session":
			out, err = p.EndSession("")
		}
	} else {
		w, werr := newWine()
		if werr != nil {
			return werr
		}
		switch op {
		case "init":
			out, err = w.InitPrefix("")
		case "update":
			out, err = w.UpdatePrefix("")
		case "stop":
			out, err = w.StopProcesses("", force)
		case "restart":
			out, err = w.Restart("")
		case "shutdown":
			out, err = w.Shutdown("")
		case "end-session":
			out, err = w.EndSession("")
		}
	}

	if err != nil {
		return err
	}

	logger.Info("✅ Prefix operation finished", "operation", op)
	if msg := wine.LastOutputLine(out); msg != "" {
		logger.Debug("📋 Helper output", "last_line", msg)
	}
	return nil
}
