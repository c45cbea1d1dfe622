package main

import (
	"errors"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
)

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <program> [args...]",
		Short: "Run a windows program in the prefix",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			launch, err := buildLaunch(args)
			if err != nil {
				return err
			}

			launch.Stdin = os.Stdin
			launch.Stdout = os.Stdout
			launch.Stderr = os.Stderr

			logger.Debug("🚀 Launching", "argv", launch.Args)
			if err := launch.Run(); err != nil {
				var exitErr *exec.ExitError
				if errors.As(err, &exitErr) {
					os.Exit(exitErr.ExitCode())
				}
				return err
			}
			return nil
		},
	}
}

// buildLaunch composes the launch command: the configured wrapper first,
// then wine (or the proton launcher) and the program argv.
func buildLaunch(args []string) (*exec.Cmd, error) {
	wrapper, err := cfg.WrapperArgv()
	if err != nil {
		return nil, err
	}

	var launch *exec.Cmd
	if cfg.ProtonDir != "" {
		p, perr := newProton()
		if perr != nil {
			return nil, perr
		}
		launch = p.RunInPrefix(args...)
	} else {
		w, werr := newWine()
		if werr != nil {
			return nil, werr
		}
		launch = w.RunArgs(args...)
	}

	if len(wrapper) == 0 {
		return launch, nil
	}

	// Re-root the command on the wrapper, keeping the composed environment.
	argv := append(wrapper, launch.Args...)
	wrapped := exec.Command(argv[0], argv[1:]...)
	wrapped.Env = launch.Env
	return wrapped, nil
}
