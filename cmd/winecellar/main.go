// winecellar manages wine and proton prefixes from the command line:
// prefix lifecycle, DXVK installation and program launches.
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"winecellar/internal/config"
	"winecellar/pkg/logging"
	"winecellar/pkg/proton"
	"winecellar/pkg/wine"
)

const version = "0.2.0"

var (
	rootCmd *cobra.Command

	configPath string
	wineFlag   string
	prefixFlag string
	archFlag   string
	logLevel   string

	cfg    config.Config
	logger hclog.Logger
)

func init() {
	rootCmd = &cobra.Command{
		Use:               "winecellar",
		Short:             "Manage wine and proton compatibility prefixes",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Configuration file (default "+config.Path()+")")
	flags.StringVar(&wineFlag, "wine", "", "Wine binary to drive")
	flags.StringVar(&prefixFlag, "prefix", "", "Wine prefix directory")
	flags.StringVar(&archFlag, "arch", "", "Prefix architecture (win32, win64, wow64)")
	flags.StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(prefixCmd(), dxvkCmd(), runCmd(), winetricksCmd(), versionCmd())
}

// setup loads the configuration and builds the logger before any command
// runs. Flags override file values.
func setup(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		path = config.Path()
	}

	var err error
	cfg, err = config.LoadFrom(path)
	if err != nil {
		return err
	}

	if wineFlag != "" {
		cfg.Wine = wineFlag
	}
	if prefixFlag != "" {
		cfg.Prefix = prefixFlag
	}
	if archFlag != "" {
		cfg.Arch = archFlag
	}

	level := logLevel
	if level == "" {
		level = logging.GetLogLevel()
	}
	logger = logging.NewLogger("winecellar", level, os.Stderr)

	return nil
}

// newWine builds the wine configuration the subcommands operate on. With a
// proton bundle configured the bundle's pinned wine is used instead of the
// wine/arch settings.
func newWine() (wine.Wine, error) {
	if cfg.ProtonDir != "" {
		p, err := newProton()
		if err != nil {
			return wine.Wine{}, err
		}
		return p.Wine(), nil
	}

	w := wine.Default()
	if cfg.Wine != "" {
		w = wine.New(cfg.Wine)
	}

	if cfg.Arch != "" {
		arch, ok := wine.ParseArch(cfg.Arch)
		if !ok {
			return wine.Wine{}, fmt.Errorf("unknown architecture %q", cfg.Arch)
		}
		w = w.WithArch(arch)
	}

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = config.DefaultPrefix()
	}

	return w.WithPrefix(prefix).WithLogger(logger), nil
}

func newProton() (proton.Proton, error) {
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = config.DefaultPrefix()
	}

	p := proton.New(cfg.ProtonDir).
		WithPrefix(prefix).
		WithAppID(cfg.SteamAppID).
		WithLogger(logger)

	if cfg.SteamClient != "" {
		p = p.WithSteamClient(cfg.SteamClient)
	}

	return p, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
