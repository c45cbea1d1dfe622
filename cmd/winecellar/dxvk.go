package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"winecellar/pkg/dxvk"
)

func dxvkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dxvk",
		Short: "Install, remove and detect DXVK in the prefix",
	}

	params := dxvk.DefaultParams()
	var arch string
	var noRepair bool

	install := &cobra.Command{
		Use:   "install [dxvk-dir]",
		Short: "Swap DXVK's driver DLLs into the prefix",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := cfg.DxvkDir
			if len(args) == 1 {
				dir = args[0]
			}
			if dir == "" {
				return errors.New("no DXVK directory given or configured")
			}

			if err := applyDxvkFlags(&params, arch, noRepair); err != nil {
				return err
			}

			w, err := newWine()
			if err != nil {
				return err
			}
			return dxvk.Install(w, dir, params, logger)
		},
	}

	uninstall := &cobra.Command{
		Use:   "uninstall",
		Short: "Restore the builtin driver DLLs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyDxvkFlags(&params, arch, noRepair); err != nil {
				return err
			}

			w, err := newWine()
			if err != nil {
				return err
			}
			return dxvk.Uninstall(w, params, logger)
		},
	}

	for _, sub := range []*cobra.Command{install, uninstall} {
		sub.Flags().StringVar(&arch, "dxvk-arch", string(dxvk.ArchX64), "DXVK build bitness (x32, x64)")
		sub.Flags().BoolVar(&noRepair, "no-repair", false, "Skip the prefix update around the swap")
		sub.Flags().BoolVar(&params.DXGI, "dxgi", true, "Include dxgi.dll")
		sub.Flags().BoolVar(&params.D3D9, "d3d9", true, "Include d3d9.dll")
		sub.Flags().BoolVar(&params.D3D10Core, "d3d10core", true, "Include d3d10core.dll")
		sub.Flags().BoolVar(&params.D3D11, "d3d11", true, "Include d3d11.dll")
	}

	version := &cobra.Command{
		Use:   "version",
		Short: "Report the DXVK version applied to the prefix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := newWine()
			if err != nil {
				return err
			}

			v, ok, err := dxvk.Version(w.Prefix)
			if err != nil {
				return fmt.Errorf("probe driver dlls: %w", err)
			}
			if !ok {
				fmt.Println("DXVK is not applied")
				return nil
			}

			fmt.Println(v)
			return nil
		},
	}

	cmd.AddCommand(install, uninstall, version)
	return cmd
}

func applyDxvkFlags(params *dxvk.InstallParams, arch string, noRepair bool) error {
	switch dxvk.Arch(arch) {
	case dxvk.ArchX32, dxvk.ArchX64:
		params.Arch = dxvk.Arch(arch)
	default:
		return fmt.Errorf("unknown DXVK bitness %q", arch)
	}

	params.Repair = !noRepair
	return nil
}
