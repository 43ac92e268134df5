package generator

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SkyMack/resgen/internal/registry"
)

// AddCmdPlatforms adds the platforms subcommand to a cobra.Command. It lists
// every platform the registry carries definitions for, along with the output
// paths its files land in.
func AddCmdPlatforms(parentCmd *cobra.Command) {
	platformsCmd := &cobra.Command{
		Use:   "platforms",
		Short: "list the supported platforms and their output definition sets",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := registry.Load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, platform := range reg.Platforms() {
				fmt.Fprintf(out, "%s (%d files)\n", platform, reg.FileCount(platform))
				for _, set := range reg.SetsFor(platform) {
					fmt.Fprintf(out, "  %-6s %s (%d definitions)\n", set.Type, set.Path, len(set.Definitions))
				}
			}

			return nil
		},
	}

	parentCmd.AddCommand(platformsCmd)
}
