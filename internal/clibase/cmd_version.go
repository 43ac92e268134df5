package clibase

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func version(out io.Writer, name string, flags *pflag.FlagSet) error {
	depPrefix, err := flags.GetString("dep-prefix")
	if err != nil {
		return err
	}

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	fmt.Fprintf(out, "%s (%s %s)\n", name, buildInfo.Main.Path, buildInfo.Main.Version)

	fmt.Fprintf(out, "\n")
	fmt.Fprintf(out, "  Compiled with: %s\n", runtime.Compiler)
	fmt.Fprintf(out, "         GOARCH: %s\n", runtime.GOARCH)
	fmt.Fprintf(out, "           GOOS: %s\n", runtime.GOOS)
	fmt.Fprintf(out, "     Go Version: %s\n", runtime.Version())
	fmt.Fprintf(out, "\n")

	for _, pkg := range buildInfo.Deps {
		if !strings.HasPrefix(pkg.Path, depPrefix) {
			continue
		}
		output := fmt.Sprintf("%s %s", pkg.Path, pkg.Version)
		if pkg.Replace != nil {
			var struckthrough string
			for _, r := range output {
				struckthrough += "̶" + string(r)
			}
			output = fmt.Sprintf("%s̶  => %s", struckthrough, pkg.Replace.Path)
		}
		fmt.Fprintf(out, "  %s\n", output)
	}
	return nil
}

func addVersionCmd(rootCmd *cobra.Command) {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "output the binary version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return version(cmd.OutOrStdout(), rootCmd.Name(), cmd.Flags())
		},
	}
	versionFlags := versionCmd.Flags()
	versionFlags.String("dep-prefix", "github.com/SkyMack", "only introspect packages under this prefix")

	rootCmd.AddCommand(versionCmd)
}
