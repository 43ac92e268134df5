package placeholder

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/SkyMack/resgen/internal/generator"
	"github.com/SkyMack/resgen/internal/imaging"
	"github.com/SkyMack/resgen/internal/registry"
)

const (
	flagNameOutputDir  = "outputdir"
	flagNameBackground = "background"
	flagNameLabelColor = "label-color"

	defaultOutputDir  = "./resources/"
	defaultBackground = "5A9CF8"
	defaultLabelColor = "FFFFFF"

	iconFileName   = "icon.png"
	splashFileName = "splash.png"
)

// Config stores the settings for a single placeholder run.
type Config struct {
	outputDirPath string
	background    color.NRGBA
	labelColor    color.NRGBA
}

func addPlaceholderFlags(flags *pflag.FlagSet) {
	placeholderFlags := &pflag.FlagSet{}

	placeholderFlags.StringP(flagNameOutputDir, "o", defaultOutputDir, "Directory the placeholder source images are written to")
	placeholderFlags.String(flagNameBackground, defaultBackground, "Background color (6 character RGB hex code)")
	placeholderFlags.String(flagNameLabelColor, defaultLabelColor, "Dimension label color (6 character RGB hex code)")

	flags.AddFlagSet(placeholderFlags)
}

// AddCmdPlaceholder adds the placeholder subcommand to a cobra.Command. It
// writes valid source artwork (icon.png and splash.png) for projects that
// have none yet.
func AddCmdPlaceholder(parentCmd *cobra.Command) {
	placeholderCmd := &cobra.Command{
		Use:   "placeholder",
		Short: "write placeholder icon and splash screen source images",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := Config{}
			if err := conf.setConfigFromFlags(cmd.Flags()); err != nil {
				return err
			}

			return runPlaceholder(conf)
		},
	}
	addPlaceholderFlags(placeholderCmd.Flags())

	parentCmd.AddCommand(placeholderCmd)
}

func (c *Config) setConfigFromFlags(flags *pflag.FlagSet) error {
	outputDirPath, err := flags.GetString(flagNameOutputDir)
	if err != nil {
		return err
	}
	backgroundStr, err := flags.GetString(flagNameBackground)
	if err != nil {
		return err
	}
	labelColorStr, err := flags.GetString(flagNameLabelColor)
	if err != nil {
		return err
	}

	background, err := imaging.ParseHexColor(backgroundStr)
	if err != nil {
		return err
	}
	labelColor, err := imaging.ParseHexColor(labelColorStr)
	if err != nil {
		return err
	}

	c.outputDirPath = outputDirPath
	c.background = background
	c.labelColor = labelColor

	return nil
}

// runPlaceholder renders and writes both placeholder source images into the
// output directory, which must already exist.
func runPlaceholder(conf Config) error {
	info, err := os.Stat(conf.outputDirPath)
	if err != nil || !info.IsDir() {
		log.WithFields(log.Fields{
			"output.path": conf.outputDirPath,
		}).Error(generator.ErrorOutputDirNotFound.Error())
		return fmt.Errorf("%w: %s", generator.ErrorOutputDirNotFound, conf.outputDirPath)
	}

	targets := []struct {
		name string
		edge int
	}{
		{name: iconFileName, edge: registry.IconSourceEdge},
		{name: splashFileName, edge: registry.SplashSourceEdge},
	}
	for _, target := range targets {
		img, err := Render(target.edge, target.edge, conf.background, conf.labelColor)
		if err != nil {
			return err
		}
		destPath := filepath.Join(conf.outputDirPath, target.name)
		if err := imaging.SavePNG(img, destPath); err != nil {
			return err
		}
		log.WithFields(log.Fields{
			"dst.path":  destPath,
			"edge.size": target.edge,
		}).Info("placeholder source image written")
	}

	return nil
}
