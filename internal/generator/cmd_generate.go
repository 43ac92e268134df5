package generator

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/SkyMack/resgen/internal/registry"
)

const (
	flagNameIcon      = "icon"
	flagNameSplash    = "splash"
	flagNamePlatforms = "platforms"
	flagNameOutputDir = "outputdir"

	defaultIconPath   = "./resources/icon.png"
	defaultSplashPath = "./resources/splash.png"
	defaultOutputDir  = "./resources/"
)

var (
	// ErrorDimensionMismatch is returned when a source image is not exactly the required size
	ErrorDimensionMismatch = fmt.Errorf("source image has the wrong dimensions")
	// ErrorOutputDirNotFound is returned when the output directory does not exist
	ErrorOutputDirNotFound = fmt.Errorf("output directory does not exist")
	// ErrorUnknownPlatform is returned when the platform filter names a platform the registry does not know
	ErrorUnknownPlatform = fmt.Errorf("unknown platform")
)

// Config stores the settings for a single generate run. It is populated from
// the command line flags once at startup and read only afterwards.
type Config struct {
	iconPath       string
	splashPath     string
	platformFilter string
	outputDirPath  string
}

func addGenerateFlags(flags *pflag.FlagSet) {
	generateFlags := &pflag.FlagSet{}

	generateFlags.StringP(flagNameIcon, "i", defaultIconPath, "Path to the source icon image (1024x1024)")
	generateFlags.StringP(flagNameSplash, "s", defaultSplashPath, "Path to the source splash screen image (2732x2732)")
	generateFlags.StringP(flagNamePlatforms, "p", "", "Comma separated list of platforms to generate resources for (default: all platforms)")
	generateFlags.StringP(flagNameOutputDir, "o", defaultOutputDir, "Path to the root of the output directory tree")

	flags.AddFlagSet(generateFlags)
}

// AddCmdGenerate adds the generate subcommand to a cobra.Command
func AddCmdGenerate(parentCmd *cobra.Command) {
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "generate the resized icon and splash screen files for each selected platform",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := Config{}
			if err := conf.setConfigFromFlags(cmd.Flags()); err != nil {
				return err
			}
			if err := conf.validate(); err != nil {
				return err
			}

			return runGenerate(conf)
		},
	}
	addGenerateFlags(generateCmd.Flags())

	parentCmd.AddCommand(generateCmd)
}

func (c *Config) setConfigFromFlags(flags *pflag.FlagSet) error {
	iconPath, err := flags.GetString(flagNameIcon)
	if err != nil {
		return err
	}
	splashPath, err := flags.GetString(flagNameSplash)
	if err != nil {
		return err
	}
	platformFilter, err := flags.GetString(flagNamePlatforms)
	if err != nil {
		return err
	}
	outputDirPath, err := flags.GetString(flagNameOutputDir)
	if err != nil {
		return err
	}

	c.iconPath = iconPath
	c.splashPath = splashPath
	c.platformFilter = platformFilter
	c.outputDirPath = outputDirPath

	return nil
}

func (c *Config) validate() error {
	var result error

	if c.iconPath == "" {
		result = multierror.Append(result, fmt.Errorf("no source icon path specified"))
	}
	if c.splashPath == "" {
		result = multierror.Append(result, fmt.Errorf("no source splash screen path specified"))
	}
	if c.outputDirPath == "" {
		result = multierror.Append(result, fmt.Errorf("no output directory path specified"))
	}

	return result
}

// runGenerate drives the full pipeline: load the definition registry, resolve
// the platform selection, validate the source images and the output
// directory, then render every selected definition. The first failing stage
// stops the run.
func runGenerate(conf Config) error {
	reg, err := registry.Load()
	if err != nil {
		return err
	}
	selected, err := selectPlatforms(reg, conf.platformFilter)
	if err != nil {
		return err
	}
	images, err := validateSources(conf)
	if err != nil {
		return err
	}
	if err := validateOutputDir(conf.outputDirPath); err != nil {
		return err
	}
	if err := generateResources(conf, reg, images, selected); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"output.path":    conf.outputDirPath,
		"platform.count": len(selected),
	}).Info("resource generation complete")

	return nil
}
