package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/SkyMack/resgen/internal/clibase"
	"github.com/SkyMack/resgen/internal/generator"
	"github.com/SkyMack/resgen/internal/placeholder"
)

const (
	appName        = "resgen"
	appDescription = "Generates the resized icon and splash screen images each supported platform requires, from a single pair of source images."
)

func main() {
	rootCmd := clibase.New(appName, appDescription)

	generator.AddCmdGenerate(rootCmd)
	generator.AddCmdPlatforms(rootCmd)
	placeholder.AddCmdPlaceholder(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		log.WithFields(
			log.Fields{
				"app.name": appName,
				"error":    err.Error(),
			},
		).Fatal("application exited with an error")
	}
}
