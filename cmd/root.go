package cmd

import (
	"fmt"
	versionInfoCobra "github.com/ngyewch/go-versioninfo/cobra"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"os"
)

const appName = "release-announcer"

var (
	rootCmd = &cobra.Command{
		Use:   fmt.Sprintf("%s [flags]", appName),
		Short: "Release announcement planner",
		RunE:  help,
	}

	verbose bool
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func help(cmd *cobra.Command, args []string) error {
	err := cmd.Help()
	if err != nil {
		return err
	}
	return nil
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	versionInfoCobra.AddVersionCmd(rootCmd, nil)
}

func initConfig() {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
}
