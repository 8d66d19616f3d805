package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ngyewch/release-announcer/announcer"
	"github.com/ngyewch/release-announcer/workspace"
)

var (
	planCmd = &cobra.Command{
		Use:   "plan [flags]",
		Short: "Decide what a release tag announces",
		Args:  cobra.NoArgs,
		RunE:  plan,
	}

	planTag      string
	planManifest string
)

func plan(cmd *cobra.Command, args []string) error {
	catalogue, err := loadCatalogue(cmd)
	if err != nil {
		return err
	}

	// Distinguish an omitted --tag from --tag "" so that tag inference
	// stays available to later stages.
	var tag *string
	if cmd.Flags().Changed("tag") {
		tag = &planTag
	}

	result, err := announcer.ParseTag(catalogue, tag)
	if err != nil {
		var contradiction *announcer.ContradictoryTagVersionError
		var parseErr *announcer.TagVersionParseError
		switch {
		case errors.As(err, &contradiction):
			logrus.Errorf("package %s is at version %s, retag or bump the manifest",
				contradiction.PackageName, contradiction.RealVersion)
		case errors.As(err, &parseErr):
			logrus.Errorf("expected a tag like v1.0.0 or some-package-v1.0.0: %v", parseErr.Err)
		}
		return err
	}

	fmt.Println(result.Describe(catalogue))
	return nil
}

func loadCatalogue(cmd *cobra.Command) (announcer.Catalogue, error) {
	_, err := os.Stat(planManifest)
	if os.IsNotExist(err) {
		// Only an explicitly requested manifest is required to exist.
		if cmd.Flags().Changed("manifest") {
			return nil, fmt.Errorf("workspace manifest %s does not exist", planManifest)
		}
		logrus.Debugf("no workspace manifest at %s, using an empty catalogue", planManifest)
		return announcer.Catalogue{}, nil
	} else if err != nil {
		return nil, err
	}

	catalogue, err := workspace.LoadFile(planManifest)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("loaded %d packages from %s", len(catalogue), planManifest)
	return catalogue, nil
}

func init() {
	planCmd.Flags().StringVar(&planTag, "tag", "", "release tag to parse (omit to announce nothing)")
	planCmd.Flags().StringVar(&planManifest, "manifest", "workspace.yml", "workspace manifest file")

	rootCmd.AddCommand(planCmd)
}
