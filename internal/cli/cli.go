// Package cli provides the command line interface of the cdc tool.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cdc/internal/commands"
	"cdc/internal/config"
	"cdc/internal/utils"
)

const (
	rootUse              = "cdc"
	rootShortDescription = "archive a directory tree into a zip file"
	rootLongDescription  = `cdc archives a directory subtree into a single zip file.
The subtree's byte size is reported before writing. Exact listing paths can
be excluded with -e; everything beneath an excluded path is skipped as well.`
	rootUsageExample = `  # Archive the current project into tmp.zip
  cdc -o .

  # Archive a home subdirectory into sources.zip, excluding a vendor tree
  cdc -o ~/projects/tool -O sources.zip -e ~/projects/tool/vendor`

	targetFlagName            = "target"
	targetFlagShorthand       = "o"
	targetFlagDescription     = "root directory to archive"
	fileNameFlagName          = "file-name"
	fileNameFlagShorthand     = "O"
	fileNameFlagDescription   = "output archive file name (default " + config.DefaultOutputFileName + ")"
	excludeFlagName           = "exclude"
	excludeFlagShorthand      = "e"
	excludeFlagDescription    = "comma-separated list of exact listing paths to exclude"
	redundancyFlagName        = "redundancy"
	redundancyFlagShorthand   = "R"
	redundancyFlagDescription = "reserved for a future feature"
	versionFlagName           = "version"
	versionFlagDescription    = "display application version"
	versionTemplate           = "cdc version: %s\n"

	missingTargetMessage = "no target directory provided, see -h for help"

	// helpExitCode matches the historical behavior of exiting with status 1
	// after printing usage.
	helpExitCode = 1
)

// Execute runs the cdc application with the provided logger.
func Execute(logger *zap.Logger) error {
	rootCommand := createRootCommand(logger)
	return rootCommand.Execute()
}

// createRootCommand builds the root cobra command. Every recognized flag
// maps directly onto one field of the run configuration; there is no
// dispatch beyond this registration table.
func createRootCommand(logger *zap.Logger) *cobra.Command {
	var showVersion bool
	var targetDirectory string
	var outputFileName string
	var rawExclusionList string
	var redundancyValue string

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if showVersion {
				fmt.Printf(versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			if targetDirectory == "" {
				_ = command.Usage()
				return fmt.Errorf(missingTargetMessage)
			}

			applicationConfiguration, loadError := config.LoadApplicationConfiguration(config.LoadOptions{})
			if loadError != nil {
				return loadError
			}
			runConfiguration := resolveRunConfiguration(
				command,
				applicationConfiguration,
				targetDirectory,
				outputFileName,
				rawExclusionList,
				redundancyValue,
				logger,
			)
			return commands.RunArchive(runConfiguration, logger)
		},
	}

	rootCommand.Flags().StringVarP(&targetDirectory, targetFlagName, targetFlagShorthand, "", targetFlagDescription)
	rootCommand.Flags().StringVarP(&outputFileName, fileNameFlagName, fileNameFlagShorthand, "", fileNameFlagDescription)
	rootCommand.Flags().StringVarP(&rawExclusionList, excludeFlagName, excludeFlagShorthand, "", excludeFlagDescription)
	rootCommand.Flags().StringVarP(&redundancyValue, redundancyFlagName, redundancyFlagShorthand, "", redundancyFlagDescription)
	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.SetHelpFunc(func(command *cobra.Command, arguments []string) {
		fmt.Println(command.Long)
		_ = command.Usage()
		os.Exit(helpExitCode)
	})
	return rootCommand
}

// resolveRunConfiguration merges explicit flag values over application
// defaults and expands a leading tilde in the target path.
func resolveRunConfiguration(
	command *cobra.Command,
	applicationConfiguration config.ApplicationConfiguration,
	targetDirectory string,
	outputFileName string,
	rawExclusionList string,
	redundancyValue string,
	logger *zap.Logger,
) config.Configuration {
	if outputFileName == "" {
		outputFileName = applicationConfiguration.OutputFileName
	}
	excludedPaths := config.SplitExclusionList(rawExclusionList)
	if !command.Flags().Changed(excludeFlagName) && len(applicationConfiguration.Exclude) > 0 {
		excludedPaths = applicationConfiguration.Exclude
	}
	if redundancyValue == "" {
		redundancyValue = applicationConfiguration.Redundancy
	}

	return config.Configuration{
		Target:         config.ExpandHomeDirectory(targetDirectory, logger),
		OutputFileName: outputFileName,
		Excluded:       excludedPaths,
		Redundancy:     redundancyValue,
	}
}
