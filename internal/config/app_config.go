package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// GlobalConfigDirectoryName is the directory under the user home that
	// holds the global configuration file.
	GlobalConfigDirectoryName = ".config/cdc"
	// ConfigFileName is the base name of the global configuration file.
	ConfigFileName = "config.yaml"
	// LocalConfigFileName is the per-directory configuration file.
	LocalConfigFileName = ".cdc.yaml"
)

// ApplicationConfiguration holds defaults applied beneath explicit command
// line flags.
type ApplicationConfiguration struct {
	OutputFileName string   `mapstructure:"output_file_name"`
	Exclude        []string `mapstructure:"exclude"`
	Redundancy     string   `mapstructure:"redundancy"`
}

// LoadOptions controls where application configuration is discovered.
type LoadOptions struct {
	// WorkingDirectory anchors the local configuration lookup; the current
	// directory is used when empty.
	WorkingDirectory string
}

// LoadApplicationConfiguration merges the global configuration file under
// the user home with the local one in the working directory. The local file
// wins field by field. Missing files are not an error.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, workingDirectoryError := os.Getwd()
		if workingDirectoryError != nil {
			return ApplicationConfiguration{}, fmt.Errorf("determine working directory: %w", workingDirectoryError)
		}
		workingDirectory = currentDirectory
	}

	var merged ApplicationConfiguration

	if homeDirectory, homeError := os.UserHomeDir(); homeError == nil && homeDirectory != "" {
		globalPath := filepath.Join(homeDirectory, GlobalConfigDirectoryName, ConfigFileName)
		globalConfiguration, loadError := loadConfigurationFromPath(globalPath)
		if loadError != nil {
			return ApplicationConfiguration{}, loadError
		}
		merged = merged.Merge(globalConfiguration)
	}

	localPath := filepath.Join(workingDirectory, LocalConfigFileName)
	localConfiguration, loadError := loadConfigurationFromPath(localPath)
	if loadError != nil {
		return ApplicationConfiguration{}, loadError
	}
	merged = merged.Merge(localConfiguration)

	return merged, nil
}

func loadConfigurationFromPath(configurationPath string) (ApplicationConfiguration, error) {
	information, statError := os.Stat(configurationPath)
	if statError != nil {
		if os.IsNotExist(statError) {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", configurationPath, statError)
	}
	if information.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", configurationPath)
	}

	reader := viper.New()
	reader.SetConfigFile(configurationPath)
	if readError := reader.ReadInConfig(); readError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", configurationPath, readError)
	}
	var configuration ApplicationConfiguration
	if decodeError := reader.Unmarshal(&configuration); decodeError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", configurationPath, decodeError)
	}
	return configuration, nil
}

// Merge overlays override onto the receiver, returning the combined
// configuration. Only fields set in the override replace existing values.
func (configuration ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := configuration
	if override.OutputFileName != "" {
		result.OutputFileName = override.OutputFileName
	}
	if len(override.Exclude) > 0 {
		result.Exclude = append([]string{}, override.Exclude...)
	}
	if override.Redundancy != "" {
		result.Redundancy = override.Redundancy
	}
	return result
}
