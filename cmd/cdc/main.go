package main

import (
	"fmt"

	"cdc/internal/cli"
	"cdc/internal/utils"
)

// main is the entry point for the cdc command.
func main() {
	loggerInstance, loggerInitializationError := utils.NewApplicationLogger()
	if loggerInitializationError != nil {
		panic(fmt.Errorf("logger initialization failed: %w", loggerInitializationError))
	}
	defer loggerInstance.Sync()
	if applicationExecutionError := cli.Execute(loggerInstance); applicationExecutionError != nil {
		loggerInstance.Fatal(applicationExecutionError.Error())
	}
}
