package main

import (
	"os"

	"github.com/bitrise-io/go-steputils/v2/export"
	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/retryhttp"
	"github.com/bitrise-steplib/steps-allure-wrike-sync/allure"
	"github.com/bitrise-steplib/steps-allure-wrike-sync/output"
	"github.com/bitrise-steplib/steps-allure-wrike-sync/step"
	"github.com/bitrise-steplib/steps-allure-wrike-sync/wrike"
	"github.com/hashicorp/go-retryablehttp"
)

func main() {
	os.Exit(run(os.Args[1:], env.NewRepository()))
}

func run(args []string, envRepository env.Repository) int {
	logger := log.NewLogger()

	configParser := step.NewConfigParser(stepconf.NewInputParser(envRepository), logger)
	config, err := configParser.ProcessConfig(args)
	if err != nil {
		logger.Println()
		logger.Errorf("Process config: %s", err)
		return 1
	}

	syncStep := newSyncStep(envRepository, logger, config)

	result, runErr := syncStep.Run(config)

	exportErr := syncStep.Export(step.ExportOpts{
		Failed: runErr != nil,
		Result: result,
	})

	if runErr != nil {
		if exportErr != nil {
			logger.Warnf("Failed to export outputs: %s", exportErr)
		}
		logger.Println()
		logger.Errorf("Sync failed: %s", runErr)
		return 1
	}

	if exportErr != nil {
		logger.Warnf("Failed to export outputs: %s", exportErr)
	}

	return 0
}

func newSyncStep(envRepository env.Repository, logger log.Logger, config step.Config) step.AllureWrikeSync {
	httpClient := newHTTPClient(logger)
	outputExporter := export.NewExporter(command.NewFactory(envRepository), export.NewFileManager())

	return step.NewAllureWrikeSync(
		logger,
		allure.NewClient(httpClient, logger),
		wrike.NewClient(httpClient, logger, config.WrikeAPIURL, string(config.WrikeToken)),
		output.NewExporter(envRepository, logger, &outputExporter),
	)
}

// Requests are not retried, only the report availability check is repeated.
func newHTTPClient(logger log.Logger) *retryablehttp.Client {
	client := retryhttp.NewClient(logger)
	client.RetryMax = 0
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	return client
}
