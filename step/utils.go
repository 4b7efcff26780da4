package step

import (
	"github.com/bitrise-io/go-utils/v2/log"
)

func printSummary(logger log.Logger, result Result) {
	logger.Println()
	logger.Infof("Summary")
	logger.Printf("- failed tests: %d", result.FailedTests)
	logger.Printf("- created tasks: %d", len(result.CreatedTasks))
	for _, title := range result.CreatedTasks {
		logger.Printf("  - %s", title)
	}
	logger.Printf("- skipped tasks: %d", result.SkippedTasks)

	if len(result.CreatedTasks) == 0 {
		logger.Donef("Wrike is up to date, no new task created.")
	} else {
		logger.Donef("%d Wrike task(s) created.", len(result.CreatedTasks))
	}
}
