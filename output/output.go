package output

import (
	"fmt"
	"strconv"

	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/log"
)

const (
	syncResultEnvVarKey         = "ALLURE_WRIKE_SYNC_RESULT"
	failedTestCountEnvVarKey    = "ALLURE_WRIKE_FAILED_TEST_COUNT"
	createdTaskCountEnvVarKey   = "ALLURE_WRIKE_CREATED_TASK_COUNT"
	skippedTaskCountEnvVarKey   = "ALLURE_WRIKE_SKIPPED_TASK_COUNT"
	createdTasksEnvVarKey       = "ALLURE_WRIKE_CREATED_TASKS"
	createdTasksEnvVarSizeLimit = 1024
)

// OutputExporter exposes values to subsequent steps (export.Exporter).
type OutputExporter interface {
	ExportOutput(key, value string) error
}

// Summary ...
type Summary struct {
	FailedTests  int
	CreatedTasks []string
	SkippedTasks int
}

// Exporter ...
type Exporter interface {
	ExportSyncResult(failed bool)
	ExportSummary(summary Summary) error
}

type exporter struct {
	envRepository  env.Repository
	logger         log.Logger
	outputExporter OutputExporter
}

// NewExporter ...
func NewExporter(envRepository env.Repository, logger log.Logger, outputExporter OutputExporter) Exporter {
	return &exporter{
		envRepository:  envRepository,
		logger:         logger,
		outputExporter: outputExporter,
	}
}

func (e exporter) ExportSyncResult(failed bool) {
	status := "succeeded"
	if failed {
		status = "failed"
	}
	if err := e.envRepository.Set(syncResultEnvVarKey, status); err != nil {
		e.logger.Warnf("Failed to export: %s: %s", syncResultEnvVarKey, err)
	}
}

func (e exporter) ExportSummary(summary Summary) error {
	counts := []struct {
		key   string
		value int
	}{
		{key: failedTestCountEnvVarKey, value: summary.FailedTests},
		{key: createdTaskCountEnvVarKey, value: len(summary.CreatedTasks)},
		{key: skippedTaskCountEnvVarKey, value: summary.SkippedTasks},
	}
	for _, count := range counts {
		if err := e.outputExporter.ExportOutput(count.key, strconv.Itoa(count.value)); err != nil {
			return fmt.Errorf("failed to export %s: %w", count.key, err)
		}
	}

	if len(summary.CreatedTasks) == 0 {
		return nil
	}

	var createdTasksMessage string
	for i, title := range summary.CreatedTasks {
		line := fmt.Sprintf("- %s\n", title)

		if len(createdTasksMessage)+len(line) > createdTasksEnvVarSizeLimit {
			e.logger.Warnf("%s env var size limit (%d characters) exceeded. Skipping %d task titles.", createdTasksEnvVarKey, createdTasksEnvVarSizeLimit, len(summary.CreatedTasks)-i)
			break
		}

		createdTasksMessage += line
	}

	if err := e.outputExporter.ExportOutput(createdTasksEnvVarKey, createdTasksMessage); err != nil {
		return fmt.Errorf("failed to export %s: %w", createdTasksEnvVarKey, err)
	}

	return nil
}
