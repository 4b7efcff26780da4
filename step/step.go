package step

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-allure-wrike-sync/allure"
	"github.com/bitrise-steplib/steps-allure-wrike-sync/cache"
	"github.com/bitrise-steplib/steps-allure-wrike-sync/output"
	"github.com/bitrise-steplib/steps-allure-wrike-sync/wrike"
)

const (
	defaultPollTimeoutSec = 300
	defaultPollStepSec    = 30
)

// ErrReportNotAccessible ...
var ErrReportNotAccessible = errors.New("Allure report url not accessible")

// Input ...
type Input struct {
	ReportURL string `env:"allure_report_url"`

	WrikeAPIURL       string          `env:"WRIKE_API_URL"`
	WrikeToken        stepconf.Secret `env:"WRIKE_TOKEN,required"`
	WrikeRootFolderID string          `env:"WRIKE_ROOT_FOLDER_ID,required"`

	PollTimeout int `env:"ALLURE_REPORT_URL_POLL_TIMEOUT"`
	PollStep    int `env:"ALLURE_REPORT_URL_POLL_STEP"`

	// Debug
	Verbose bool `env:"verbose"`
}

// Config ...
type Config struct {
	ReportURL string

	WrikeAPIURL       string
	WrikeToken        stepconf.Secret
	WrikeRootFolderID string

	PollTimeout time.Duration
	PollStep    time.Duration
}

// ConfigParser ...
type ConfigParser struct {
	inputParser stepconf.InputParser
	logger      log.Logger
}

// NewConfigParser ...
func NewConfigParser(inputParser stepconf.InputParser, logger log.Logger) ConfigParser {
	return ConfigParser{
		inputParser: inputParser,
		logger:      logger,
	}
}

// ProcessConfig parses the step inputs. The first positional argument, when given,
// overrides the allure_report_url input.
func (p ConfigParser) ProcessConfig(args []string) (Config, error) {
	input := Input{
		WrikeAPIURL: wrike.DefaultAPIURL,
		PollTimeout: defaultPollTimeoutSec,
		PollStep:    defaultPollStepSec,
	}
	if err := p.inputParser.Parse(&input); err != nil {
		return Config{}, err
	}
	if len(args) > 0 && args[0] != "" {
		input.ReportURL = args[0]
	}

	stepconf.Print(input)
	p.logger.Println()

	p.logger.EnableDebugLog(input.Verbose)

	if input.ReportURL == "" {
		return Config{}, errors.New("Allure report url not provided")
	}
	if _, err := url.ParseRequestURI(input.ReportURL); err != nil {
		return Config{}, fmt.Errorf("invalid Allure report url (%s): %w", input.ReportURL, err)
	}

	if input.PollTimeout <= 0 {
		return Config{}, fmt.Errorf("invalid Allure report URL poll timeout (ALLURE_REPORT_URL_POLL_TIMEOUT): %d, should be greater than 0", input.PollTimeout)
	}
	if input.PollStep <= 0 {
		return Config{}, fmt.Errorf("invalid Allure report URL poll step (ALLURE_REPORT_URL_POLL_STEP): %d, should be greater than 0", input.PollStep)
	}

	return Config{
		ReportURL: strings.TrimRight(input.ReportURL, "/"),

		WrikeAPIURL:       input.WrikeAPIURL,
		WrikeToken:        input.WrikeToken,
		WrikeRootFolderID: input.WrikeRootFolderID,

		PollTimeout: time.Duration(input.PollTimeout) * time.Second,
		PollStep:    time.Duration(input.PollStep) * time.Second,
	}, nil
}

// AllureWrikeSync ...
type AllureWrikeSync struct {
	logger         log.Logger
	allureClient   allure.Client
	wrikeClient    wrike.Client
	outputExporter output.Exporter
}

// NewAllureWrikeSync ...
func NewAllureWrikeSync(logger log.Logger, allureClient allure.Client, wrikeClient wrike.Client, outputExporter output.Exporter) AllureWrikeSync {
	return AllureWrikeSync{
		logger:         logger,
		allureClient:   allureClient,
		wrikeClient:    wrikeClient,
		outputExporter: outputExporter,
	}
}

// Result ...
type Result struct {
	FailedTests  int
	CreatedTasks []string
	SkippedTasks int
}

// Run mirrors the failed and broken tests of the report into Wrike tasks.
// Any request failure aborts the whole run.
func (s AllureWrikeSync) Run(cfg Config) (Result, error) {
	s.logger.Infof("Checking Allure report URL")
	if !s.allureClient.CheckAvailability(cfg.ReportURL, cfg.PollStep, cfg.PollTimeout) {
		return Result{}, fmt.Errorf("%w: %s", ErrReportNotAccessible, cfg.ReportURL)
	}
	s.logger.Donef("Allure report URL is valid and accessible: %s", cfg.ReportURL)
	s.logger.Println()

	folders := cache.NewFolderCache(s.wrikeClient, s.logger, cfg.WrikeRootFolderID)
	if err := folders.Load(); err != nil {
		return Result{}, err
	}

	suites, err := s.allureClient.Suites(cfg.ReportURL)
	if err != nil {
		return Result{}, err
	}

	failedTests := allure.FindFailedTests(suites)
	result := Result{FailedTests: len(failedTests)}

	s.logger.Println()
	s.logger.Infof("Syncing %d failed test(s)", len(failedTests))

	for _, failedTest := range failedTests {
		testCase, err := s.allureClient.TestCase(cfg.ReportURL, failedTest.UID)
		if err != nil {
			return result, err
		}

		folderID, err := folders.Resolve(failedTest.SuiteName)
		if err != nil {
			return result, err
		}

		existingTasks, err := s.wrikeClient.TaskTitles(folderID)
		if err != nil {
			return result, err
		}

		title := allure.CleanName(testCase.Name)
		if existingTasks[title] {
			s.logger.Debugf("Task for '%s' already exist. Skipped.", title)
			result.SkippedTasks++
			continue
		}

		description := TaskDescription(cfg.ReportURL, failedTest, testCase)
		if _, err := s.wrikeClient.CreateTask(folderID, title, url.QueryEscape(description)); err != nil {
			return result, err
		}
		result.CreatedTasks = append(result.CreatedTasks, title)
	}

	printSummary(s.logger, result)

	return result, nil
}

// ExportOpts ...
type ExportOpts struct {
	Failed bool
	Result Result
}

// Export ...
func (s AllureWrikeSync) Export(opts ExportOpts) error {
	s.outputExporter.ExportSyncResult(opts.Failed)

	return s.outputExporter.ExportSummary(output.Summary{
		FailedTests:  opts.Result.FailedTests,
		CreatedTasks: opts.Result.CreatedTasks,
		SkippedTasks: opts.Result.SkippedTasks,
	})
}
