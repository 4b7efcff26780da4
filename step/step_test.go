package step

import (
	"errors"
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-allure-wrike-sync/allure"
	"github.com/bitrise-steplib/steps-allure-wrike-sync/output"
	"github.com/bitrise-steplib/steps-allure-wrike-sync/step/mocks"
	"github.com/bitrise-steplib/steps-allure-wrike-sync/wrike"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	reportURL    = "https://reports.example.com/allure"
	rootFolderID = "ROOT"
)

type stepMocks struct {
	allureClient   *mocks.AllureClient
	wrikeClient    *mocks.WrikeClient
	outputExporter *mocks.Exporter
}

func Test_GivenDefaultInputs_WhenParsesConfig_ThenUsesDefaults(t *testing.T) {
	// Given
	configParser := createConfigParser(t, defaultEnvValues())

	// When
	config, err := configParser.ProcessConfig([]string{reportURL + "/"})

	// Then
	require.NoError(t, err)
	assert.Equal(t, Config{
		ReportURL:         reportURL,
		WrikeAPIURL:       wrike.DefaultAPIURL,
		WrikeToken:        stepconf.Secret("token"),
		WrikeRootFolderID: rootFolderID,
		PollTimeout:       300 * time.Second,
		PollStep:          30 * time.Second,
	}, config)
}

func Test_GivenPollInputs_WhenParsesConfig_ThenOverridesDefaults(t *testing.T) {
	// Given
	envValues := defaultEnvValues()
	envValues["WRIKE_API_URL"] = "https://app-eu.wrike.com/api/v4"
	envValues["ALLURE_REPORT_URL_POLL_TIMEOUT"] = "60"
	envValues["ALLURE_REPORT_URL_POLL_STEP"] = "15"
	envValues["allure_report_url"] = reportURL
	configParser := createConfigParser(t, envValues)

	// When
	config, err := configParser.ProcessConfig(nil)

	// Then
	require.NoError(t, err)
	assert.Equal(t, reportURL, config.ReportURL)
	assert.Equal(t, "https://app-eu.wrike.com/api/v4", config.WrikeAPIURL)
	assert.Equal(t, 60*time.Second, config.PollTimeout)
	assert.Equal(t, 15*time.Second, config.PollStep)
}

func Test_GivenNoReportURL_WhenParsesConfig_ThenFails(t *testing.T) {
	// Given
	configParser := createConfigParser(t, defaultEnvValues())

	// When
	_, err := configParser.ProcessConfig(nil)

	// Then
	require.EqualError(t, err, "Allure report url not provided")
}

func Test_GivenNoWrikeToken_WhenParsesConfig_ThenFails(t *testing.T) {
	// Given
	envValues := defaultEnvValues()
	envValues["WRIKE_TOKEN"] = ""
	configParser := createConfigParser(t, envValues)

	// When
	_, err := configParser.ProcessConfig([]string{reportURL})

	// Then
	require.Error(t, err)
}

func Test_GivenZeroPollStep_WhenParsesConfig_ThenFails(t *testing.T) {
	// Given
	envValues := defaultEnvValues()
	envValues["ALLURE_REPORT_URL_POLL_STEP"] = "-1"
	configParser := createConfigParser(t, envValues)

	// When
	_, err := configParser.ProcessConfig([]string{reportURL})

	// Then
	require.Error(t, err)
}

func Test_GivenUnreachableReport_WhenRuns_ThenFailsBeforeCallingWrike(t *testing.T) {
	// Given
	step, mocks := createStepAndMocks(t)
	mocks.allureClient.On("CheckAvailability", reportURL, time.Second, 2*time.Second).Return(false)

	// When
	_, err := step.Run(defaultConfig())

	// Then
	require.ErrorIs(t, err, ErrReportNotAccessible)
	mocks.wrikeClient.AssertNotCalled(t, "Folders", mock.Anything)
	mocks.allureClient.AssertNotCalled(t, "Suites", mock.Anything)
}

func Test_GivenTaskAlreadyExists_WhenRuns_ThenSkipsCreation(t *testing.T) {
	// Given
	logger := &recordingLogger{Logger: log.NewLogger()}
	step, mocks := createStepAndMocksWithLogger(t, logger)
	mockReport(mocks, loginSuites(), allure.TestCase{Name: "test_login[chrome]", Status: allure.StatusFailed})
	mocks.wrikeClient.On("Folders", rootFolderID).Return(map[string]string{"Login": "F1"}, nil)
	mocks.wrikeClient.On("TaskTitles", "F1").Return(map[string]bool{"test_login": true}, nil)

	// When
	result, err := step.Run(defaultConfig())

	// Then
	require.NoError(t, err)
	assert.Equal(t, Result{FailedTests: 1, SkippedTasks: 1}, result)
	mocks.wrikeClient.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything, mock.Anything)
	mocks.wrikeClient.AssertNotCalled(t, "CreateFolder", mock.Anything, mock.Anything)
	assert.Equal(t, []string{"Task for 'test_login' already exist. Skipped."}, logger.debugMessages)
}

func Test_GivenNewFailedTest_WhenRuns_ThenCreatesTaskWithEncodedDescription(t *testing.T) {
	// Given
	step, mocks := createStepAndMocks(t)
	mockReport(mocks, loginSuites(), allure.TestCase{Name: "test_logout", Status: allure.StatusFailed})
	mocks.wrikeClient.On("Folders", rootFolderID).Return(map[string]string{"Login": "F1"}, nil)
	mocks.wrikeClient.On("TaskTitles", "F1").Return(map[string]bool{}, nil)

	var encodedDescription string
	mocks.wrikeClient.On("CreateTask", "F1", "test_logout", mock.Anything).
		Return(wrike.Task{ID: "T1", Title: "test_logout"}, nil).
		Run(func(args mock.Arguments) {
			encodedDescription = args.String(2)
		}).Once()

	// When
	result, err := step.Run(defaultConfig())

	// Then
	require.NoError(t, err)
	assert.Equal(t, []string{"test_logout"}, result.CreatedTasks)

	description, err := url.QueryUnescape(encodedDescription)
	require.NoError(t, err)
	assert.Contains(t, description, reportURL+"/#suites/p1/u1")
	assert.Contains(t, description, "<h1>test_logout</h1>")
	assert.NotContains(t, encodedDescription, "<h1>")
}

func Test_GivenMissingSuiteFolder_WhenRuns_ThenCreatesFolderOnce(t *testing.T) {
	// Given
	step, mocks := createStepAndMocks(t)
	suites := parseSuites(t, `{"children":[{"children":[{"name":"Signup","children":[{"children":[
		{"status":"failed","uid":"u1","parentUid":"p1"},
		{"status":"broken","uid":"u2","parentUid":"p1"}
	]}]}]}]}`)
	mocks.allureClient.On("CheckAvailability", reportURL, time.Second, 2*time.Second).Return(true)
	mocks.allureClient.On("Suites", reportURL).Return(suites, nil)
	mocks.allureClient.On("TestCase", reportURL, "u1").Return(allure.TestCase{Name: "test_signup[en]"}, nil)
	mocks.allureClient.On("TestCase", reportURL, "u2").Return(allure.TestCase{Name: "test_signup[de]"}, nil)

	mocks.wrikeClient.On("Folders", rootFolderID).Return(map[string]string{}, nil).Once()
	mocks.wrikeClient.On("CreateFolder", rootFolderID, "Signup").Return("F9", nil).Once()
	mocks.wrikeClient.On("TaskTitles", "F9").Return(map[string]bool{}, nil).Once()
	mocks.wrikeClient.On("TaskTitles", "F9").Return(map[string]bool{"test_signup": true}, nil).Once()
	mocks.wrikeClient.On("CreateTask", "F9", "test_signup", mock.Anything).Return(wrike.Task{ID: "T1"}, nil).Once()

	// When
	result, err := step.Run(defaultConfig())

	// Then
	require.NoError(t, err)
	assert.Equal(t, Result{FailedTests: 2, CreatedTasks: []string{"test_signup"}, SkippedTasks: 1}, result)
}

func Test_GivenTaskCreationFails_WhenRuns_ThenAbortsRun(t *testing.T) {
	// Given
	step, mocks := createStepAndMocks(t)
	suites := parseSuites(t, `{"children":[{"children":[{"name":"Login","children":[{"children":[
		{"status":"failed","uid":"u1","parentUid":"p1"},
		{"status":"failed","uid":"u2","parentUid":"p1"}
	]}]}]}]}`)
	mocks.allureClient.On("CheckAvailability", reportURL, time.Second, 2*time.Second).Return(true)
	mocks.allureClient.On("Suites", reportURL).Return(suites, nil)
	mocks.allureClient.On("TestCase", reportURL, "u1").Return(allure.TestCase{Name: "test_login"}, nil)
	mocks.wrikeClient.On("Folders", rootFolderID).Return(map[string]string{"Login": "F1"}, nil)
	mocks.wrikeClient.On("TaskTitles", "F1").Return(map[string]bool{}, nil)
	mocks.wrikeClient.On("CreateTask", "F1", "test_login", mock.Anything).Return(wrike.Task{}, errors.New("400 Bad Request"))

	// When
	_, err := step.Run(defaultConfig())

	// Then
	require.Error(t, err)
	mocks.allureClient.AssertNotCalled(t, "TestCase", reportURL, "u2")
}

func Test_GivenResult_WhenExports_ThenExportsSummary(t *testing.T) {
	// Given
	step, mocks := createStepAndMocks(t)
	mocks.outputExporter.On("ExportSyncResult", false).Return()
	mocks.outputExporter.On("ExportSummary", output.Summary{FailedTests: 2, CreatedTasks: []string{"test_logout"}, SkippedTasks: 1}).Return(nil)

	// When
	err := step.Export(ExportOpts{
		Result: Result{FailedTests: 2, CreatedTasks: []string{"test_logout"}, SkippedTasks: 1},
	})

	// Then
	require.NoError(t, err)
}

func defaultEnvValues() map[string]string {
	return map[string]string{
		"WRIKE_TOKEN":          "token",
		"WRIKE_ROOT_FOLDER_ID": rootFolderID,
		"verbose":              "yes",
	}
}

func defaultConfig() Config {
	return Config{
		ReportURL:         reportURL,
		WrikeAPIURL:       wrike.DefaultAPIURL,
		WrikeToken:        "token",
		WrikeRootFolderID: rootFolderID,
		PollTimeout:       2 * time.Second,
		PollStep:          time.Second,
	}
}

func loginSuites() allure.SuiteNode {
	failed := allure.StatusFailed
	passed := allure.StatusPassed
	return allure.SuiteNode{Children: []allure.SuiteNode{
		{Children: []allure.SuiteNode{
			{Name: "Login", Children: []allure.SuiteNode{
				{Children: []allure.SuiteNode{
					{Status: &failed, UID: "u1", ParentUID: "p1"},
					{Status: &passed, UID: "u2", ParentUID: "p1"},
				}},
			}},
		}},
	}}
}

func mockReport(mocks stepMocks, suites allure.SuiteNode, testCase allure.TestCase) {
	mocks.allureClient.On("CheckAvailability", reportURL, time.Second, 2*time.Second).Return(true)
	mocks.allureClient.On("Suites", reportURL).Return(suites, nil)
	mocks.allureClient.On("TestCase", reportURL, "u1").Return(testCase, nil)
}

func createConfigParser(t *testing.T, envValues map[string]string) ConfigParser {
	envRepository := mocks.NewRepository(t)

	call := envRepository.On("Get", mock.Anything)
	call.RunFn = func(arguments mock.Arguments) {
		key := arguments[0].(string)
		value := envValues[key]
		call.ReturnArguments = mock.Arguments{value}
	}

	inputParser := stepconf.NewInputParser(envRepository)
	return NewConfigParser(inputParser, log.NewLogger())
}

type recordingLogger struct {
	log.Logger
	debugMessages []string
}

func (l *recordingLogger) Debugf(format string, v ...interface{}) {
	l.debugMessages = append(l.debugMessages, fmt.Sprintf(format, v...))
	l.Logger.Debugf(format, v...)
}

func createStepAndMocks(t *testing.T) (AllureWrikeSync, stepMocks) {
	return createStepAndMocksWithLogger(t, log.NewLogger())
}

func createStepAndMocksWithLogger(t *testing.T, logger log.Logger) (AllureWrikeSync, stepMocks) {
	allureClient := mocks.NewAllureClient(t)
	wrikeClient := mocks.NewWrikeClient(t)
	outputExporter := mocks.NewExporter(t)

	step := NewAllureWrikeSync(logger, allureClient, wrikeClient, outputExporter)
	mocks := stepMocks{
		allureClient:   allureClient,
		wrikeClient:    wrikeClient,
		outputExporter: outputExporter,
	}

	return step, mocks
}
