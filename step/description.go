package step

import (
	"fmt"

	"github.com/bitrise-steplib/steps-allure-wrike-sync/allure"
)

const statusMessageLimit = 500

// TaskDescription renders the HTML description of the Wrike task created for a failed test.
func TaskDescription(reportURL string, failedTest allure.FailedTest, testCase allure.TestCase) string {
	statusMessage := "None"
	if testCase.StatusMessage != nil && *testCase.StatusMessage != "" {
		statusMessage = truncate(*testCase.StatusMessage, statusMessageLimit)
	}

	return fmt.Sprintf(`
<h1>%s</h1><br/>
<b>status</b>: %s<br/><b>flaky</b>: %s<br/>
<b>newFailed</b>: %s<br/><b>newBroken</b>: %s<br/><b>newPassed</b>: %s<br/><br/>
<b>statusMessage</b>: %s<br/><br/>Allure link: %s
`,
		testCase.Name,
		testCase.Status, flag(testCase.Flaky),
		flag(testCase.NewFailed), flag(testCase.NewBroken), flag(testCase.NewPassed),
		statusMessage, ReportLink(reportURL, failedTest))
}

// ReportLink points to the test inside the report's suites view.
func ReportLink(reportURL string, failedTest allure.FailedTest) string {
	return fmt.Sprintf("%s/#suites/%s/%s", reportURL, failedTest.ParentUID, failedTest.UID)
}

// flag renders booleans as True/False.
func flag(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
