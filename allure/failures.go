package allure

import "strings"

// FindFailedTests walks the suite tree exactly four levels deep
// (root -> suite group -> suite -> test case) and returns every test case
// whose status is failed or broken, in document order.
// The suite name comes from the second level node. Test cases without a
// status are skipped, deeper or shallower trees are not supported.
func FindFailedTests(root SuiteNode) []FailedTest {
	var failedTests []FailedTest
	for _, group := range root.Children {
		for _, suite := range group.Children {
			for _, class := range suite.Children {
				for _, testCase := range class.Children {
					if !isFailure(testCase.Status) {
						continue
					}

					failedTests = append(failedTests, FailedTest{
						SuiteName: suite.Name,
						UID:       testCase.UID,
						ParentUID: testCase.ParentUID,
					})
				}
			}
		}
	}
	return failedTests
}

func isFailure(status *string) bool {
	if status == nil {
		return false
	}
	return *status == StatusFailed || *status == StatusBroken
}

// CleanName strips the parameterization suffix (everything from the first `[`)
// from a test name.
func CleanName(name string) string {
	if i := strings.Index(name, "["); i >= 0 {
		return name[:i]
	}
	return name
}
