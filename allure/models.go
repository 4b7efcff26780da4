package allure

// Test case statuses reported by Allure.
const (
	StatusPassed  = "passed"
	StatusFailed  = "failed"
	StatusBroken  = "broken"
	StatusSkipped = "skipped"
)

// SuiteNode is one node of the data/suites.json tree. Leaf nodes (test cases)
// carry a status, inner nodes only a name and children.
type SuiteNode struct {
	Name      string      `json:"name"`
	UID       string      `json:"uid"`
	ParentUID string      `json:"parentUid"`
	Status    *string     `json:"status,omitempty"`
	Children  []SuiteNode `json:"children"`
}

// FailedTest ...
type FailedTest struct {
	SuiteName string
	UID       string
	ParentUID string
}

// TestCase is the data/test-cases/{uid}.json record of a single test.
type TestCase struct {
	UID           string  `json:"uid"`
	Name          string  `json:"name"`
	FullName      string  `json:"fullName"`
	Status        string  `json:"status"`
	StatusMessage *string `json:"statusMessage,omitempty"`
	Flaky         bool    `json:"flaky"`
	NewFailed     bool    `json:"newFailed"`
	NewBroken     bool    `json:"newBroken"`
	NewPassed     bool    `json:"newPassed"`
}
