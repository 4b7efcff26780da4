package allure

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bitrise-io/go-utils/retry"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/hashicorp/go-retryablehttp"
)

// AcceptedStatusCodes are the report URL responses treated as "report is available".
var AcceptedStatusCodes = []int{http.StatusOK, http.StatusAccepted, http.StatusNotModified}

// Client ...
type Client interface {
	CheckAvailability(reportURL string, step, timeout time.Duration) bool
	Suites(reportURL string) (SuiteNode, error)
	TestCase(reportURL, uid string) (TestCase, error)
}

type client struct {
	httpClient *retryablehttp.Client
	logger     log.Logger
}

// NewClient ...
func NewClient(httpClient *retryablehttp.Client, logger log.Logger) Client {
	return &client{
		httpClient: httpClient,
		logger:     logger,
	}
}

// CheckAvailability requests the report URL until it answers with one of the
// AcceptedStatusCodes or the timeout elapses, waiting step between attempts.
// Request errors count as failed attempts.
func (c client) CheckAvailability(reportURL string, step, timeout time.Duration) bool {
	retries := uint(0)
	if step > 0 {
		retries = uint(timeout / step)
	}

	err := retry.Times(retries).Wait(step).Try(func(attempt uint) error {
		statusCode, err := c.statusCode(reportURL)
		if err != nil {
			c.logger.Warnf("[Check Allure report URL] Attempt %d failed: %s", attempt+1, err)
			return err
		}

		c.logger.Printf("[Check Allure report URL] Status code: %d", statusCode)
		if !isAccepted(statusCode) {
			return fmt.Errorf("unexpected status code: %d", statusCode)
		}
		return nil
	})
	if err != nil {
		c.logger.Errorf("Allure report URL check failed by timeout (%s): %s", timeout, err)
		return false
	}
	return true
}

func (c client) statusCode(url string) (int, error) {
	req, err := retryablehttp.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warnf("Failed to close response body: %s", err)
		}
	}()

	return resp.StatusCode, nil
}

func isAccepted(statusCode int) bool {
	for _, code := range AcceptedStatusCodes {
		if code == statusCode {
			return true
		}
	}
	return false
}

// Suites downloads data/suites.json of the report.
func (c client) Suites(reportURL string) (SuiteNode, error) {
	var root SuiteNode
	if err := c.getJSON(joinURL(reportURL, "data/suites.json"), &root); err != nil {
		return SuiteNode{}, fmt.Errorf("failed to fetch Allure suites: %w", err)
	}
	return root, nil
}

// TestCase downloads data/test-cases/{uid}.json of the report.
func (c client) TestCase(reportURL, uid string) (TestCase, error) {
	var testCase TestCase
	if err := c.getJSON(joinURL(reportURL, "data/test-cases/"+uid+".json"), &testCase); err != nil {
		return TestCase{}, fmt.Errorf("failed to fetch Allure test case (%s): %w", uid, err)
	}
	return testCase, nil
}

func (c client) getJSON(url string, v interface{}) error {
	req, err := retryablehttp.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warnf("Failed to close response body: %s", err)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("GET %s: %s: %s", url, resp.Status, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response of %s: %w", url, err)
	}
	return nil
}

func joinURL(base, pth string) string {
	return strings.TrimRight(base, "/") + "/" + pth
}
