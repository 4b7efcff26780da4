package wrike

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/hashicorp/go-retryablehttp"
)

// DefaultAPIURL ...
const DefaultAPIURL = "https://www.wrike.com/api/v4/"

// TaskStatusActive ...
const TaskStatusActive = "Active"

// Folder ...
type Folder struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Task ...
type Task struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type response[T any] struct {
	Kind string `json:"kind"`
	Data []T    `json:"data"`
}

// Client ...
type Client interface {
	Folders(parentID string) (map[string]string, error)
	CreateFolder(parentID, title string) (string, error)
	TaskTitles(folderID string) (map[string]bool, error)
	CreateTask(folderID, title, encodedDescription string) (Task, error)
}

type client struct {
	httpClient *retryablehttp.Client
	logger     log.Logger
	apiURL     string
	token      string
}

// NewClient ...
func NewClient(httpClient *retryablehttp.Client, logger log.Logger, apiURL, token string) Client {
	return &client{
		httpClient: httpClient,
		logger:     logger,
		apiURL:     strings.TrimRight(apiURL, "/"),
		token:      token,
	}
}

// Folders lists the direct child folders of parentID, keyed by title.
func (c client) Folders(parentID string) (map[string]string, error) {
	var resp response[Folder]
	endpoint := fmt.Sprintf("%s/folders/%s/folders?project=false&descendants=false", c.apiURL, parentID)
	if err := c.do(http.MethodGet, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("failed to list Wrike folders: %w", err)
	}

	folders := map[string]string{}
	for _, folder := range resp.Data {
		folders[folder.Title] = folder.ID
	}
	return folders, nil
}

// CreateFolder creates a child folder under parentID and returns its ID.
func (c client) CreateFolder(parentID, title string) (string, error) {
	var resp response[Folder]
	endpoint := fmt.Sprintf("%s/folders/%s/folders?title=%s", c.apiURL, parentID, url.QueryEscape(title))
	if err := c.do(http.MethodPost, endpoint, &resp); err != nil {
		return "", fmt.Errorf("failed to create Wrike folder (%s): %w", title, err)
	}
	if len(resp.Data) == 0 {
		return "", fmt.Errorf("failed to create Wrike folder (%s): empty response", title)
	}

	c.logger.Donef("New Wrike folder created: %s", title)
	return resp.Data[0].ID, nil
}

// TaskTitles returns the set of task titles in the folder.
func (c client) TaskTitles(folderID string) (map[string]bool, error) {
	var resp response[Task]
	endpoint := fmt.Sprintf("%s/folders/%s/tasks", c.apiURL, folderID)
	if err := c.do(http.MethodGet, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("failed to list Wrike tasks: %w", err)
	}

	titles := map[string]bool{}
	for _, task := range resp.Data {
		titles[task.Title] = true
	}
	return titles, nil
}

// CreateTask creates an Active task in the folder. The description has to be
// percent-encoded already, it is sent as is.
func (c client) CreateTask(folderID, title, encodedDescription string) (Task, error) {
	var resp response[Task]
	endpoint := fmt.Sprintf("%s/folders/%s/tasks?title=%s&description=%s&status=%s",
		c.apiURL, folderID, url.QueryEscape(title), encodedDescription, TaskStatusActive)
	if err := c.do(http.MethodPost, endpoint, &resp); err != nil {
		return Task{}, fmt.Errorf("failed to create Wrike task (%s): %w", title, err)
	}

	c.logger.Donef("New Wrike task created: %s", title)

	if len(resp.Data) == 0 {
		return Task{Title: title}, nil
	}
	return resp.Data[0], nil
}

func (c client) do(method, endpoint string, v interface{}) error {
	req, err := retryablehttp.NewRequest(method, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "bearer "+c.token)

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
		return fmt.Errorf("%s %s: %s: %s", method, req.URL.Path, resp.Status, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
