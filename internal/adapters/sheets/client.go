// Package sheets talks to the spreadsheet-backed web app that stores every event.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"

	"weddingplanner/internal/domain"
)

// maxErrorBody bounds how much of a failed response is copied into an error.
const maxErrorBody = 4096

type sheetsClient struct {
	baseURL string
	client  *http.Client
}

// NewClient returns a Persistence backed by the web app at baseURL. An empty baseURL
// selects the offline demo backend.
func NewClient(baseURL string, client *http.Client) domain.Persistence {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return NewDemo()
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &sheetsClient{baseURL: baseURL, client: client}
}

type actionRequest struct {
	Action string `json:"action"`
	Data   any    `json:"data"`
}

type entityRef struct {
	ID      string `json:"id"`
	EventID string `json:"weddingId"`
}

// post sends one action. The web app only accepts simple requests, so the JSON body goes
// out as text/plain.
func (c *sheetsClient) post(ctx context.Context, action string, data any) ([]byte, error) {
	payload, err := json.Marshal(actionRequest{Action: action, Data: data})
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s request: %w", action, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", action, err)
	}
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")
	return c.do(req, action)
}

func (c *sheetsClient) do(req *http.Request, action string) ([]byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s request failed: %v", domain.ErrRemoteSync, action, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("%w: %s returned status %d: %s",
			domain.ErrRemoteSync, action, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s response: %v", domain.ErrRemoteSync, action, err)
	}
	if status := gjson.GetBytes(body, "status"); status.Exists() && status.String() == "error" {
		return body, fmt.Errorf("%w: %s rejected: %s", domain.ErrRemoteSync, action, gjson.GetBytes(body, "message").String())
	}
	return body, nil
}

func (c *sheetsClient) CreateEvent(ctx context.Context, coupleName string) (string, error) {
	body, err := c.post(ctx, "createWedding", map[string]string{"coupleName": coupleName})
	if err != nil {
		return "", err
	}
	id := gjson.GetBytes(body, "weddingId").String()
	if id == "" {
		return "", fmt.Errorf("%w: createWedding response missing weddingId", domain.ErrRemoteSync)
	}
	return id, nil
}

func (c *sheetsClient) JoinEvent(ctx context.Context, eventID string) (string, error) {
	body, err := c.post(ctx, "joinWedding", map[string]string{"weddingId": eventID})
	if err != nil {
		// The web app answers unknown ids with status "error".
		if body != nil {
			return "", fmt.Errorf("%w: %s", domain.ErrNotFound, gjson.GetBytes(body, "message").String())
		}
		return "", err
	}
	return gjson.GetBytes(body, "coupleName").String(), nil
}

func (c *sheetsClient) FetchAll(ctx context.Context, eventID string) (domain.Snapshot, error) {
	u := fmt.Sprintf("%s?action=getAll&weddingId=%s", c.baseURL, url.QueryEscape(eventID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("failed to create getAll request: %w", err)
	}
	body, err := c.do(req, "getAll")
	if err != nil {
		return domain.Snapshot{}, err
	}
	if !gjson.ValidBytes(body) || !gjson.ParseBytes(body).IsObject() {
		return domain.Snapshot{}, fmt.Errorf("%w: getAll response is not a JSON object", domain.ErrRemoteSync)
	}
	return decodeSnapshot(body), nil
}

func (c *sheetsClient) LogVisit(ctx context.Context, eventID, name string) error {
	_, err := c.post(ctx, "logVisit", map[string]string{"weddingId": eventID, "name": name})
	return err
}

func (c *sheetsClient) AddGuest(ctx context.Context, g domain.Guest) error {
	_, err := c.post(ctx, "addGuest", g)
	return err
}

func (c *sheetsClient) UpdateGuest(ctx context.Context, g domain.Guest) error {
	_, err := c.post(ctx, "updateGuest", g)
	return err
}

func (c *sheetsClient) DeleteGuest(ctx context.Context, id, eventID string) error {
	_, err := c.post(ctx, "deleteGuest", entityRef{ID: id, EventID: eventID})
	return err
}

func (c *sheetsClient) AddTable(ctx context.Context, t domain.Table) error {
	_, err := c.post(ctx, "addTable", t)
	return err
}

func (c *sheetsClient) AddVendor(ctx context.Context, v domain.Vendor) error {
	_, err := c.post(ctx, "addVendor", v)
	return err
}

func (c *sheetsClient) UpdateVendor(ctx context.Context, v domain.Vendor) error {
	_, err := c.post(ctx, "updateVendor", v)
	return err
}

func (c *sheetsClient) DeleteVendor(ctx context.Context, id, eventID string) error {
	_, err := c.post(ctx, "deleteVendor", entityRef{ID: id, EventID: eventID})
	return err
}

func (c *sheetsClient) AddTask(ctx context.Context, t domain.Task) error {
	_, err := c.post(ctx, "addTask", t)
	return err
}

func (c *sheetsClient) UpdateTask(ctx context.Context, t domain.Task) error {
	_, err := c.post(ctx, "updateTask", t)
	return err
}

func (c *sheetsClient) DeleteTask(ctx context.Context, id, eventID string) error {
	_, err := c.post(ctx, "deleteTask", entityRef{ID: id, EventID: eventID})
	return err
}
