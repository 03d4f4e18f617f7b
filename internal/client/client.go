// Package client talks to the webcraft HTTP API. It implements the chat
// turn contract: read the SSE stream, and run the local engine whenever the
// server asks for it or the stream fails.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"webcraft/internal/domain/models/chat"
	"webcraft/internal/domain/models/codegen"
	chatSvc "webcraft/internal/domain/services/chat"
	"webcraft/internal/service/files"
)

// Reveal defaults for simulated streaming of local output
const (
	DefaultRevealStep     = 24
	DefaultRevealInterval = 15 * time.Millisecond
)

// Generator is the local engine used when the server cannot answer
type Generator interface {
	Generate(prompt string) codegen.Result
}

// Client is an HTTP client for the webcraft API
type Client struct {
	baseURL        string
	http           *http.Client
	generator      Generator
	revealStep     int
	revealInterval time.Duration
	logger         *slog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client. It must not set a
// request timeout shorter than the longest expected stream.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithReveal sets the simulated streaming step (in characters) and interval
func WithReveal(step int, interval time.Duration) Option {
	return func(c *Client) {
		c.revealStep = step
		c.revealInterval = interval
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a client for the server at baseURL
func New(baseURL string, generator Generator, opts ...Option) *Client {
	c := &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		http:           &http.Client{},
		generator:      generator,
		revealStep:     DefaultRevealStep,
		revealInterval: DefaultRevealInterval,
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is a non-2xx response, decoded from its problem details when possible
type APIError struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%d %s: %s", e.Status, e.Title, e.Detail)
	}
	return fmt.Sprintf("%d %s", e.Status, e.Title)
}

// Health returns the server health report
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var out HealthStatus
	if err := c.do(ctx, http.MethodGet, "/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// HealthStatus mirrors GET /health
type HealthStatus struct {
	Status  string `json:"status"`
	AIMode  string `json:"aiMode"`
	Message string `json:"message"`
}

// ListConversations returns all conversations, newest first
func (c *Client) ListConversations(ctx context.Context) ([]chat.Conversation, error) {
	var out []chat.Conversation
	if err := c.do(ctx, http.MethodGet, "/conversations", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateConversation creates a conversation; an empty title means "New Chat"
func (c *Client) CreateConversation(ctx context.Context, title string) (*chat.Conversation, error) {
	var out chat.Conversation
	req := chatSvc.CreateConversationRequest{Title: title}
	if err := c.do(ctx, http.MethodPost, "/conversations", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetConversation returns a conversation with its messages
func (c *Client) GetConversation(ctx context.Context, id string) (*chat.ConversationWithMessages, error) {
	var out chat.ConversationWithMessages
	if err := c.do(ctx, http.MethodGet, "/conversations/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteConversation deletes a conversation
func (c *Client) DeleteConversation(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/conversations/"+id, nil, nil)
}

// UpdateContext merges a project context patch
func (c *Client) UpdateContext(ctx context.Context, id string, patch chat.ProjectContext) (*chat.Conversation, error) {
	var out chat.Conversation
	if err := c.do(ctx, http.MethodPut, "/conversations/"+id+"/context", patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddAssistantMessage stores a locally generated response
func (c *Client) AddAssistantMessage(ctx context.Context, id, content string) (*chat.Message, error) {
	var out chat.Message
	req := chatSvc.CreateMessageRequest{Content: content}
	if err := c.do(ctx, http.MethodPost, "/conversations/"+id+"/assistant-messages", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListFiles returns a conversation's project files
func (c *Client) ListFiles(ctx context.Context, id string) ([]chat.ProjectFile, error) {
	var out []chat.ProjectFile
	if err := c.do(ctx, http.MethodGet, "/conversations/"+id+"/files", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveFiles bulk-upserts files
func (c *Client) SaveFiles(ctx context.Context, id string, list []files.File) ([]chat.ProjectFile, error) {
	req := chatSvc.BulkSaveFilesRequest{Files: make([]chatSvc.SaveFileRequest, len(list))}
	for i, f := range list {
		req.Files[i] = chatSvc.SaveFileRequest{Path: f.Path, Content: f.Content, Language: f.Language}
	}

	var out []chat.ProjectFile
	if err := c.do(ctx, http.MethodPost, "/conversations/"+id+"/files/bulk", req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Preview returns the assembled preview document
func (c *Client) Preview(ctx context.Context, id string) (string, error) {
	resp, err := c.send(ctx, http.MethodGet, "/conversations/"+id+"/preview", nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read preview: %w", err)
	}
	return string(body), nil
}

// Templates lists the server's template catalog
func (c *Client) Templates(ctx context.Context) ([]codegen.TemplateInfo, error) {
	var out []codegen.TemplateInfo
	if err := c.do(ctx, http.MethodGet, "/templates", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// do sends a JSON request and decodes a JSON response into out (if non-nil)
func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	resp, err := c.send(ctx, method, path, in)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// send performs a request and turns non-2xx responses into *APIError
func (c *Client) send(ctx context.Context, method, path string, in interface{}) (*http.Response, error) {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, decodeAPIError(resp)
	}
	return resp, nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Title: http.StatusText(resp.StatusCode)}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if len(data) > 0 {
		_ = json.Unmarshal(data, apiErr)
		apiErr.Status = resp.StatusCode
	}
	return apiErr
}
