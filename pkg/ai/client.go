// Package ai wraps the chat-completions API used for resume structuring
// and tailoring. Responses are required to be bare JSON; code fences are
// tolerated and stripped.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"resume-tailor/internal/model"
)

var (
	ErrEmptyCompletion = errors.New("empty completion")
	ErrBadStatus       = errors.New("llm request failed")
)

type Config struct {
	BaseURL    string
	APIKey     string
	Model      string
	Timeout    time.Duration
	RetryCount int
}

type Client struct {
	http  *resty.Client
	model string
}

func NewClient(cfg Config) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetAuthToken(cfg.APIKey).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(2*time.Second).
		SetHeader("Content-Type", "application/json")
	return &Client{http: c, model: cfg.Model}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chat performs one completion round trip and returns the assistant text.
func (c *Client) chat(ctx context.Context, system, user string, temperature float64) (string, error) {
	req := chatRequest{
		Model:       c.model,
		Temperature: temperature,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("llm request: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("%w: status %d: %s", ErrBadStatus, resp.StatusCode(), resp.String())
	}

	content := gjson.GetBytes(resp.Body(), "choices.0.message.content").String()
	content = stripCodeFence(content)
	if strings.TrimSpace(content) == "" {
		return "", ErrEmptyCompletion
	}
	return content, nil
}

// stripCodeFence removes a surrounding markdown code fence, with or without
// a language tag, if the whole payload is fenced.
func stripCodeFence(s string) string {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	t = strings.TrimPrefix(t, "```")
	if nl := strings.IndexByte(t, '\n'); nl != -1 {
		first := strings.TrimSpace(t[:nl])
		if first == "" || isFenceTag(first) {
			t = t[nl+1:]
		}
	}
	t = strings.TrimSuffix(strings.TrimSpace(t), "```")
	return strings.TrimSpace(t)
}

func isFenceTag(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return s != ""
}

// StructureResume turns raw extracted resume text into the structured
// schema. Output is schema-validated before being accepted.
func (c *Client) StructureResume(ctx context.Context, rawText string) (*model.ResumeStructured, error) {
	out, err := c.chat(ctx, structureSystemPrompt, rawText, 0.2)
	if err != nil {
		return nil, err
	}
	return decodeResume(out)
}

// TailorResume rewrites a structured resume for a specific job description.
// The schema stays fixed; only field contents change.
func (c *Client) TailorResume(ctx context.Context, prof *model.ResumeStructured, jobDescription string) (*model.ResumeStructured, error) {
	profJSON, err := json.Marshal(prof)
	if err != nil {
		return nil, fmt.Errorf("encode profile: %w", err)
	}
	user := fmt.Sprintf("RESUME (JSON):\n%s\n\nJOB DESCRIPTION:\n%s", profJSON, jobDescription)
	out, err := c.chat(ctx, tailorSystemPrompt, user, 0.4)
	if err != nil {
		return nil, err
	}
	return decodeResume(out)
}

// TailorCoverLetter writes a cover letter from a structured resume and a
// job description. Returns plain text, not JSON.
func (c *Client) TailorCoverLetter(ctx context.Context, prof *model.ResumeStructured, jobDescription, extraInstructions string) (string, error) {
	profJSON, err := json.Marshal(prof)
	if err != nil {
		return "", fmt.Errorf("encode profile: %w", err)
	}
	user := fmt.Sprintf("RESUME (JSON):\n%s\n\nJOB DESCRIPTION:\n%s", profJSON, jobDescription)
	if strings.TrimSpace(extraInstructions) != "" {
		user += "\n\nEXTRA INSTRUCTIONS:\n" + extraInstructions
	}
	return c.chat(ctx, coverLetterSystemPrompt, user, 0.6)
}

// StructureJob extracts the salient facts of a job posting.
func (c *Client) StructureJob(ctx context.Context, jobDescription string) (*model.JobStructured, error) {
	out, err := c.chat(ctx, jobSystemPrompt, jobDescription, 0.2)
	if err != nil {
		return nil, err
	}
	var job model.JobStructured
	if err := json.Unmarshal([]byte(out), &job); err != nil {
		return nil, fmt.Errorf("decode job: %w", err)
	}
	return &job, nil
}

func decodeResume(raw string) (*model.ResumeStructured, error) {
	data := []byte(raw)
	if err := model.ValidateResumeJSON(data); err != nil {
		return nil, fmt.Errorf("llm output rejected: %w", err)
	}
	var prof model.ResumeStructured
	if err := json.Unmarshal(data, &prof); err != nil {
		return nil, fmt.Errorf("decode resume: %w", err)
	}
	return &prof, nil
}
