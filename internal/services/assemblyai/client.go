package assemblyai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"clipseek/internal/logging"
	"clipseek/internal/services"
	"clipseek/internal/transcript"
)

// DefaultBaseURL is the production AssemblyAI API root.
const DefaultBaseURL = "https://api.assemblyai.com/v2"

const defaultPollInterval = 3 * time.Second

// Config carries client construction parameters.
type Config struct {
	APIKey       string
	BaseURL      string
	PollInterval time.Duration
}

// Client talks to the AssemblyAI v2 API.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *slog.Logger
}

// New validates the configuration and builds a client.
func New(cfg Config, logger *slog.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, services.Wrap(services.ErrConfiguration, "assemblyai", "new",
			"api key is required (set assemblyai.api_key or ASSEMBLYAI_API_KEY)", nil)
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 2 * time.Minute},
		logger:     logging.WithComponent(logger, "assemblyai"),
	}, nil
}

type uploadResponse struct {
	UploadURL string `json:"upload_url"`
}

type transcriptJob struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Error  string `json:"error"`
	Text   string `json:"text"`
	Words  []struct {
		Text  string `json:"text"`
		Start int64  `json:"start"`
		End   int64  `json:"end"`
	} `json:"words"`
}

// Transcribe uploads the audio file, submits a transcription job, and polls
// until the provider reports completion. The returned transcript carries
// word-level timing.
func (c *Client) Transcribe(ctx context.Context, audioPath string) (*transcript.Transcript, error) {
	requestID := uuid.NewString()
	logger := c.logger.With(logging.String(logging.FieldCorrelationID, requestID))

	audioURL, err := c.upload(ctx, audioPath, requestID)
	if err != nil {
		return nil, err
	}
	logger.Info("audio uploaded", logging.String("audio_path", audioPath))

	jobID, err := c.submit(ctx, audioURL, requestID)
	if err != nil {
		return nil, err
	}
	logger.Info("transcription submitted", logging.String("job_id", jobID))

	job, err := c.wait(ctx, jobID, requestID)
	if err != nil {
		return nil, err
	}
	logger.Info("transcription completed",
		logging.String("job_id", jobID),
		logging.Int("word_count", len(job.Words)),
	)

	words := make([]transcript.Word, 0, len(job.Words))
	for _, w := range job.Words {
		text := strings.TrimSpace(w.Text)
		if text == "" {
			continue
		}
		words = append(words, transcript.Word{
			Text:  text,
			Start: time.Duration(w.Start) * time.Millisecond,
			End:   time.Duration(w.End) * time.Millisecond,
		})
	}
	if err := transcript.Validate(words); err != nil {
		return nil, services.Wrap(services.ErrExternalTool, "assemblyai", "transcribe",
			"provider returned out-of-order words", err)
	}
	return &transcript.Transcript{Words: words}, nil
}

func (c *Client) upload(ctx context.Context, audioPath, requestID string) (string, error) {
	file, err := os.Open(audioPath)
	if err != nil {
		return "", services.Wrap(services.ErrNotFound, "assemblyai", "upload", "open audio file", err)
	}
	defer file.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/upload", file)
	if err != nil {
		return "", services.Wrap(services.ErrExternalTool, "assemblyai", "upload", "build request", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	var resp uploadResponse
	if err := c.do(req, requestID, &resp); err != nil {
		return "", services.Wrap(services.ErrExternalTool, "assemblyai", "upload", "", err)
	}
	if resp.UploadURL == "" {
		return "", services.Wrap(services.ErrExternalTool, "assemblyai", "upload", "empty upload_url in response", nil)
	}
	return resp.UploadURL, nil
}

func (c *Client) submit(ctx context.Context, audioURL, requestID string) (string, error) {
	body, err := json.Marshal(map[string]string{"audio_url": audioURL})
	if err != nil {
		return "", services.Wrap(services.ErrExternalTool, "assemblyai", "submit", "marshal request", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/transcript", bytes.NewReader(body))
	if err != nil {
		return "", services.Wrap(services.ErrExternalTool, "assemblyai", "submit", "build request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var job transcriptJob
	if err := c.do(req, requestID, &job); err != nil {
		return "", services.Wrap(services.ErrExternalTool, "assemblyai", "submit", "", err)
	}
	if job.ID == "" {
		return "", services.Wrap(services.ErrExternalTool, "assemblyai", "submit", "empty job id in response", nil)
	}
	return job.ID, nil
}

func (c *Client) wait(ctx context.Context, jobID, requestID string) (*transcriptJob, error) {
	ticker := time.NewTicker(c.cfg.PollInterval)
	defer ticker.Stop()
	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/transcript/"+jobID, nil)
		if err != nil {
			return nil, services.Wrap(services.ErrExternalTool, "assemblyai", "poll", "build request", err)
		}
		var job transcriptJob
		if err := c.do(req, requestID, &job); err != nil {
			return nil, services.Wrap(services.ErrExternalTool, "assemblyai", "poll", "", err)
		}
		switch job.Status {
		case "completed":
			return &job, nil
		case "error":
			return nil, services.Wrap(services.ErrExternalTool, "assemblyai", "poll",
				fmt.Sprintf("transcription failed: %s", job.Error), nil)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (c *Client) do(req *http.Request, requestID string, out any) error {
	req.Header.Set("Authorization", c.cfg.APIKey)
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s: status %d: %s", req.Method, req.URL.Path, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
