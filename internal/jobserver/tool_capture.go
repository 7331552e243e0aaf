package jobserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anatolykoptev/go_hunter/internal/engine/extract"
	"github.com/anatolykoptev/go_hunter/internal/engine/jobs"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// PostingCaptureInput is the input for posting_capture.
type PostingCaptureInput struct {
	URL   string `json:"url,omitempty"`
	JobID string `json:"job_id,omitempty"`
}

func registerPostingCapture(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "posting_capture",
		Description: "Fetch a job posting page (LinkedIn URL or bare job ID) and extract structured fields: company, title, location, pay range, years of experience, posting date. Fields the page doesn't state come back empty.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input PostingCaptureInput) (*mcp.CallToolResult, *jobs.JobPost, error) {
		jobURL := strings.TrimSpace(input.URL)
		if jobURL == "" && input.JobID != "" {
			jobURL = jobs.JobViewURL(strings.TrimSpace(input.JobID))
		}
		if jobURL == "" {
			return nil, nil, errors.New("url or job_id is required")
		}

		post, err := jobs.CapturePosting(ctx, jobURL)
		if err != nil {
			slog.Warn("posting_capture failed", slog.String("url", jobURL), slog.Any("error", err))
			return nil, nil, err
		}
		slog.Info("posting_capture",
			slog.String("company", post.Company),
			slog.String("title", post.Title))
		return nil, post, nil
	})
}

// PayParseInput is the input for pay_parse.
type PayParseInput struct {
	Text string `json:"text"`
}

// PayParseOutput is the output for pay_parse.
type PayParseOutput struct {
	Cents   int64  `json:"cents"`
	Display string `json:"display"`
}

func registerPayParse(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "pay_parse",
		Description: "Parse a manually entered pay amount like '85000' or '85000.50' into integer cents. Rejects input it cannot parse instead of guessing. No thousands separators.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(_ context.Context, _ *mcp.CallToolRequest, input PayParseInput) (*mcp.CallToolResult, *PayParseOutput, error) {
		if strings.TrimSpace(input.Text) == "" {
			return nil, nil, errors.New("text is required")
		}
		cents, err := extract.ParsePay(input.Text)
		if err != nil {
			return nil, nil, fmt.Errorf("pay_parse: %w", err)
		}
		return nil, &PayParseOutput{
			Cents:   cents,
			Display: extract.FormatPay(&cents),
		}, nil
	})
}
