package jobserver

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/anatolykoptev/go_hunter/internal/engine"
	"github.com/anatolykoptev/go_hunter/internal/engine/jobs"
	"github.com/anatolykoptev/go_hunter/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// JobEnrichInput is the input for job_enrich.
type JobEnrichInput struct {
	Query    string `json:"query"`
	Location string `json:"location,omitempty"`
	Limit    int    `json:"limit,omitempty"`
}

// JobEnrichOutput is the output for job_enrich.
type JobEnrichOutput struct {
	Posts []jobs.JobPost `json:"posts"`
	Total int            `json:"total"`
}

func registerJobEnrich(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_enrich",
		Description: "Search apijobs.dev for postings matching a query and return them as structured posts (pay in cents, experience in years, canonical location and skills), ready for the application tracker. Requires APIJOBS_API_KEY.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input JobEnrichInput) (*mcp.CallToolResult, JobEnrichOutput, error) {
		if input.Query == "" {
			return nil, JobEnrichOutput{}, errors.New("query is required")
		}

		cacheKey := engine.CacheKey("job_enrich", input.Query, input.Location, strconv.Itoa(input.Limit))
		if out, ok := toolutil.CacheLoadJSON[JobEnrichOutput](ctx, cacheKey); ok {
			return nil, out, nil
		}

		posts, err := jobs.SearchAPIJobs(ctx, input.Query, input.Location, input.Limit)
		if err != nil {
			slog.Warn("job_enrich failed", slog.String("query", input.Query), slog.Any("error", err))
			return nil, JobEnrichOutput{}, err
		}
		slog.Info("job_enrich", slog.String("query", input.Query), slog.Int("count", len(posts)))

		out := JobEnrichOutput{Posts: posts, Total: len(posts)}
		toolutil.CacheStoreJSON(ctx, cacheKey, out)
		return nil, out, nil
	})
}
