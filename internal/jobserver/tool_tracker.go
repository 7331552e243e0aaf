package jobserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/anatolykoptev/go_hunter/internal/engine/extract"
	"github.com/anatolykoptev/go_hunter/internal/engine/jobs"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ApplicationAddInput is the input for application_add. Pay amounts are
// manual-entry strings ("85000" or "85000.50", no thousands separators).
type ApplicationAddInput struct {
	Company  string `json:"company"`
	Title    string `json:"title"`
	URL      string `json:"url,omitempty"`
	Location string `json:"location,omitempty"`
	MinPay   string `json:"min_pay,omitempty"`
	MaxPay   string `json:"max_pay,omitempty"`
	PayUnit  string `json:"pay_unit,omitempty"`
	Skills   string `json:"skills,omitempty"`
	Benefits string `json:"benefits,omitempty"`
	Status   string `json:"status,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// ApplicationUpdateInput is the input for application_update.
type ApplicationUpdateInput struct {
	ID     int64  `json:"id"`
	Status string `json:"status,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// ApplicationDeleteInput is the input for application_delete.
type ApplicationDeleteInput struct {
	ID int64 `json:"id"`
}

// ApplicationResult is the output for update/delete operations.
type ApplicationResult struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

func registerApplicationAdd(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "application_add",
		Description: "Save a job application to the local tracker. Status options: saved (default), applied, interview, offer, rejected. Pay amounts are plain numbers without thousands separators; bad amounts are rejected, not guessed. Returns the stored application with its ID.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input ApplicationAddInput) (*mcp.CallToolResult, *jobs.Application, error) {
		if input.Title == "" || input.Company == "" {
			return nil, nil, errors.New("title and company are required")
		}

		post := jobs.JobPost{
			Company:  input.Company,
			Title:    input.Title,
			URL:      input.URL,
			Location: input.Location,
			PayUnit:  input.PayUnit,
			Skills:   extract.NormalizeList(input.Skills),
			Benefits: extract.NormalizeList(input.Benefits),
		}
		if input.MinPay != "" {
			cents, err := extract.ParsePay(input.MinPay)
			if err != nil {
				return nil, nil, fmt.Errorf("min_pay: %w", err)
			}
			post.MinPayCents = &cents
		}
		if input.MaxPay != "" {
			cents, err := extract.ParsePay(input.MaxPay)
			if err != nil {
				return nil, nil, fmt.Errorf("max_pay: %w", err)
			}
			post.MaxPayCents = &cents
		}

		app, err := jobs.AddApplication(ctx, post, input.Status, input.Notes)
		if err != nil {
			return nil, nil, err
		}
		slog.Info("application_add",
			slog.Int64("id", app.ID),
			slog.String("company", app.Company),
			slog.String("status", string(app.Status)))
		return nil, app, nil
	})
}

func registerApplicationList(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "application_list",
		Description: "List tracked job applications, most recently updated first. Optionally filter by status (saved, applied, interview, offer, rejected) and page through results.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input jobs.ApplicationListQuery) (*mcp.CallToolResult, *jobs.ApplicationPage, error) {
		page, err := jobs.ListApplications(ctx, input)
		if err != nil {
			return nil, nil, err
		}
		return nil, page, nil
	})
}

func registerApplicationUpdate(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "application_update",
		Description: "Update status or notes for a tracked application by ID. Status options: saved, applied, interview, offer, rejected. Get IDs from application_list.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input ApplicationUpdateInput) (*mcp.CallToolResult, *ApplicationResult, error) {
		if input.ID <= 0 {
			return nil, nil, errors.New("id is required")
		}
		if err := jobs.UpdateApplication(ctx, input.ID, input.Status, input.Notes); err != nil {
			return nil, nil, err
		}
		return nil, &ApplicationResult{
			ID:      input.ID,
			Message: fmt.Sprintf("Application #%d updated", input.ID),
		}, nil
	})
}

func registerApplicationDelete(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "application_delete",
		Description: "Delete a tracked application by ID. This is permanent; get IDs from application_list.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input ApplicationDeleteInput) (*mcp.CallToolResult, *ApplicationResult, error) {
		if input.ID <= 0 {
			return nil, nil, errors.New("id is required")
		}
		if err := jobs.DeleteApplication(ctx, input.ID); err != nil {
			return nil, nil, err
		}
		return nil, &ApplicationResult{
			ID:      input.ID,
			Message: fmt.Sprintf("Application #%d deleted", input.ID),
		}, nil
	})
}
