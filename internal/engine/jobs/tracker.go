package jobs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/anatolykoptev/go_hunter/internal/engine"
)

// AppStatus is the lifecycle stage of a tracked application.
type AppStatus string

const (
	StatusSaved     AppStatus = "saved"
	StatusApplied   AppStatus = "applied"
	StatusInterview AppStatus = "interview"
	StatusOffer     AppStatus = "offer"
	StatusRejected  AppStatus = "rejected"
)

// Application is one tracked job application: a posting plus tracking state.
type Application struct {
	ID int64 `json:"id"`
	JobPost
	Status    AppStatus `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// ApplicationListQuery filters and pages the tracker listing.
type ApplicationListQuery struct {
	Status  string `json:"status,omitempty"`
	Page    int    `json:"page,omitempty"`
	PerPage int    `json:"per_page,omitempty"`
}

// ApplicationPage is one page of tracked applications.
type ApplicationPage struct {
	Applications []Application `json:"applications"`
	Total        int           `json:"total"`
	Page         int           `json:"page"`
	TotalPages   int           `json:"total_pages"`
}

// TotalPages returns how many pages of size perPage cover total rows.
// Zero rows still occupy one page so a pager always has somewhere to stand.
func TotalPages(total, perPage int) int {
	if perPage <= 0 {
		return 1
	}
	pages := int(math.Ceil(float64(total) / float64(perPage)))
	if pages < 1 {
		return 1
	}
	return pages
}

var (
	trackerDB   *sql.DB
	trackerOnce sync.Once
	trackerErr  error
)

// trackerPath resolves the DB file location: explicit config wins,
// otherwise ~/.go_hunter/tracker.db.
func trackerPath() (string, error) {
	if engine.Cfg.TrackerPath != "" {
		return engine.Cfg.TrackerPath, nil
	}
	dir := filepath.Join(os.Getenv("HOME"), ".go_hunter")
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("tracker: mkdir %s: %w", dir, err)
	}
	return filepath.Join(dir, "tracker.db"), nil
}

// openTrackerDB opens (or creates) the SQLite tracker database.
func openTrackerDB() (*sql.DB, error) {
	trackerOnce.Do(func() {
		dbPath, err := trackerPath()
		if err != nil {
			trackerErr = err
			return
		}
		db, err := sql.Open("sqlite", dbPath)
		if err != nil {
			trackerErr = fmt.Errorf("tracker: open db: %w", err)
			return
		}
		db.SetMaxOpenConns(1) // SQLite: single writer
		if err := initTrackerSchema(db); err != nil {
			trackerErr = fmt.Errorf("tracker: init schema: %w", err)
			return
		}
		trackerDB = db
	})
	return trackerDB, trackerErr
}

// initTrackerSchema creates the applications table if it doesn't exist.
// date_posted is unix seconds at midnight UTC; created_at/updated_at are RFC3339.
func initTrackerSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS applications (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		post_key      TEXT NOT NULL UNIQUE,
		company       TEXT NOT NULL,
		title         TEXT NOT NULL,
		url           TEXT,
		location      TEXT,
		location_type TEXT,
		min_yoe       INTEGER,
		max_yoe       INTEGER,
		min_pay_cents INTEGER,
		max_pay_cents INTEGER,
		pay_unit      TEXT,
		currency      TEXT,
		skills        TEXT,
		benefits      TEXT,
		date_posted   INTEGER,
		status        TEXT NOT NULL DEFAULT 'saved',
		notes         TEXT,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`)
	return err
}

// validStatus checks if a status string is valid.
func validStatus(s string) bool {
	switch AppStatus(s) {
	case StatusSaved, StatusApplied, StatusInterview, StatusOffer, StatusRejected:
		return true
	}
	return false
}

const appColumns = `id, company, title, url, location, location_type,
	min_yoe, max_yoe, min_pay_cents, max_pay_cents, pay_unit, currency,
	skills, benefits, date_posted, status, notes, created_at, updated_at`

// AddApplication saves a posting to the tracker. Duplicate company+title
// pairs (canonical key) are rejected so re-capturing a posting cannot fork
// its tracking history.
func AddApplication(_ context.Context, post JobPost, status, notes string) (*Application, error) {
	if post.Title == "" || post.Company == "" {
		return nil, errors.New("application_add: title and company are required")
	}

	status = strings.ToLower(status)
	if status == "" {
		status = string(StatusSaved)
	}
	if !validStatus(status) {
		return nil, fmt.Errorf("application_add: invalid status %q (valid: saved, applied, interview, offer, rejected)", status)
	}

	db, err := openTrackerDB()
	if err != nil {
		return nil, err
	}

	var datePosted any
	if post.DatePosted != nil {
		datePosted = post.DatePosted.Unix()
	}

	now := time.Now().UTC().Format(time.RFC3339)
	res, err := db.Exec(
		`INSERT INTO applications (post_key, company, title, url, location, location_type,
		 min_yoe, max_yoe, min_pay_cents, max_pay_cents, pay_unit, currency,
		 skills, benefits, date_posted, status, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		engine.CanonicalPostKey(post.Company, post.Title),
		post.Company, post.Title, post.URL, post.Location, string(post.LocationType),
		post.MinYOE, post.MaxYOE, post.MinPayCents, post.MaxPayCents,
		post.PayUnit, post.Currency, post.Skills, post.Benefits,
		datePosted, status, notes, now, now,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return nil, fmt.Errorf("application_add: %q at %q is already tracked", post.Title, post.Company)
		}
		return nil, fmt.Errorf("application_add: insert: %w", err)
	}

	id, _ := res.LastInsertId()
	app := &Application{
		ID:        id,
		JobPost:   post,
		Status:    AppStatus(status),
		Notes:     notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	engine.IncrTrackerWrites()
	return app, nil
}

// ListApplications returns one page of tracked applications, newest
// updates first, optionally filtered by status.
func ListApplications(_ context.Context, q ApplicationListQuery) (*ApplicationPage, error) {
	db, err := openTrackerDB()
	if err != nil {
		return nil, err
	}

	perPage := q.PerPage
	if perPage <= 0 || perPage > 100 {
		perPage = 20
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * perPage

	status := strings.ToLower(q.Status)
	if status != "" && !validStatus(status) {
		return nil, fmt.Errorf("application_list: invalid status %q", status)
	}

	var rows *sql.Rows
	if status != "" {
		rows, err = db.Query(
			`SELECT `+appColumns+` FROM applications
			 WHERE status = ? ORDER BY updated_at DESC LIMIT ? OFFSET ?`,
			status, perPage, offset,
		)
	} else {
		rows, err = db.Query(
			`SELECT `+appColumns+` FROM applications
			 ORDER BY updated_at DESC LIMIT ? OFFSET ?`,
			perPage, offset,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("application_list: query: %w", err)
	}
	defer rows.Close()

	var apps []Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			continue
		}
		apps = append(apps, app)
	}

	var total int
	if status != "" {
		db.QueryRow(`SELECT COUNT(*) FROM applications WHERE status = ?`, status).Scan(&total) //nolint:errcheck
	} else {
		db.QueryRow(`SELECT COUNT(*) FROM applications`).Scan(&total) //nolint:errcheck
	}

	if apps == nil {
		apps = []Application{}
	}
	engine.IncrTrackerReads()
	return &ApplicationPage{
		Applications: apps,
		Total:        total,
		Page:         page,
		TotalPages:   TotalPages(total, perPage),
	}, nil
}

func scanApplication(rows *sql.Rows) (Application, error) {
	var app Application
	var url, location, locType, payUnit, currency, skills, benefits, notes sql.NullString
	var minYOE, maxYOE, minPay, maxPay, datePosted sql.NullInt64
	err := rows.Scan(&app.ID, &app.Company, &app.Title, &url, &location, &locType,
		&minYOE, &maxYOE, &minPay, &maxPay, &payUnit, &currency,
		&skills, &benefits, &datePosted, &app.Status, &notes,
		&app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		return Application{}, err
	}
	app.URL = url.String
	app.Location = location.String
	app.LocationType = LocationType(locType.String)
	app.PayUnit = payUnit.String
	app.Currency = currency.String
	app.Skills = skills.String
	app.Benefits = benefits.String
	app.Notes = notes.String
	if minYOE.Valid {
		app.MinYOE = &minYOE.Int64
	}
	if maxYOE.Valid {
		app.MaxYOE = &maxYOE.Int64
	}
	if minPay.Valid {
		app.MinPayCents = &minPay.Int64
	}
	if maxPay.Valid {
		app.MaxPayCents = &maxPay.Int64
	}
	if datePosted.Valid {
		t := time.Unix(datePosted.Int64, 0).UTC()
		app.DatePosted = &t
	}
	return app, nil
}

// UpdateApplication updates the status and/or notes of a tracked application.
func UpdateApplication(_ context.Context, id int64, status, notes string) error {
	if id <= 0 {
		return errors.New("application_update: id is required")
	}
	if status == "" && notes == "" {
		return errors.New("application_update: at least one of status or notes must be provided")
	}

	db, err := openTrackerDB()
	if err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)

	var res sql.Result
	switch {
	case status != "" && notes != "":
		status = strings.ToLower(status)
		if !validStatus(status) {
			return fmt.Errorf("application_update: invalid status %q", status)
		}
		res, err = db.Exec(`UPDATE applications SET status=?, notes=?, updated_at=? WHERE id=?`,
			status, notes, now, id)
	case status != "":
		status = strings.ToLower(status)
		if !validStatus(status) {
			return fmt.Errorf("application_update: invalid status %q", status)
		}
		res, err = db.Exec(`UPDATE applications SET status=?, updated_at=? WHERE id=?`,
			status, now, id)
	default:
		res, err = db.Exec(`UPDATE applications SET notes=?, updated_at=? WHERE id=?`,
			notes, now, id)
	}
	if err != nil {
		return fmt.Errorf("application_update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("application_update: no application with id %d", id)
	}
	engine.IncrTrackerWrites()
	return nil
}

// DeleteApplication removes a tracked application.
func DeleteApplication(_ context.Context, id int64) error {
	if id <= 0 {
		return errors.New("application_delete: id is required")
	}
	db, err := openTrackerDB()
	if err != nil {
		return err
	}
	res, err := db.Exec(`DELETE FROM applications WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("application_delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("application_delete: no application with id %d", id)
	}
	engine.IncrTrackerWrites()
	return nil
}
