package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/urbanaccess/report-api/internal/models"
	"github.com/urbanaccess/report-api/internal/service"
)

type ReportRepository struct {
	db *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) service.ReportRepository {
	return &ReportRepository{
		db: db,
	}
}

// Create inserts the report row and its initial PENDING history entry in a
// single transaction. Either both rows are committed or neither.
func (r *ReportRepository) Create(ctx context.Context, report *models.Report, initialComment string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO reports (title, description, status, image_url, author_id, location_id, category_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at;
	`
	err = tx.QueryRow(ctx, query,
		report.Title,
		report.Description,
		report.Status,
		report.ImageURL,
		report.AuthorID,
		report.LocationID,
		report.CategoryID,
	).Scan(&report.ID, &report.CreatedAt, &report.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}

	historyQuery := `
		INSERT INTO status_history (report_id, user_id, status, comment)
		VALUES ($1, $2, $3, $4);
	`
	if _, err := tx.Exec(ctx, historyQuery, report.ID, report.AuthorID, report.Status, initialComment); err != nil {
		return fmt.Errorf("failed to create initial status history: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit report creation: %w", err)
	}
	return nil
}

// GetByID returns the bare report row without related entities.
func (r *ReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	report := &models.Report{}
	query := `
		SELECT id, title, description, status, image_url, author_id, location_id, category_id, created_at, updated_at
		FROM reports
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&report.ID,
		&report.Title,
		&report.Description,
		&report.Status,
		&report.ImageURL,
		&report.AuthorID,
		&report.LocationID,
		&report.CategoryID,
		&report.CreatedAt,
		&report.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("report with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get report by id: %w", err)
	}
	return report, nil
}

// GetAggregate composes the full read view: report, author, location,
// category, history newest-first and comments newest-first.
func (r *ReportRepository) GetAggregate(ctx context.Context, id uuid.UUID) (*models.ReportAggregate, error) {
	aggregate := &models.ReportAggregate{}
	query := `
		SELECT
			r.id, r.title, r.description, r.status, r.image_url,
			r.author_id, r.location_id, r.category_id, r.created_at, r.updated_at,
			a.id, a.email, a.name, a.role, a.created_at, a.updated_at,
			l.id, l.name, l.address, l.latitude, l.longitude, l.type, l.description, l.admin_id, l.created_at, l.updated_at,
			c.id, c.name, c.type, c.description, c.created_at, c.updated_at
		FROM reports r
		JOIN users a ON a.id = r.author_id
		JOIN locations l ON l.id = r.location_id
		JOIN categories c ON c.id = r.category_id
		WHERE r.id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&aggregate.ID, &aggregate.Title, &aggregate.Report.Description, &aggregate.Status, &aggregate.ImageURL,
		&aggregate.AuthorID, &aggregate.LocationID, &aggregate.CategoryID, &aggregate.CreatedAt, &aggregate.UpdatedAt,
		&aggregate.Author.ID, &aggregate.Author.Email, &aggregate.Author.Name, &aggregate.Author.Role, &aggregate.Author.CreatedAt, &aggregate.Author.UpdatedAt,
		&aggregate.Location.ID, &aggregate.Location.Name, &aggregate.Location.Address, &aggregate.Location.Latitude, &aggregate.Location.Longitude, &aggregate.Location.Type, &aggregate.Location.Description, &aggregate.Location.AdminID, &aggregate.Location.CreatedAt, &aggregate.Location.UpdatedAt,
		&aggregate.Category.ID, &aggregate.Category.Name, &aggregate.Category.Type, &aggregate.Category.Description, &aggregate.Category.CreatedAt, &aggregate.Category.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("report with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get report aggregate: %w", err)
	}

	history, err := r.listHistory(ctx, id)
	if err != nil {
		return nil, err
	}
	aggregate.History = history

	comments, err := r.listComments(ctx, id)
	if err != nil {
		return nil, err
	}
	aggregate.Comments = comments

	return aggregate, nil
}

func (r *ReportRepository) listHistory(ctx context.Context, reportID uuid.UUID) ([]models.StatusHistoryEntry, error) {
	query := `
		SELECT
			h.id, h.report_id, h.user_id, h.status, h.comment, h.created_at,
			u.id, u.email, u.name, u.role, u.created_at, u.updated_at
		FROM status_history h
		JOIN users u ON u.id = h.user_id
		WHERE h.report_id = $1
		ORDER BY h.created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to list status history: %w", err)
	}
	defer rows.Close()

	history := make([]models.StatusHistoryEntry, 0)
	for rows.Next() {
		entry := models.StatusHistoryEntry{User: &models.User{}}
		err := rows.Scan(
			&entry.ID, &entry.ReportID, &entry.UserID, &entry.Status, &entry.Comment, &entry.CreatedAt,
			&entry.User.ID, &entry.User.Email, &entry.User.Name, &entry.User.Role, &entry.User.CreatedAt, &entry.User.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan status history row: %w", err)
		}
		history = append(history, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error history iteration: %w", err)
	}
	return history, nil
}

func (r *ReportRepository) listComments(ctx context.Context, reportID uuid.UUID) ([]models.Comment, error) {
	query := `
		SELECT
			c.id, c.report_id, c.author_id, c.content, c.created_at,
			u.id, u.email, u.name, u.role, u.created_at, u.updated_at
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.report_id = $1
		ORDER BY c.created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		comment := models.Comment{Author: &models.User{}}
		err := rows.Scan(
			&comment.ID, &comment.ReportID, &comment.AuthorID, &comment.Content, &comment.CreatedAt,
			&comment.Author.ID, &comment.Author.Email, &comment.Author.Name, &comment.Author.Role, &comment.Author.CreatedAt, &comment.Author.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error comments iteration: %w", err)
	}
	return comments, nil
}

// List returns a page of report summaries newest-first plus the total count
// matching the filter.
func (r *ReportRepository) List(ctx context.Context, filter models.ReportFilter, page, limit int) ([]*models.ReportSummary, int, error) {
	where := make([]string, 0)
	args := make([]any, 0)

	addCondition := func(column string, value any) {
		args = append(args, value)
		where = append(where, fmt.Sprintf("r.%s = $%d", column, len(args)))
	}

	if filter.Status != nil {
		addCondition("status", *filter.Status)
	}
	if filter.LocationID != nil {
		addCondition("location_id", *filter.LocationID)
	}
	if filter.CategoryID != nil {
		addCondition("category_id", *filter.CategoryID)
	}
	if filter.AuthorID != nil {
		addCondition("author_id", *filter.AuthorID)
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = "WHERE " + strings.Join(where, " AND ")
	}

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM reports r %s;", whereClause)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count reports: %w", err)
	}

	offset := (page - 1) * limit
	args = append(args, limit, offset)
	query := fmt.Sprintf(`
		SELECT
			r.id, r.title, r.description, r.status, r.image_url,
			r.author_id, r.location_id, r.category_id, r.created_at, r.updated_at,
			a.id, a.email, a.name, a.role, a.created_at, a.updated_at,
			l.id, l.name, l.address, l.latitude, l.longitude, l.type, l.description, l.admin_id, l.created_at, l.updated_at,
			c.id, c.name, c.type, c.description, c.created_at, c.updated_at
		FROM reports r
		JOIN users a ON a.id = r.author_id
		JOIN locations l ON l.id = r.location_id
		JOIN categories c ON c.id = r.category_id
		%s
		ORDER BY r.created_at DESC
		LIMIT $%d OFFSET $%d;
	`, whereClause, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	summaries := make([]*models.ReportSummary, 0)
	for rows.Next() {
		summary := &models.ReportSummary{}
		err := rows.Scan(
			&summary.ID, &summary.Title, &summary.Report.Description, &summary.Status, &summary.ImageURL,
			&summary.AuthorID, &summary.LocationID, &summary.CategoryID, &summary.CreatedAt, &summary.UpdatedAt,
			&summary.Author.ID, &summary.Author.Email, &summary.Author.Name, &summary.Author.Role, &summary.Author.CreatedAt, &summary.Author.UpdatedAt,
			&summary.Location.ID, &summary.Location.Name, &summary.Location.Address, &summary.Location.Latitude, &summary.Location.Longitude, &summary.Location.Type, &summary.Location.Description, &summary.Location.AdminID, &summary.Location.CreatedAt, &summary.Location.UpdatedAt,
			&summary.Category.ID, &summary.Category.Name, &summary.Category.Type, &summary.Category.Description, &summary.Category.CreatedAt, &summary.Category.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan report row: %w", err)
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error list iteration: %w", err)
	}
	return summaries, total, nil
}

// Update rewrites title, description and image of a report. Status is not
// touched here; it only changes through UpdateStatus.
func (r *ReportRepository) Update(ctx context.Context, report *models.Report) error {
	query := `
		UPDATE reports SET
			title = $1,
			description = $2,
			image_url = $3,
			updated_at = NOW()
		WHERE id = $4;
	`
	cmdTag, err := r.db.Exec(ctx, query, report.Title, report.Description, report.ImageURL, report.ID)
	if err != nil {
		return fmt.Errorf("failed to update report: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("report with id %s: %w", report.ID, models.ErrNotFound)
	}
	return nil
}

// UpdateStatus performs the validated lifecycle transition. The current
// status is read under a row lock, the transition validated against it, and
// the status write plus the history append committed as one unit. Nothing
// is written when the transition is rejected. Returns the previous status.
func (r *ReportRepository) UpdateStatus(ctx context.Context, id uuid.UUID, newStatus models.ReportStatus, updatedBy uuid.UUID, comment *string) (models.ReportStatus, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var current models.ReportStatus
	err = tx.QueryRow(ctx, `SELECT status FROM reports WHERE id = $1 FOR UPDATE;`, id).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("report with id %s: %w", id, models.ErrNotFound)
		}
		return "", fmt.Errorf("failed to lock report row: %w", err)
	}

	if err := models.ValidateTransition(current, newStatus); err != nil {
		return "", err
	}

	if _, err := tx.Exec(ctx, `UPDATE reports SET status = $1, updated_at = NOW() WHERE id = $2;`, newStatus, id); err != nil {
		return "", fmt.Errorf("failed to update report status: %w", err)
	}

	historyQuery := `
		INSERT INTO status_history (report_id, user_id, status, comment)
		VALUES ($1, $2, $3, $4);
	`
	if _, err := tx.Exec(ctx, historyQuery, id, updatedBy, newStatus, comment); err != nil {
		return "", fmt.Errorf("failed to append status history: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("failed to commit status update: %w", err)
	}
	return current, nil
}

// Delete removes a report. Status history and comments are removed by the
// cascading foreign keys.
func (r *ReportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM reports WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("report with id %s: %w", id, models.ErrNotFound)
	}
	return nil
}

// AddComment inserts a comment row.
func (r *ReportRepository) AddComment(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (report_id, author_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query, comment.ReportID, comment.AuthorID, comment.Content).
		Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to add comment: %w", err)
	}
	return nil
}

// Statistics aggregates report counts per status and per category. The
// resolution rate is computed by the service.
func (r *ReportRepository) Statistics(ctx context.Context) (*models.Statistics, error) {
	stats := &models.Statistics{
		ByStatus: make(map[models.ReportStatus]int, len(models.AllStatuses)),
	}
	for _, status := range models.AllStatuses {
		stats.ByStatus[status] = 0
	}

	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM reports GROUP BY status;`)
	if err != nil {
		return nil, fmt.Errorf("failed to count reports by status: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status models.ReportStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count row: %w", err)
		}
		stats.ByStatus[status] = count
		stats.Total += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error status count iteration: %w", err)
	}

	categoryQuery := `
		SELECT c.id, c.name, COUNT(r.id)
		FROM categories c
		LEFT JOIN reports r ON r.category_id = c.id
		GROUP BY c.id, c.name
		ORDER BY c.name ASC;
	`
	categoryRows, err := r.db.Query(ctx, categoryQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to count reports by category: %w", err)
	}
	defer categoryRows.Close()

	stats.ByCategory = make([]models.CategoryCount, 0)
	for categoryRows.Next() {
		var count models.CategoryCount
		if err := categoryRows.Scan(&count.ID, &count.Name, &count.Count); err != nil {
			return nil, fmt.Errorf("failed to scan category count row: %w", err)
		}
		stats.ByCategory = append(stats.ByCategory, count)
	}
	if err := categoryRows.Err(); err != nil {
		return nil, fmt.Errorf("error category count iteration: %w", err)
	}

	return stats, nil
}
