package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/chief-of-staff/internal/types"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// SaveFeedback records a user decision for a meeting. A later decision
// for the same meeting replaces the earlier one, so re-classifying a
// calendar never accumulates stale feedback rows.
func (db *DB) SaveFeedback(ctx context.Context, meetingID string, action types.FeedbackAction, notes string) (*types.FeedbackRecord, error) {
	record := &types.FeedbackRecord{
		ID:        uuid.New(),
		MeetingID: meetingID,
		Action:    action,
		Notes:     notes,
	}

	err := db.pool.QueryRow(ctx,
		`INSERT INTO feedback (id, meeting_id, action, notes)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (meeting_id) DO UPDATE SET action = $3, notes = $4, created_at = NOW()
		 RETURNING id, created_at`,
		record.ID, meetingID, string(action), notes,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save feedback: %w", err)
	}

	return record, nil
}

// GetFeedback returns the feedback recorded for a meeting.
func (db *DB) GetFeedback(ctx context.Context, meetingID string) (*types.FeedbackRecord, error) {
	var record types.FeedbackRecord
	var action string
	err := db.pool.QueryRow(ctx,
		`SELECT id, meeting_id, action, notes, created_at
		 FROM feedback WHERE meeting_id = $1`,
		meetingID,
	).Scan(&record.ID, &record.MeetingID, &action, &record.Notes, &record.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get feedback: %w", err)
	}
	record.Action = types.FeedbackAction(action)
	return &record, nil
}

// ListFeedback returns all recorded feedback, newest first.
func (db *DB) ListFeedback(ctx context.Context) ([]types.FeedbackRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, meeting_id, action, notes, created_at
		 FROM feedback ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	defer rows.Close()

	records := []types.FeedbackRecord{}
	for rows.Next() {
		var record types.FeedbackRecord
		var action string
		if err := rows.Scan(&record.ID, &record.MeetingID, &action, &record.Notes, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan feedback row: %w", err)
		}
		record.Action = types.FeedbackAction(action)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read feedback rows: %w", err)
	}

	return records, nil
}
