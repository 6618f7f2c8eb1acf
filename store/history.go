package store

import (
	"context"
	"database/sql"
	"time"

	"tubefetch/backend/downloader"
)

// AppendHistory records the snapshot of an item that reached a terminal state.
func (s *Store) AppendHistory(ctx context.Context, item downloader.DownloadItem) error {
	query := `
	INSERT INTO history (item_id, video_id, title, uploader, thumbnail_url, webpage_url, format_id,
	                     status, progress, file_size, downloaded_size, error_message, file_name,
	                     started_at, completed_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	var completedAt any
	if item.CompletedAt != nil {
		completedAt = *item.CompletedAt
	}
	_, err := s.db.ExecContext(ctx, query,
		item.ID, item.VideoID, item.Title, item.Uploader, item.ThumbnailURL, item.WebpageURL, item.FormatID,
		string(item.Status), item.Progress, item.FileSize, item.Downloaded, item.ErrorMessage, item.FileName,
		item.StartedAt, completedAt,
	)
	return err
}

// ListHistory returns archived snapshots newest first.
func (s *Store) ListHistory(ctx context.Context) ([]downloader.DownloadItem, error) {
	query := `
	SELECT item_id, video_id, title, uploader, thumbnail_url, webpage_url, format_id,
	       status, progress, file_size, downloaded_size, error_message, file_name,
	       started_at, completed_at
	FROM history
	ORDER BY id DESC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []downloader.DownloadItem
	for rows.Next() {
		var item downloader.DownloadItem
		var status string
		var uploader, thumbnail, webpage, formatID, errMsg, fileName sql.NullString
		var completedAt sql.NullTime
		err := rows.Scan(&item.ID, &item.VideoID, &item.Title, &uploader, &thumbnail, &webpage, &formatID,
			&status, &item.Progress, &item.FileSize, &item.Downloaded, &errMsg, &fileName,
			&item.StartedAt, &completedAt)
		if err != nil {
			return nil, err
		}
		item.Status = downloader.DownloadStatus(status)
		item.Uploader = uploader.String
		item.ThumbnailURL = thumbnail.String
		item.WebpageURL = webpage.String
		item.FormatID = formatID.String
		item.ErrorMessage = errMsg.String
		item.FileName = fileName.String
		if completedAt.Valid {
			t := completedAt.Time
			item.CompletedAt = &t
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// ClearHistory drops every archived entry.
func (s *Store) ClearHistory(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM history")
	return err
}

// QueueArchiver adapts the store to the downloader's Archiver seam. Appends
// get a short deadline so a wedged disk cannot hold the queue transition path.
type QueueArchiver struct {
	Store *Store
}

func (a *QueueArchiver) Archive(item downloader.DownloadItem) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return a.Store.AppendHistory(ctx, item)
}
