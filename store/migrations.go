package store

import "tubefetch/backend/utils"

func (s *Store) migrate() error {
	query := `
    -- Archived download outcomes. Append-only; newest entries are read first.
    CREATE TABLE IF NOT EXISTS history (
        id INTEGER PRIMARY KEY AUTOINCREMENT,

        item_id TEXT NOT NULL,
        video_id TEXT NOT NULL,
        title TEXT NOT NULL,
        uploader TEXT,
        thumbnail_url TEXT,
        webpage_url TEXT,
        format_id TEXT,

        status TEXT NOT NULL,        -- 'Completed' | 'Failed'
        progress REAL NOT NULL,
        file_size INTEGER NOT NULL,
        downloaded_size INTEGER NOT NULL,
        error_message TEXT,
        file_name TEXT,              -- set for Completed only

        started_at DATETIME,
        completed_at DATETIME,
        archived_at DATETIME DEFAULT CURRENT_TIMESTAMP
    );

    -- Small key-value blobs ('app-settings' lives here as JSON).
    CREATE TABLE IF NOT EXISTS kv (
        key TEXT PRIMARY KEY,
        value TEXT NOT NULL,
        updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
    );
    `

	_, err := s.db.Exec(query)
	if err != nil {
		log := utils.GetLogger("store")
		log.Error().Err(err).Msg("database migration failed")
		return err
	}

	return nil
}
