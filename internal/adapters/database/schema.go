package database

// Schema creates the catalog tables. Statements are idempotent.
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS providers (
		id            INTEGER PRIMARY KEY,
		name          TEXT NOT NULL,
		business_type TEXT NOT NULL,
		categories    TEXT[] NOT NULL DEFAULT '{}',
		rating        DOUBLE PRECISION NOT NULL DEFAULT 0,
		review_count  INTEGER NOT NULL DEFAULT 0,
		location      TEXT NOT NULL DEFAULT '',
		price_range   TEXT NOT NULL DEFAULT '',
		experience    TEXT NOT NULL DEFAULT '',
		availability  TEXT NOT NULL DEFAULT '',
		description   TEXT NOT NULL DEFAULT '',
		services      TEXT[] NOT NULL DEFAULT '{}',
		latitude      DOUBLE PRECISION NOT NULL DEFAULT 0,
		longitude     DOUBLE PRECISION NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id          INTEGER PRIMARY KEY,
		title       TEXT NOT NULL,
		category    TEXT NOT NULL,
		budget      TEXT NOT NULL DEFAULT '',
		location    TEXT NOT NULL DEFAULT '',
		posted_by   TEXT NOT NULL DEFAULT '',
		posted_date TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL DEFAULT 'open',
		applicants  INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS search_analytics (
		id           UUID PRIMARY KEY,
		search_term  TEXT NOT NULL,
		category     TEXT NOT NULL DEFAULT '',
		min_rating   DOUBLE PRECISION NOT NULL DEFAULT 0,
		sort_key     TEXT NOT NULL DEFAULT '',
		result_count INTEGER NOT NULL,
		latency_ms   INTEGER NOT NULL DEFAULT 0,
		session_id   TEXT NOT NULL DEFAULT '',
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_search_analytics_zero
		ON search_analytics (created_at DESC) WHERE result_count = 0`,
}
