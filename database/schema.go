package database

import "context"

// All analytics tables hang off stores. ON DELETE CASCADE keeps dependent
// records from outliving their store.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS stores (
		id SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		address VARCHAR(255),
		city VARCHAR(100),
		state VARCHAR(50),
		zip_code VARCHAR(20),
		phone VARCHAR(20),
		manager VARCHAR(100),
		opening_date TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS theft_incidents (
		id SERIAL PRIMARY KEY,
		store_id INTEGER NOT NULL REFERENCES stores(id) ON DELETE CASCADE,
		timestamp TIMESTAMPTZ NOT NULL,
		day_of_week VARCHAR(10) NOT NULL,
		hour INTEGER NOT NULL,
		severity VARCHAR(10) NOT NULL,
		value DOUBLE PRECISION NOT NULL,
		resolved BOOLEAN NOT NULL DEFAULT FALSE,
		video_clip_url VARCHAR(255)
	)`,
	`CREATE TABLE IF NOT EXISTS rewards_data (
		id SERIAL PRIMARY KEY,
		store_id INTEGER NOT NULL REFERENCES stores(id) ON DELETE CASCADE,
		date DATE NOT NULL,
		total_members INTEGER NOT NULL,
		new_members INTEGER NOT NULL,
		campaign_engagement DOUBLE PRECISION NOT NULL,
		active_campaigns INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS campaign_performance (
		id SERIAL PRIMARY KEY,
		store_id INTEGER NOT NULL REFERENCES stores(id) ON DELETE CASCADE,
		campaign VARCHAR(100) NOT NULL,
		participation_rate DOUBLE PRECISION NOT NULL,
		redemption_rate DOUBLE PRECISION NOT NULL,
		roi DOUBLE PRECISION NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS traffic_data (
		id SERIAL PRIMARY KEY,
		store_id INTEGER NOT NULL REFERENCES stores(id) ON DELETE CASCADE,
		date DATE NOT NULL,
		total_visitors INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS traffic_patterns (
		id SERIAL PRIMARY KEY,
		store_id INTEGER NOT NULL REFERENCES stores(id) ON DELETE CASCADE,
		day_of_week VARCHAR(10) NOT NULL,
		hour INTEGER NOT NULL,
		visitor_count INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS employee_data (
		id SERIAL PRIMARY KEY,
		store_id INTEGER NOT NULL REFERENCES stores(id) ON DELETE CASCADE,
		date DATE NOT NULL,
		shift VARCHAR(50) NOT NULL,
		mobile_usage_incidents INTEGER NOT NULL,
		avg_duration_minutes DOUBLE PRECISION NOT NULL,
		total_usage_minutes INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS mobile_usage_patterns (
		id SERIAL PRIMARY KEY,
		store_id INTEGER NOT NULL REFERENCES stores(id) ON DELETE CASCADE,
		day_of_week VARCHAR(10) NOT NULL,
		hour INTEGER NOT NULL,
		mobile_usage_incidents INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS business_health (
		id SERIAL PRIMARY KEY,
		store_id INTEGER NOT NULL REFERENCES stores(id) ON DELETE CASCADE,
		date DATE NOT NULL,
		overall_health DOUBLE PRECISION NOT NULL,
		theft_score DOUBLE PRECISION NOT NULL,
		rewards_score DOUBLE PRECISION NOT NULL,
		traffic_score DOUBLE PRECISION NOT NULL,
		employee_score DOUBLE PRECISION NOT NULL,
		alerts TEXT[] NOT NULL DEFAULT '{}'
	)`,
	`CREATE INDEX IF NOT EXISTS idx_theft_incidents_store_ts ON theft_incidents (store_id, timestamp)`,
	`CREATE INDEX IF NOT EXISTS idx_rewards_data_store_date ON rewards_data (store_id, date)`,
	`CREATE INDEX IF NOT EXISTS idx_traffic_data_store_date ON traffic_data (store_id, date)`,
	`CREATE INDEX IF NOT EXISTS idx_employee_data_store_date ON employee_data (store_id, date)`,
	`CREATE INDEX IF NOT EXISTS idx_business_health_store_date ON business_health (store_id, date)`,
}

func createSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := DB.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
