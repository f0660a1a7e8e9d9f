package migrations

import (
	"context"
	"database/sql"
)

// createUsersTable creates the users table.
func createUsersTable() Migration {
	return Migration{
		Name:        "create_users_table",
		Description: "Creates the users table",
		TableName:   "users",
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			query := `
				CREATE TABLE IF NOT EXISTS users (
					user_id BIGSERIAL PRIMARY KEY,
					username VARCHAR(20) NOT NULL,
					email VARCHAR(40) NOT NULL,
					password_hash VARCHAR(255) NOT NULL,
					salt VARCHAR(255) NOT NULL,
					profile_image TEXT NOT NULL DEFAULT '',
					created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					CONSTRAINT idx_username UNIQUE (username),
					CONSTRAINT idx_email UNIQUE (email)
				)
			`
			_, err := tx.ExecContext(ctx, query)
			return err
		},
	}
}

// createHomesTable creates the homes table. The host reference survives as a
// plain FK without cascade: deleting a user keeps their listings.
func createHomesTable() Migration {
	return Migration{
		Name:        "create_homes_table",
		Description: "Creates the homes table",
		TableName:   "homes",
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			query := `
				CREATE TABLE IF NOT EXISTS homes (
					home_id BIGSERIAL PRIMARY KEY,
					title VARCHAR(50) NOT NULL,
					description VARCHAR(500) NOT NULL,
					home_type VARCHAR(20) NOT NULL,
					max_guests INTEGER NOT NULL,
					total_occupancy INTEGER NOT NULL DEFAULT 0,
					total_bedrooms INTEGER NOT NULL DEFAULT 0,
					total_bathrooms INTEGER NOT NULL DEFAULT 0,
					location TEXT NOT NULL DEFAULT '',
					amenities TEXT NOT NULL DEFAULT '',
					price_per_night NUMERIC(10, 2) NOT NULL,
					image TEXT NOT NULL,
					host_id BIGINT NOT NULL,
					created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					CONSTRAINT fk_host FOREIGN KEY (host_id) REFERENCES users(user_id)
				);
				CREATE INDEX IF NOT EXISTS idx_homes_host_id ON homes(host_id);
			`
			_, err := tx.ExecContext(ctx, query)
			return err
		},
	}
}

// createReviewsTable creates the reviews table.
func createReviewsTable() Migration {
	return Migration{
		Name:        "create_reviews_table",
		Description: "Creates the reviews table",
		TableName:   "reviews",
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			query := `
				CREATE TABLE IF NOT EXISTS reviews (
					review_id BIGSERIAL PRIMARY KEY,
					rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
					review VARCHAR(5000) NOT NULL,
					home_id BIGINT NOT NULL,
					user_id BIGINT NOT NULL,
					created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					CONSTRAINT fk_review_home FOREIGN KEY (home_id) REFERENCES homes(home_id) ON DELETE CASCADE,
					CONSTRAINT fk_review_user FOREIGN KEY (user_id) REFERENCES users(user_id) ON DELETE CASCADE
				);
				CREATE INDEX IF NOT EXISTS idx_reviews_home_id ON reviews(home_id);
				CREATE INDEX IF NOT EXISTS idx_reviews_user_id ON reviews(user_id);
			`
			_, err := tx.ExecContext(ctx, query)
			return err
		},
	}
}

// createFavoriteCollectionsTable creates the favorite_collections table.
func createFavoriteCollectionsTable() Migration {
	return Migration{
		Name:        "create_favorite_collections_table",
		Description: "Creates the favorite_collections table",
		TableName:   "favorite_collections",
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			query := `
				CREATE TABLE IF NOT EXISTS favorite_collections (
					collection_id BIGSERIAL PRIMARY KEY,
					name VARCHAR(50) NOT NULL,
					user_id BIGINT NOT NULL,
					created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					CONSTRAINT fk_collection_user FOREIGN KEY (user_id) REFERENCES users(user_id) ON DELETE CASCADE
				);
				CREATE INDEX IF NOT EXISTS idx_favorite_collections_user_id ON favorite_collections(user_id);
			`
			_, err := tx.ExecContext(ctx, query)
			return err
		},
	}
}

// createHomeFavoritesTable creates the home_favorites join table. Identity
// is the (collection, home) pair, so the composite primary key doubles as
// the duplicate guard.
func createHomeFavoritesTable() Migration {
	return Migration{
		Name:        "create_home_favorites_table",
		Description: "Creates the home_favorites join table",
		TableName:   "home_favorites",
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			query := `
				CREATE TABLE IF NOT EXISTS home_favorites (
					favorite_collection_id BIGINT NOT NULL,
					home_id BIGINT NOT NULL,
					PRIMARY KEY (favorite_collection_id, home_id),
					CONSTRAINT fk_favorite_collection FOREIGN KEY (favorite_collection_id)
						REFERENCES favorite_collections(collection_id) ON DELETE CASCADE,
					CONSTRAINT fk_favorite_home FOREIGN KEY (home_id)
						REFERENCES homes(home_id) ON DELETE CASCADE
				)
			`
			_, err := tx.ExecContext(ctx, query)
			return err
		},
	}
}

// createSessionsTable creates the sessions table.
func createSessionsTable() Migration {
	return Migration{
		Name:        "create_sessions_table",
		Description: "Creates the sessions table",
		TableName:   "sessions",
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			query := `
				CREATE TABLE IF NOT EXISTS sessions (
					session_id VARCHAR(36) PRIMARY KEY,
					user_id BIGINT NOT NULL,
					expires_at TIMESTAMP NOT NULL,
					created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					CONSTRAINT fk_session_user FOREIGN KEY (user_id) REFERENCES users(user_id) ON DELETE CASCADE
				);
				CREATE INDEX IF NOT EXISTS idx_sessions_user_id ON sessions(user_id);
				CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions(expires_at);
			`
			_, err := tx.ExecContext(ctx, query)
			return err
		},
	}
}

// GetMigrations returns all migrations in dependency order.
func GetMigrations() []Migration {
	return []Migration{
		createUsersTable(),
		createHomesTable(),
		createReviewsTable(),
		createFavoriteCollectionsTable(),
		createHomeFavoritesTable(),
		createSessionsTable(),
	}
}
