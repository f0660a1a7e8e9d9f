package constants

// Table names.
const (
	TableUsers               = "users"
	TableHomes               = "homes"
	TableReviews             = "reviews"
	TableFavoriteCollections = "favorite_collections"
	TableHomeFavorites       = "home_favorites"
	TableSessions            = "sessions"
)

// Column names shared between repositories and structured log fields.
const (
	ColumnUserID       = "user_id"
	ColumnHomeID       = "home_id"
	ColumnReviewID     = "review_id"
	ColumnCollectionID = "collection_id"
	ColumnSessionID    = "session_id"
	ColumnUsername     = "username"
	ColumnEmail        = "email"
	ColumnPasswordHash = "password_hash"
)

// PostgreSQL error codes handled by the error translation layer.
const (
	PGErrorUniqueViolation     = "23505"
	PGErrorForeignKeyViolation = "23503"
	PGErrorNotNullViolation    = "23502"
)
