package contextkeys

// Custom type avoids collisions with other context keys.
type contextKey string

// DBContextKey stores the per-request *gorm.DB (pool or transaction).
const DBContextKey = contextKey("db")
