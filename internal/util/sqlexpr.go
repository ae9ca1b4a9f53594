package util

import "gorm.io/gorm"

// GroupConcat returns the dialect's comma-joining aggregate for col.
// Postgres serves production; the test databases run on sqlite.
func GroupConcat(db *gorm.DB, col string) string {
	if db.Dialector.Name() == "postgres" {
		return "string_agg(" + col + "::text, ',')"
	}
	return "group_concat(" + col + ")"
}
