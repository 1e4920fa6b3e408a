package models

import "database/sql"

// Category is a row of the categories table.
type Category struct {
	CategoryID  string         `db:"category_id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	Type        string         `db:"type"`
	ColorCode   sql.NullString `db:"color_code"`
}
