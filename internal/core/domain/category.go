package domain

// Category is a shared classification for transactions and budgets.
// Its Type constrains which transactions may reference it.
type Category struct {
	CategoryID  string        `json:"categoryID"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Type        OperationType `json:"type"`
	ColorCode   string        `json:"colorCode"`
}

// CategoryFilter holds the optional predicates of a category search.
// NamePart matches case-insensitively anywhere in the name.
type CategoryFilter struct {
	Type      *OperationType
	ColorCode *string
	NamePart  *string
}
