package postgres

import "github.com/Masterminds/squirrel"

// Builder returns a squirrel statement builder with PostgreSQL placeholders.
func Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
