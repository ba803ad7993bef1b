package postgres

import sq "github.com/Masterminds/squirrel"

//go:generate go run github.com/sqlc-dev/sqlc/cmd/sqlc@v1.30.0 generate -f ../../../sqlc.yaml

// Builder is a squirrel statement builder using PostgreSQL $N placeholders.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
