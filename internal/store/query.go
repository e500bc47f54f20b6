package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByName      = "name"
	orderByPrice     = "price"
	orderByUpdatedAt = "updated_at"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByName:      "name ASC",
	orderByPrice:     "price_per_day ASC",
	orderByUpdatedAt: "updated_at DESC",
}

const defaultOrderBy = "name ASC"

const baseRentalSelect = `SELECT id, name, brand, model, category, seats,
	transmission, fuel, price_per_day, deposit, images, features, description,
	available, multilingual, created_at, updated_at
FROM rental_cars`

const countRentalSelect = "SELECT COUNT(*) FROM rental_cars"

// RentalQuery defines optional filters for rental fleet queries.
type RentalQuery struct {
	AvailableOnly  bool
	Category       *string
	MaxPricePerDay *int
	MinSeats       *int
	Limit          int // default 50
	Offset         int
	OrderBy        string // "name", "price", "updated_at"
}

// ToSQL builds the WHERE clause, ORDER BY, LIMIT and OFFSET for a rental
// query. It returns the data query, the matching count query and the
// positional parameters shared by both.
func (q *RentalQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.AvailableOnly {
		conditions = append(conditions, "available")
	}

	if q.Category != nil {
		conditions = append(conditions, fmt.Sprintf("category = $%d", paramIdx))
		args = append(args, *q.Category)
		paramIdx++
	}

	if q.MaxPricePerDay != nil {
		conditions = append(conditions, fmt.Sprintf("price_per_day <= $%d", paramIdx))
		args = append(args, *q.MaxPricePerDay)
		paramIdx++
	}

	if q.MinSeats != nil {
		conditions = append(conditions, fmt.Sprintf("seats >= $%d", paramIdx))
		args = append(args, *q.MinSeats)
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	orderClause := defaultOrderBy
	if col, ok := validOrderBy[q.OrderBy]; ok {
		orderClause = col
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseRentalSelect, whereClause, orderClause, limit, offset,
	)

	countSQL = countRentalSelect + whereClause

	return dataSQL, countSQL, args
}
