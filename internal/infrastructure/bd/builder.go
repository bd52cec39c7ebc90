package bd

import (
	sq "github.com/Masterminds/squirrel"

	"gym-system/pkg/types"
)

// ApplyListParams adds the filter's allow-listed equality conditions plus
// limit/offset to a select builder. Keys missing from allowedColumns are
// ignored, so query strings can never reach arbitrary columns. Limit 0
// means no LIMIT clause.
func ApplyListParams(builder sq.SelectBuilder, filter types.Filter, allowedColumns map[string]string) sq.SelectBuilder {
	for key, value := range filter.Filter {
		column, ok := allowedColumns[key]
		if !ok {
			continue
		}
		builder = builder.Where(sq.Eq{column: value})
	}

	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	return builder
}
