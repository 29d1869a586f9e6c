package postgres

import (
	"fmt"
	"strings"

	"biodata-api/internal/models"
)

// buildBiodataListQuery constructs the SQL query for the admin listing based on filters.
func buildBiodataListQuery(baseQuery string, filter models.BiodataFilter) (string, []any) {
	var (
		conditions []string
		args       []any
	)

	if term := strings.TrimSpace(filter.Search); term != "" {
		args = append(args, "%"+escapeLike(term)+"%")
		placeholder := fmt.Sprintf("$%d", len(args))
		switch filter.By {
		case models.SearchByPosisi:
			conditions = append(conditions, "b.posisi ILIKE "+placeholder)
		case models.SearchByPendidikan:
			conditions = append(conditions,
				"EXISTS (SELECT 1 FROM education e WHERE e.biodata_id = b.id AND e.jenjang_pendidikan ILIKE "+placeholder+")")
		default:
			conditions = append(conditions, "b.nama ILIKE "+placeholder)
		}
	}

	var queryBuilder strings.Builder
	queryBuilder.WriteString(baseQuery)

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(strings.Join(conditions, " AND "))
	}

	queryBuilder.WriteString(" ORDER BY b.created_at DESC, b.id DESC")

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		queryBuilder.WriteString(fmt.Sprintf(" OFFSET $%d", len(args)))
	}

	return queryBuilder.String(), args
}

// escapeLike makes user input match literally inside an ILIKE pattern.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
