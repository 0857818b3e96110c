package repository

import (
	"fmt"
	"strings"

	"github.com/minato369/bookstack/data"
)

// compileBookQuery turns a BookCriteria into a parameterized statement and
// its argument list. Absent criteria fields contribute no clause, so zero
// criteria compiles to an unconstrained scan. The paging window is always
// appended last.
//
// In search mode the title and author clauses become case-sensitive prefix
// matches: the value gets a trailing wildcard and the column is compared
// under the "C" collation so that matching stays case-sensitive even if the
// column's own collation is not. Genre is always an exact match. Sorting is
// accepted on the criteria but deliberately not compiled into the statement;
// if that changes, the column name must come from Filters.SortColumn, never
// from client input.
func compileBookQuery(c data.BookCriteria) (string, []interface{}) {
	var query strings.Builder
	query.WriteString(`SELECT id, name, author, genre, created_at FROM books`)

	conditions := []string{}
	args := []interface{}{}

	if c.Title != "" {
		if c.Search {
			args = append(args, c.Title+"%")
			conditions = append(conditions, fmt.Sprintf(`name COLLATE "C" LIKE $%d`, len(args)))
		} else {
			args = append(args, c.Title)
			conditions = append(conditions, fmt.Sprintf(`name = $%d`, len(args)))
		}
	}
	if c.Author != "" {
		if c.Search {
			args = append(args, c.Author+"%")
			conditions = append(conditions, fmt.Sprintf(`author COLLATE "C" LIKE $%d`, len(args)))
		} else {
			args = append(args, c.Author)
			conditions = append(conditions, fmt.Sprintf(`author = $%d`, len(args)))
		}
	}
	if c.Genre != "" {
		args = append(args, c.Genre)
		conditions = append(conditions, fmt.Sprintf(`genre = $%d`, len(args)))
	}

	if len(conditions) > 0 {
		query.WriteString(" WHERE ")
		query.WriteString(strings.Join(conditions, " AND "))
	}

	args = append(args, c.Limit(), c.Offset())
	fmt.Fprintf(&query, " LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	return query.String(), args
}
