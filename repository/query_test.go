package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/minato369/bookstack/data"
)

func TestCompileBookQueryNoCriteria(t *testing.T) {
	query, args := compileBookQuery(data.BookCriteria{})

	assert.Equal(t, `SELECT id, name, author, genre, created_at FROM books LIMIT $1 OFFSET $2`, query)
	assert.Equal(t, []interface{}{10, 0}, args)
}

func TestCompileBookQueryExactAuthor(t *testing.T) {
	criteria := data.BookCriteria{Author: "Tolkien"}
	query, args := compileBookQuery(criteria)

	assert.Equal(t, `SELECT id, name, author, genre, created_at FROM books WHERE author = $1 LIMIT $2 OFFSET $3`, query)
	assert.Equal(t, []interface{}{"Tolkien", 10, 0}, args)
}

func TestCompileBookQuerySearchTitlePrefix(t *testing.T) {
	criteria := data.BookCriteria{Title: "Harry", Search: true}
	query, args := compileBookQuery(criteria)

	assert.Equal(t, `SELECT id, name, author, genre, created_at FROM books WHERE name COLLATE "C" LIKE $1 LIMIT $2 OFFSET $3`, query)
	assert.Equal(t, []interface{}{"Harry%", 10, 0}, args)
}

func TestCompileBookQueryConjunction(t *testing.T) {
	criteria := data.BookCriteria{
		Title:   "The Hobbit",
		Author:  "Tolkien",
		Genre:   "Fantasy",
		Filters: data.Filters{Page: 3},
	}
	query, args := compileBookQuery(criteria)

	assert.Equal(t,
		`SELECT id, name, author, genre, created_at FROM books WHERE name = $1 AND author = $2 AND genre = $3 LIMIT $4 OFFSET $5`,
		query)
	assert.Equal(t, []interface{}{"The Hobbit", "Tolkien", "Fantasy", 10, 20}, args)
}

func TestCompileBookQueryGenreIgnoresSearchMode(t *testing.T) {
	criteria := data.BookCriteria{Genre: "Fantasy", Search: true}
	query, args := compileBookQuery(criteria)

	assert.Equal(t, `SELECT id, name, author, genre, created_at FROM books WHERE genre = $1 LIMIT $2 OFFSET $3`, query)
	assert.Equal(t, []interface{}{"Fantasy", 10, 0}, args)
}

func TestCompileBookQuerySortNeverInterpolated(t *testing.T) {
	criteria := data.BookCriteria{
		Author:  "Tolkien",
		Filters: data.Filters{Sort: "created_at; DROP TABLE books", Order: "desc"},
	}
	query, _ := compileBookQuery(criteria)

	assert.NotContains(t, query, "ORDER BY")
	assert.NotContains(t, query, "DROP TABLE")
}

func TestCompileBookQueryDeterministic(t *testing.T) {
	criteria := data.BookCriteria{Title: "Dune", Author: "Herbert", Search: true, Filters: data.Filters{Page: 2}}

	query1, args1 := compileBookQuery(criteria)
	query2, args2 := compileBookQuery(criteria)

	assert.Equal(t, query1, query2)
	assert.Equal(t, args1, args2)
}
