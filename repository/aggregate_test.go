package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInt64(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: true}
}

func validString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: true}
}

func TestAggregateBookRowsFoldsJoinDuplicates(t *testing.T) {
	now := time.Now()
	rows := []bookRow{
		{ID: 2, Title: "The Hobbit", Author: "Tolkien", Genre: "Fantasy", CreatedAt: now, ReviewID: validInt64(10), Review: validString("great"), Username: validString("frodo")},
		{ID: 2, Title: "The Hobbit", Author: "Tolkien", Genre: "Fantasy", CreatedAt: now, ReviewID: validInt64(11), Review: validString("classic"), Username: validString("sam")},
		{ID: 1, Title: "Dune", Author: "Herbert", Genre: "Sci-Fi", CreatedAt: now},
	}

	books := aggregateBookRows(rows)
	require.Len(t, books, 2)

	// First-seen order, not id order.
	assert.Equal(t, int64(2), books[0].ID)
	assert.Equal(t, int64(1), books[1].ID)

	require.Len(t, books[0].Reviews, 2)
	assert.Equal(t, int64(10), books[0].Reviews[0].ID)
	assert.Equal(t, "great", books[0].Reviews[0].Review)
	require.NotNil(t, books[0].Reviews[0].Username)
	assert.Equal(t, "frodo", *books[0].Reviews[0].Username)
}

func TestAggregateBookRowsZeroReviewsYieldsEmptySlice(t *testing.T) {
	rows := []bookRow{{ID: 7, Title: "Emma", Author: "Austen", Genre: "Romance"}}

	books := aggregateBookRows(rows)
	require.Len(t, books, 1)
	assert.NotNil(t, books[0].Reviews)
	assert.Empty(t, books[0].Reviews)
	assert.Nil(t, books[0].Rating)
}

func TestAggregateBookRowsIdempotent(t *testing.T) {
	rows := []bookRow{
		{ID: 1, Title: "Dune", Author: "Herbert", Genre: "Sci-Fi", ReviewID: validInt64(4), Review: validString("fine")},
		{ID: 1, Title: "Dune", Author: "Herbert", Genre: "Sci-Fi", ReviewID: validInt64(5), Review: validString("good")},
	}

	first := aggregateBookRows(rows)
	second := aggregateBookRows(rows)

	assert.Equal(t, first, second)
	require.Len(t, second, 1)
	assert.Len(t, second[0].Reviews, 2)
}

func TestAggregateReviewRowsDedupsAndKeepsOrder(t *testing.T) {
	rows := []reviewRow{
		{ID: 9, Review: "third", Username: validString("merry")},
		{ID: 3, Review: "first"},
		{ID: 9, Review: "third", Username: validString("merry")},
	}

	reviews := aggregateReviewRows(rows)
	require.Len(t, reviews, 2)
	assert.Equal(t, int64(9), reviews[0].ID)
	assert.Equal(t, int64(3), reviews[1].ID)

	// Username stays nil for rows whose owning user is gone.
	assert.Nil(t, reviews[1].Username)
	require.NotNil(t, reviews[0].Username)
	assert.Equal(t, "merry", *reviews[0].Username)
}

func TestAggregateReviewRowsEmptyInput(t *testing.T) {
	reviews := aggregateReviewRows(nil)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)
}
