package model

import (
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
func strPtr(s string) *string     { return &s }

func validCreateRequest() CreateBookRequest {
	return CreateBookRequest{
		Title: "Dune",
		Author: AuthorInput{
			Name:      "Frank Herbert",
			Country:   "USA",
			BirthDate: "1920-10-08",
		},
		Price:         floatPtr(15),
		Language:      "en",
		NumberOfPages: intPtr(412),
		Publisher:     "Chilton",
	}
}

func TestCreateBookRequestValidate(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		assert.NoError(t, validCreateRequest().Validate())
	})

	t.Run("valid with a single page", func(t *testing.T) {
		req := validCreateRequest()
		req.NumberOfPages = intPtr(1)
		assert.NoError(t, req.Validate())
	})

	t.Run("valid with explicit isbn", func(t *testing.T) {
		req := validCreateRequest()
		req.ISBN = "9780306406157"
		assert.NoError(t, req.Validate())

		req.ISBN = "030640615X"
		assert.NoError(t, req.Validate())
	})

	t.Run("same input always yields same outcome", func(t *testing.T) {
		req := validCreateRequest()
		req.Title = ""
		first := req.Validate()
		second := req.Validate()
		require.Error(t, first)
		assert.Equal(t, first.Error(), second.Error())
	})

	tests := []struct {
		name   string
		mutate func(*CreateBookRequest)
		field  string
	}{
		{"missing title", func(r *CreateBookRequest) { r.Title = "" }, "title"},
		{"missing author", func(r *CreateBookRequest) { r.Author = AuthorInput{} }, "author"},
		{"missing price", func(r *CreateBookRequest) { r.Price = nil }, "price"},
		{"negative price", func(r *CreateBookRequest) { r.Price = floatPtr(-1) }, "price"},
		{"missing language", func(r *CreateBookRequest) { r.Language = "" }, "language"},
		{"missing pages", func(r *CreateBookRequest) { r.NumberOfPages = nil }, "numberOfPages"},
		{"zero pages", func(r *CreateBookRequest) { r.NumberOfPages = intPtr(0) }, "numberOfPages"},
		{"negative pages", func(r *CreateBookRequest) { r.NumberOfPages = intPtr(-3) }, "numberOfPages"},
		{"missing publisher", func(r *CreateBookRequest) { r.Publisher = "" }, "publisher"},
		{"isbn wrong length", func(r *CreateBookRequest) { r.ISBN = "12345" }, "isbn"},
		{"isbn with letters", func(r *CreateBookRequest) { r.ISBN = "978030640615a" }, "isbn"},
		{"author name too short", func(r *CreateBookRequest) { r.Author.Name = "F" }, "author"},
		{"author name with digits", func(r *CreateBookRequest) { r.Author.Name = "Frank 123" }, "author"},
		{"author country too short", func(r *CreateBookRequest) { r.Author.Country = "U" }, "author"},
		{"author birth date malformed", func(r *CreateBookRequest) { r.Author.BirthDate = "08/10/1920" }, "author"},
		{
			"author birth date in the future",
			func(r *CreateBookRequest) {
				r.Author.BirthDate = time.Now().AddDate(1, 0, 0).Format("2006-01-02")
			},
			"author",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)

			err := req.Validate()
			require.Error(t, err)

			verrs, ok := err.(validation.Errors)
			require.True(t, ok, "expected validation.Errors, got %T", err)
			assert.Contains(t, verrs, tt.field)
		})
	}
}

func TestUpdateBookRequestValidate(t *testing.T) {
	t.Run("empty update is valid", func(t *testing.T) {
		assert.NoError(t, UpdateBookRequest{}.Validate())
		assert.True(t, UpdateBookRequest{}.IsEmpty())
	})

	t.Run("partial update with valid fields", func(t *testing.T) {
		req := UpdateBookRequest{Price: floatPtr(10), Title: strPtr("Dune Messiah")}
		assert.NoError(t, req.Validate())
		assert.False(t, req.IsEmpty())
	})

	tests := []struct {
		name  string
		req   UpdateBookRequest
		field string
	}{
		{"empty title", UpdateBookRequest{Title: strPtr("")}, "title"},
		{"negative price", UpdateBookRequest{Price: floatPtr(-0.01)}, "price"},
		{"bad isbn", UpdateBookRequest{ISBN: strPtr("abc")}, "isbn"},
		{"empty language", UpdateBookRequest{Language: strPtr("")}, "language"},
		{"zero pages", UpdateBookRequest{NumberOfPages: intPtr(0)}, "numberOfPages"},
		{"negative pages", UpdateBookRequest{NumberOfPages: intPtr(-7)}, "numberOfPages"},
		{"empty publisher", UpdateBookRequest{Publisher: strPtr("")}, "publisher"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			require.Error(t, err)

			verrs, ok := err.(validation.Errors)
			require.True(t, ok)
			assert.Contains(t, verrs, tt.field)
		})
	}
}

func TestUpdateBookRequestApplyToEntity(t *testing.T) {
	book := Book{
		Title:         "Dune",
		Price:         decimal.NewFromInt(15),
		ISBN:          "9780306406157",
		Language:      "en",
		NumberOfPages: 412,
		Publisher:     "Chilton",
	}

	UpdateBookRequest{
		Price:    floatPtr(20),
		Language: strPtr("de"),
	}.ApplyToEntity(&book)

	assert.Equal(t, "Dune", book.Title, "untouched fields keep their values")
	assert.True(t, decimal.NewFromInt(20).Equal(book.Price))
	assert.Equal(t, "de", book.Language)
	assert.Equal(t, 412, book.NumberOfPages)
}

func TestAuthorInputParsedBirthDate(t *testing.T) {
	in := AuthorInput{Name: "Frank Herbert", Country: "USA", BirthDate: "1920-10-08"}
	require.NoError(t, in.Validate())

	parsed := in.ParsedBirthDate()
	assert.Equal(t, 1920, parsed.Year())
	assert.Equal(t, time.October, parsed.Month())
	assert.Equal(t, 8, parsed.Day())
}
