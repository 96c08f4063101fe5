package model

import (
	"time"

	"bookcatalog-backend/internal/domains/author"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Book is the catalog entity. Title and ISBN carry unique indexes in the
// store; those indexes, not the service-level pre-checks, are the source of
// truth for uniqueness.
type Book struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	Title         string          `json:"title" db:"title"`
	AuthorID      uuid.UUID       `json:"author_id" db:"author_id"`
	Price         decimal.Decimal `json:"price" db:"price"`
	ISBN          string          `json:"isbn" db:"isbn"`
	Language      string          `json:"language" db:"language"`
	NumberOfPages int             `json:"numberOfPages" db:"number_of_pages"`
	Publisher     string          `json:"publisher" db:"publisher"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}

// BookWithAuthor pairs a book with its resolved author sub-record, the shape
// every read path returns.
type BookWithAuthor struct {
	Book   Book
	Author author.Author
}

// BookResponse is the client-facing book shape with the author reference
// denormalized into an embedded object.
type BookResponse struct {
	ID            uuid.UUID     `json:"id"`
	Title         string        `json:"title"`
	Author        author.Author `json:"author"`
	Price         float64       `json:"price"`
	ISBN          string        `json:"isbn"`
	Language      string        `json:"language"`
	NumberOfPages int           `json:"numberOfPages"`
	Publisher     string        `json:"publisher"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// ListBooksResult carries one page of books plus the pagination metadata the
// list endpoint exposes.
type ListBooksResult struct {
	Books       []BookResponse
	TotalBooks  int
	TotalPages  int
	CurrentPage int
}

func priceFromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// ToResponse converts a resolved book to its response shape.
func (bw BookWithAuthor) ToResponse() BookResponse {
	price, _ := bw.Book.Price.Float64()
	return BookResponse{
		ID:            bw.Book.ID,
		Title:         bw.Book.Title,
		Author:        bw.Author,
		Price:         price,
		ISBN:          bw.Book.ISBN,
		Language:      bw.Book.Language,
		NumberOfPages: bw.Book.NumberOfPages,
		Publisher:     bw.Book.Publisher,
		CreatedAt:     bw.Book.CreatedAt,
		UpdatedAt:     bw.Book.UpdatedAt,
	}
}
