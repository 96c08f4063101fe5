package service

import (
	"context"

	"bookcatalog-backend/internal/domains/book/model"
)

// ServiceInterface defines the business logic for the book catalog.
type ServiceInterface interface {
	ListBooks(ctx context.Context, page, limit int) (*model.ListBooksResult, error)
	CreateBook(ctx context.Context, req model.CreateBookRequest) (*model.BookResponse, error)
	UpdateBook(ctx context.Context, id string, req model.UpdateBookRequest) (*model.BookResponse, error)
	DeleteBook(ctx context.Context, id string) (*model.BookResponse, error)
}
