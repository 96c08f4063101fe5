package repository

import (
	"context"

	"bookcatalog-backend/internal/domains/book/model"

	"github.com/google/uuid"
)

// RepositoryInterface defines the data access methods for books. All read
// paths resolve the author reference so callers never hand out a bare
// author_id.
type RepositoryInterface interface {
	ListBooks(ctx context.Context, limit, offset int) ([]model.BookWithAuthor, error)
	CountBooks(ctx context.Context) (int, error)
	GetBookByID(ctx context.Context, id uuid.UUID) (*model.Book, error)
	GetBookWithAuthor(ctx context.Context, id uuid.UUID) (*model.BookWithAuthor, error)
	ExistsByTitle(ctx context.Context, title string, excludeID uuid.UUID) (bool, error)
	ExistsByISBN(ctx context.Context, isbn string) (bool, error)
	CreateBook(ctx context.Context, book *model.Book) error
	UpdateBook(ctx context.Context, book *model.Book) error
	DeleteBook(ctx context.Context, id uuid.UUID) error
}
