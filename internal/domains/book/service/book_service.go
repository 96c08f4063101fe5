package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookcatalog-backend/internal/domains/author"
	"bookcatalog-backend/internal/domains/book/model"
	"bookcatalog-backend/internal/domains/book/repository"
	"bookcatalog-backend/internal/shared/apperror"
	"bookcatalog-backend/internal/shared/utils"

	"github.com/google/uuid"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type BookService struct {
	repo       repository.RepositoryInterface
	authorRepo author.Repository
}

func NewService(repo repository.RepositoryInterface, authorRepo author.Repository) ServiceInterface {
	return &BookService{
		repo:       repo,
		authorRepo: authorRepo,
	}
}

// ListBooks returns one page of books with authors resolved. Absent or
// invalid paging parameters fall back to page=1, limit=10.
func (s *BookService) ListBooks(ctx context.Context, page, limit int) (*model.ListBooksResult, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}

	totalBooks, err := s.repo.CountBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	books, err := s.repo.ListBooks(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	responses := make([]model.BookResponse, len(books))
	for i, bw := range books {
		responses[i] = bw.ToResponse()
	}

	return &model.ListBooksResult{
		Books:       responses,
		TotalBooks:  totalBooks,
		TotalPages:  (totalBooks + limit - 1) / limit,
		CurrentPage: page,
	}, nil
}

// CreateBook validates the payload, enforces title/ISBN uniqueness, persists
// the author profile and then the book referencing it. A missing ISBN gets a
// generated ISBN-13; a generated collision is left to the unique index, which
// maps back to the same domain error on the next attempt.
func (s *BookService) CreateBook(ctx context.Context, req model.CreateBookRequest) (*model.BookResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.FromValidation(err)
	}

	titleTaken, err := s.repo.ExistsByTitle(ctx, req.Title, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}
	if titleTaken {
		return nil, apperror.BookAlreadyExists
	}

	isbn := req.ISBN
	if isbn != "" {
		isbnTaken, err := s.repo.ExistsByISBN(ctx, isbn)
		if err != nil {
			return nil, fmt.Errorf("create book: %w", err)
		}
		if isbnTaken {
			return nil, apperror.ISBNAlreadyExists
		}
	} else {
		isbn = utils.GenerateISBN13()
	}

	now := time.Now().UTC()

	authorProfile := &author.Author{
		ID:        uuid.New(),
		Name:      req.Author.Name,
		Country:   req.Author.Country,
		BirthDate: req.Author.ParsedBirthDate(),
		CreatedAt: now,
	}
	if err := s.authorRepo.Create(ctx, authorProfile); err != nil {
		return nil, fmt.Errorf("create author: %w", err)
	}

	book := &model.Book{
		ID:            uuid.New(),
		Title:         req.Title,
		AuthorID:      authorProfile.ID,
		Price:         *utils.ParseFloatToDecimal(req.Price),
		ISBN:          isbn,
		Language:      req.Language,
		NumberOfPages: *req.NumberOfPages,
		Publisher:     req.Publisher,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.CreateBook(ctx, book); err != nil {
		return nil, err
	}

	resp := model.BookWithAuthor{Book: *book, Author: *authorProfile}.ToResponse()
	return &resp, nil
}

// UpdateBook applies a partial update. The malformed-id check runs before the
// existence check, and a changed title is checked against all other books.
func (s *BookService) UpdateBook(ctx context.Context, id string, req model.UpdateBookRequest) (*model.BookResponse, error) {
	bookID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.BookInvalidID
	}

	book, err := s.repo.GetBookByID(ctx, bookID)
	if errors.Is(err, repository.ErrBookNotFound) {
		return nil, apperror.BookNotFoundID
	}
	if err != nil {
		return nil, fmt.Errorf("update book: %w", err)
	}

	if req.Title != nil && *req.Title != book.Title {
		titleTaken, err := s.repo.ExistsByTitle(ctx, *req.Title, bookID)
		if err != nil {
			return nil, fmt.Errorf("update book: %w", err)
		}
		if titleTaken {
			return nil, apperror.BookAlreadyExists
		}
	}

	if err := req.Validate(); err != nil {
		return nil, apperror.FromValidation(err)
	}

	// An empty payload is a no-op; return the record as it stands.
	if req.IsEmpty() {
		return s.resolve(ctx, bookID)
	}

	req.ApplyToEntity(book)
	book.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateBook(ctx, book); err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return nil, apperror.BookNotFoundID
		}
		return nil, err
	}

	return s.resolve(ctx, bookID)
}

// DeleteBook removes a book and returns the deleted record with its author
// still resolved.
func (s *BookService) DeleteBook(ctx context.Context, id string) (*model.BookResponse, error) {
	bookID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.BookInvalidID
	}

	bw, err := s.repo.GetBookWithAuthor(ctx, bookID)
	if errors.Is(err, repository.ErrBookNotFound) {
		return nil, apperror.BookNotFoundID
	}
	if err != nil {
		return nil, fmt.Errorf("delete book: %w", err)
	}

	if err := s.repo.DeleteBook(ctx, bookID); err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return nil, apperror.BookNotFoundID
		}
		return nil, fmt.Errorf("delete book: %w", err)
	}

	resp := bw.ToResponse()
	return &resp, nil
}

func (s *BookService) resolve(ctx context.Context, id uuid.UUID) (*model.BookResponse, error) {
	bw, err := s.repo.GetBookWithAuthor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("resolve book: %w", err)
	}
	resp := bw.ToResponse()
	return &resp, nil
}
