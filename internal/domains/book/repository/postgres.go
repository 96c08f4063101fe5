package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bookcatalog-backend/internal/domains/book/model"
	"bookcatalog-backend/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrBookNotFound signals an absent row; the service decides which domain
// error that becomes.
var ErrBookNotFound = errors.New("book not found")

const bookColumns = `b.id, b.title, b.author_id, b.price, b.isbn, b.language,
       b.number_of_pages, b.publisher, b.created_at, b.updated_at`

const authorColumns = `a.id, a.name, a.country, a.birth_date, a.created_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) ListBooks(ctx context.Context, limit, offset int) ([]model.BookWithAuthor, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM books b
		JOIN authors a ON b.author_id = a.id
		ORDER BY b.created_at, b.id
		LIMIT $1 OFFSET $2
	`, bookColumns, authorColumns)

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list books query failed: %w", err)
	}
	defer rows.Close()

	books := make([]model.BookWithAuthor, 0, limit)
	for rows.Next() {
		bw, err := scanBookWithAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan book row: %w", err)
		}
		books = append(books, *bw)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) CountBooks(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM books`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count books failed: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) GetBookByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	query := `
		SELECT id, title, author_id, price, isbn, language,
		       number_of_pages, publisher, created_at, updated_at
		FROM books
		WHERE id = $1
	`

	var b model.Book
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Title, &b.AuthorID, &b.Price, &b.ISBN, &b.Language,
		&b.NumberOfPages, &b.Publisher, &b.CreatedAt, &b.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	return &b, nil
}

func (r *postgresRepository) GetBookWithAuthor(ctx context.Context, id uuid.UUID) (*model.BookWithAuthor, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM books b
		JOIN authors a ON b.author_id = a.id
		WHERE b.id = $1
	`, bookColumns, authorColumns)

	row := r.pool.QueryRow(ctx, query, id)
	bw, err := scanBookWithAuthor(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get book with author: %w", err)
	}

	return bw, nil
}

func (r *postgresRepository) ExistsByTitle(ctx context.Context, title string, excludeID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM books WHERE title = $1 AND id != $2)`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, title, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check title: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM books WHERE isbn = $1)`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, isbn).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check ISBN: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) CreateBook(ctx context.Context, b *model.Book) error {
	query := `
		INSERT INTO books (
			id, title, author_id, price, isbn, language,
			number_of_pages, publisher, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.pool.Exec(ctx, query,
		b.ID, b.Title, b.AuthorID, b.Price, b.ISBN, b.Language,
		b.NumberOfPages, b.Publisher, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if conflictErr := mapUniqueViolation(err); conflictErr != nil {
			return conflictErr
		}
		return fmt.Errorf("failed to insert book: %w", err)
	}

	return nil
}

func (r *postgresRepository) UpdateBook(ctx context.Context, b *model.Book) error {
	query := `
		UPDATE books
		SET title = $1, price = $2, isbn = $3, language = $4,
		    number_of_pages = $5, publisher = $6, updated_at = $7
		WHERE id = $8
	`

	result, err := r.pool.Exec(ctx, query,
		b.Title, b.Price, b.ISBN, b.Language,
		b.NumberOfPages, b.Publisher, b.UpdatedAt,
		b.ID,
	)
	if err != nil {
		if conflictErr := mapUniqueViolation(err); conflictErr != nil {
			return conflictErr
		}
		return fmt.Errorf("failed to update book: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrBookNotFound
	}

	return nil
}

func (r *postgresRepository) DeleteBook(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrBookNotFound
	}

	return nil
}

// mapUniqueViolation translates a unique-index violation into the matching
// domain error. The indexes are the uniqueness source of truth; the service
// pre-checks only exist for a friendlier fast path, so a race that slips
// past them still surfaces as the same client-facing error.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}

	switch {
	case strings.Contains(pgErr.ConstraintName, "title"):
		return apperror.BookAlreadyExists
	case strings.Contains(pgErr.ConstraintName, "isbn"):
		return apperror.ISBNAlreadyExists
	default:
		return nil
	}
}

func scanBookWithAuthor(row pgx.Row) (*model.BookWithAuthor, error) {
	var bw model.BookWithAuthor
	err := row.Scan(
		&bw.Book.ID, &bw.Book.Title, &bw.Book.AuthorID, &bw.Book.Price, &bw.Book.ISBN,
		&bw.Book.Language, &bw.Book.NumberOfPages, &bw.Book.Publisher,
		&bw.Book.CreatedAt, &bw.Book.UpdatedAt,
		&bw.Author.ID, &bw.Author.Name, &bw.Author.Country, &bw.Author.BirthDate,
		&bw.Author.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &bw, nil
}
