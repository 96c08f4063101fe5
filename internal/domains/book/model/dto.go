package model

import (
	"errors"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	isbnPattern = regexp.MustCompile(`^(\d{9}[\dX]|\d{13})$`)
	namePattern = regexp.MustCompile(`^[a-zA-Z\s]+$`)
)

// minPages enforces numberOfPages >= 1. A plain Min rule cannot do this:
// ozzo threshold rules skip zero values entirely, so 0 would slip through
// to the database CHECK constraint and surface as a 500.
func minPages(value interface{}) error {
	v, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	if n, ok := v.(int); !ok || n < 1 {
		return errors.New("numberOfPages must be at least 1")
	}
	return nil
}

const birthDateLayout = "2006-01-02"

// AuthorInput is the inline author payload accepted on book creation.
type AuthorInput struct {
	Name      string `json:"name"`
	Country   string `json:"country"`
	BirthDate string `json:"birthDate"`
}

func (a AuthorInput) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Name,
			validation.Required.Error("Name is required!"),
			validation.Length(2, 50).Error("Name must be between 2 and 50 characters long!"),
			validation.Match(namePattern).Error("Name must contain only letters!"),
		),
		validation.Field(&a.Country,
			validation.Required.Error("Country is required!"),
			validation.Length(2, 50).Error("Country must be between 2 and 50 characters long!"),
		),
		validation.Field(&a.BirthDate,
			validation.Required.Error("Birth date is required!"),
			validation.Date(birthDateLayout).
				Max(time.Now()).
				Error("Birth date must be a valid date in YYYY-MM-DD format!").
				RangeError("Birth date cannot be in the future!"),
		),
	)
}

// ParsedBirthDate assumes Validate has passed.
func (a AuthorInput) ParsedBirthDate() time.Time {
	t, _ := time.Parse(birthDateLayout, a.BirthDate)
	return t
}

// CreateBookRequest - POST /v1/books
// Numeric fields are pointers so "absent" and "zero" stay distinguishable.
type CreateBookRequest struct {
	Title         string      `json:"title"`
	Author        AuthorInput `json:"author"`
	Price         *float64    `json:"price"`
	ISBN          string      `json:"isbn"`
	Language      string      `json:"language"`
	NumberOfPages *int        `json:"numberOfPages"`
	Publisher     string      `json:"publisher"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.Author, validation.Required.Error("author is required")),
		validation.Field(&r.Price,
			validation.NotNil.Error("price is required"),
			validation.Min(0.0).Error("price must be greater than or equal to 0"),
		),
		validation.Field(&r.ISBN,
			validation.Match(isbnPattern).Error("ISBN must be either 9 digits followed by a check character or 13 digits"),
		),
		validation.Field(&r.Language, validation.Required.Error("language is required")),
		validation.Field(&r.NumberOfPages,
			validation.NotNil.Error("numberOfPages is required"),
			validation.By(minPages),
		),
		validation.Field(&r.Publisher, validation.Required.Error("publisher is required")),
	)
}

// UpdateBookRequest - PUT /v1/books/:id
// Every field optional; present fields obey the create constraints. The
// author sub-record is not updatable, it is owned by its book for life.
type UpdateBookRequest struct {
	Title         *string  `json:"title"`
	Price         *float64 `json:"price"`
	ISBN          *string  `json:"isbn"`
	Language      *string  `json:"language"`
	NumberOfPages *int     `json:"numberOfPages"`
	Publisher     *string  `json:"publisher"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty.Error("title cannot be empty")),
		validation.Field(&r.Price,
			validation.Min(0.0).Error("price must be greater than or equal to 0"),
		),
		validation.Field(&r.ISBN,
			validation.NilOrNotEmpty.Error("isbn cannot be empty"),
			validation.Match(isbnPattern).Error("ISBN must be either 9 digits followed by a check character or 13 digits"),
		),
		validation.Field(&r.Language, validation.NilOrNotEmpty.Error("language cannot be empty")),
		validation.Field(&r.NumberOfPages, validation.By(minPages)),
		validation.Field(&r.Publisher, validation.NilOrNotEmpty.Error("publisher cannot be empty")),
	)
}

// IsEmpty reports whether the update carries no fields at all.
func (r UpdateBookRequest) IsEmpty() bool {
	return r.Title == nil && r.Price == nil && r.ISBN == nil &&
		r.Language == nil && r.NumberOfPages == nil && r.Publisher == nil
}

// ApplyToEntity copies the present fields onto an existing book.
func (r UpdateBookRequest) ApplyToEntity(b *Book) {
	if r.Title != nil {
		b.Title = *r.Title
	}
	if r.Price != nil {
		b.Price = priceFromFloat(*r.Price)
	}
	if r.ISBN != nil {
		b.ISBN = *r.ISBN
	}
	if r.Language != nil {
		b.Language = *r.Language
	}
	if r.NumberOfPages != nil {
		b.NumberOfPages = *r.NumberOfPages
	}
	if r.Publisher != nil {
		b.Publisher = *r.Publisher
	}
}
