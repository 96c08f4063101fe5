package apperror

import (
	"fmt"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Error is a domain error carrying its own HTTP status and client-facing
// message. The service layer raises these; they propagate untouched to the
// error-normalizer middleware, which is the only place they are rendered.
type Error struct {
	Code    string   `json:"code"`
	Status  int      `json:"status"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

// Canonical taxonomy. This table is the single source of truth for
// status/message pairs; neither the service nor the normalizer defines
// its own copies.
var (
	NegativeValue = &Error{Code: "NEGATIVE_VALUE", Status: 400, Message: "Price can not be negative"}

	BookNotFound      = &Error{Code: "BOOK_NOT_FOUND", Status: 404, Message: "Book not found"}
	BookAlreadyExists = &Error{Code: "BOOK_ALREADY_EXISTS", Status: 400, Message: "A book with this title already exists."}
	ISBNAlreadyExists = &Error{Code: "ISBN_ALREADY_EXISTS", Status: 400, Message: "A book with this ISBN already exists."}
	BookInvalidID     = &Error{Code: "BOOK_INVALID_ID", Status: 400, Message: "Invalid book id format"}
	BookNotFoundID    = &Error{Code: "BOOK_NOT_FOUND_ID", Status: 404, Message: "No book found with this id"}

	SomethingWentWrong = &Error{Code: "SOMETHING_WENT_WRONG", Status: 500, Message: "something went wrong"}
)

const ValidationErrorCode = "VALIDATION_ERROR"

// FromValidation converts an ozzo validation result into a VALIDATION_ERROR
// domain error. The surfaced message is the first detail; details are sorted
// by field path so the outcome is deterministic for identical input.
func FromValidation(err error) *Error {
	details := Flatten(err)
	if len(details) == 0 {
		details = []string{err.Error()}
	}
	return &Error{
		Code:    ValidationErrorCode,
		Status:  400,
		Message: details[0],
		Details: details,
	}
}

// Flatten renders validation.Errors (possibly nested, for embedded objects
// like the author sub-record) as sorted "field: message" strings.
func Flatten(err error) []string {
	verrs, ok := err.(validation.Errors)
	if !ok {
		return nil
	}
	return flattenInto("", verrs)
}

func flattenInto(prefix string, verrs validation.Errors) []string {
	var details []string
	for field, ferr := range verrs {
		path := field
		if prefix != "" {
			path = prefix + "." + field
		}
		if nested, ok := ferr.(validation.Errors); ok {
			details = append(details, flattenInto(path, nested)...)
			continue
		}
		details = append(details, fmt.Sprintf("%s: %v", path, ferr))
	}
	sort.Strings(details)
	return details
}
