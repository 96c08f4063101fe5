package author

import (
	"context"
)

// Repository is the data access contract for author sub-records. Deliberately
// narrow: authors are written once alongside a book; reads happen through the
// book repository's join.
type Repository interface {
	Create(ctx context.Context, author *Author) error
}
