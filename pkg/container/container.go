package container

import (
	"context"
	"fmt"

	"bookcatalog-backend/internal/config"
	"bookcatalog-backend/internal/domains/author"
	bookHandler "bookcatalog-backend/internal/domains/book/handler"
	bookRepo "bookcatalog-backend/internal/domains/book/repository"
	bookService "bookcatalog-backend/internal/domains/book/service"
	"bookcatalog-backend/internal/infrastructure/database"

	"github.com/rs/zerolog/log"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton constructed once at startup; the database handle in particular
// is injected rather than reached for through package-level state.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB

	AuthorRepo author.Repository
	BookRepo   bookRepo.RepositoryInterface

	BookService bookService.ServiceInterface
	BookHandler *bookHandler.Handler
}

// NewContainer builds the dependency graph in order:
// config -> database -> repositories -> service -> handler.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	c.DB = database.NewPostgresDB(dbConfig)
	if err := c.DB.Connect(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	c.AuthorRepo = author.NewPostgresRepository(c.DB.Pool)
	c.BookRepo = bookRepo.NewPostgresRepository(c.DB.Pool)

	c.BookService = bookService.NewService(c.BookRepo, c.AuthorRepo)
	c.BookHandler = bookHandler.NewHandler(c.BookService)

	log.Info().Str("environment", cfg.App.Environment).Msg("Container initialized")
	return c, nil
}

// Cleanup releases long-lived resources; called on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
		log.Info().Msg("Database connection closed")
	}
}
