// Package store persists Framelight content in a Badger key-value
// database. Each collection is a generic Entity with JSON values and
// transactional unique indexes for slugs and emails.
package store

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/framelightapp/framelight-server/internal/domain"
)

// gcInterval is how often the value log garbage collector runs.
const gcInterval = 5 * time.Minute

// Store wraps a Badger database instance and exposes one Entity per
// content collection.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
	gcStop chan struct{}

	Films      *Entity[domain.Film]
	Series     *Entity[domain.Series]
	Blogs      *Entity[domain.Blog]
	Categories *Entity[domain.Category]
	Tags       *Entity[domain.Tag]
	Authors    *Entity[domain.Author]
	Banners    *Entity[domain.Banner]
	Users      *Entity[domain.User]
}

// New opens the Badger database at path and initializes all entities.
func New(path string, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Sync writes to disk to prevent corruption on crashes
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	s := &Store{
		db:     db,
		logger: logger,
		gcStop: make(chan struct{}),
	}
	s.initEntities()
	go s.runGC()

	if logger != nil {
		logger.Info("Badger database opened successfully", "path", path)
	}

	return s, nil
}

// runGC periodically reclaims space from the Badger value log. Each
// tick rewrites value log files until there is nothing left to rewrite.
func (s *Store) runGC() {
	ticker := time.NewTicker(gcInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.gcStop:
			return
		case <-ticker.C:
			for {
				if err := s.db.RunValueLogGC(0.5); err != nil {
					break
				}
			}
		}
	}
}

// Close stops the value log GC and closes the database connection.
func (s *Store) Close() error {
	if s.logger != nil {
		s.logger.Info("Closing database connection")
	}
	close(s.gcStop)
	return s.db.Close()
}

func (s *Store) initEntities() {
	s.Films = NewEntity[domain.Film](s, "film:").
		WithIndex("slug", func(f *domain.Film) []string {
			return []string{f.Slug}
		})

	s.Series = NewEntity[domain.Series](s, "series:").
		WithIndex("slug", func(sr *domain.Series) []string {
			return []string{sr.Slug}
		})

	s.Blogs = NewEntity[domain.Blog](s, "blog:").
		WithIndex("slug", func(b *domain.Blog) []string {
			return []string{b.Slug}
		})

	s.Categories = NewEntity[domain.Category](s, "category:").
		WithIndex("slug", func(c *domain.Category) []string {
			return []string{c.Slug}
		}).
		WithIndexTransform("name",
			func(c *domain.Category) []string {
				return []string{strings.TrimSpace(c.Name)}
			},
			strings.TrimSpace,
		)

	s.Tags = NewEntity[domain.Tag](s, "tag:").
		WithIndex("slug", func(t *domain.Tag) []string {
			return []string{t.Slug}
		}).
		WithIndexTransform("name",
			func(t *domain.Tag) []string {
				return []string{strings.TrimSpace(t.Name)}
			},
			strings.TrimSpace,
		)

	s.Authors = NewEntity[domain.Author](s, "author:").
		WithIndex("slug", func(a *domain.Author) []string {
			return []string{a.Slug}
		}).
		WithIndexTransform("email",
			func(a *domain.Author) []string {
				return []string{normalizeEmail(a.Email)}
			},
			normalizeEmail, // Case-insensitive lookups
		)

	s.Banners = NewEntity[domain.Banner](s, "banner:")

	s.Users = NewEntity[domain.User](s, "user:").
		WithIndexTransform("email",
			func(u *domain.User) []string {
				return []string{normalizeEmail(u.Email)}
			},
			normalizeEmail,
		)
}

// normalizeEmail lowercases and trims an email for index storage and
// lookup.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
