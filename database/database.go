package database

import (
	"context"
	"fmt"

	"github.com/blockwavenation/gtn-backend/models"
	"gorm.io/gorm"
)

type Database struct {
	db              *gorm.DB
	projectRepo     *ProjectRepo
	eventRepo       *EventRepo
	newsRepo        *NewsRepo
	blogRepo        *BlogRepo
	joinRequestRepo *JoinRequestRepo
}

// contentTables lists the tables covered by backup snapshot/replace, in the
// order they are swapped. join_requests is deliberately excluded.
var contentTables = []string{"projects", "events", "news", "blogs"}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:              db,
		projectRepo:     NewProjectRepo(db),
		eventRepo:       NewEventRepo(db),
		newsRepo:        NewNewsRepo(db),
		blogRepo:        NewBlogRepo(db),
		joinRequestRepo: NewJoinRequestRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) EventRepo() *EventRepo {
	return d.eventRepo
}

func (d Database) NewsRepo() *NewsRepo {
	return d.newsRepo
}

func (d Database) BlogRepo() *BlogRepo {
	return d.blogRepo
}

func (d Database) JoinRequestRepo() *JoinRequestRepo {
	return d.joinRequestRepo
}

// Ping verifies database connectivity for the health endpoint.
func (d Database) Ping(ctx context.Context) error {
	var result int
	return d.db.WithContext(ctx).Raw("SELECT 1").Scan(&result).Error
}

// Snapshot reads all rows of the four content tables ordered by ascending id.
// The normalized order makes a restore followed by a re-export byte-identical.
// Read-only: performs no writes.
func (d Database) Snapshot(ctx context.Context) (models.ContentSnapshot, error) {
	var snapshot models.ContentSnapshot
	db := d.db.WithContext(ctx)

	if err := db.Order("id ASC").Find(&snapshot.Projects).Error; err != nil {
		return snapshot, fmt.Errorf("snapshot projects: %w", err)
	}
	if err := db.Order("id ASC").Find(&snapshot.Events).Error; err != nil {
		return snapshot, fmt.Errorf("snapshot events: %w", err)
	}
	if err := db.Order("id ASC").Find(&snapshot.News).Error; err != nil {
		return snapshot, fmt.Errorf("snapshot news: %w", err)
	}
	if err := db.Order("id ASC").Find(&snapshot.Blogs).Error; err != nil {
		return snapshot, fmt.Errorf("snapshot blogs: %w", err)
	}

	return snapshot, nil
}

// Replace swaps the entire content of the four content tables for the
// snapshot within a single transaction, preserving row ids and created_at
// timestamps. Any failure rolls the whole swap back; no partial replacement
// is observable.
func (d Database) Replace(ctx context.Context, snapshot models.ContentSnapshot) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range contentTables {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}

		if len(snapshot.Projects) > 0 {
			if err := tx.Create(&snapshot.Projects).Error; err != nil {
				return fmt.Errorf("restore projects: %w", err)
			}
		}
		if len(snapshot.Events) > 0 {
			if err := tx.Create(&snapshot.Events).Error; err != nil {
				return fmt.Errorf("restore events: %w", err)
			}
		}
		if len(snapshot.News) > 0 {
			if err := tx.Create(&snapshot.News).Error; err != nil {
				return fmt.Errorf("restore news: %w", err)
			}
		}
		if len(snapshot.Blogs) > 0 {
			if err := tx.Create(&snapshot.Blogs).Error; err != nil {
				return fmt.Errorf("restore blogs: %w", err)
			}
		}

		// Rows were inserted with explicit ids, so each sequence has to be
		// moved past the restored maximum or the next create would collide.
		for _, table := range contentTables {
			stmt := fmt.Sprintf(
				"SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE((SELECT MAX(id) FROM %s), 0) + 1, false)",
				table, table,
			)
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("reset %s id sequence: %w", table, err)
			}
		}

		return nil
	})
}
