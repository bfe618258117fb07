package sqlite

import (
	"context"
	"fmt"

	"github.com/custodia-labs/orgsync/internal/core/domain"
	"github.com/custodia-labs/orgsync/internal/core/ports/driven"
)

// ==================== Index Store ====================

// indexStore implements driven.IndexStore.
type indexStore struct {
	store *Store
}

var _ driven.IndexStore = (*indexStore)(nil)

// SaveIndex replaces the stored vocabulary in one transaction.
func (s *indexStore) SaveIndex(ctx context.Context, meta *domain.IndexMetadata) error {
	if meta == nil {
		return domain.ErrInvalidInput
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, table := range []string{"index_files", "todo_keywords", "priorities", "tags"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for name, alias := range meta.Files {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO index_files (name, alias) VALUES (?, ?)", name, alias); err != nil {
			return fmt.Errorf("saving index file: %w", err)
		}
	}

	for i, set := range meta.Todos {
		for kw, done := range set {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO todo_keywords (set_index, keyword, done) VALUES (?, ?, ?)",
				i, kw, boolToInt(done)); err != nil {
				return fmt.Errorf("saving todo keyword: %w", err)
			}
		}
	}

	for i, p := range meta.Priorities {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO priorities (position, value) VALUES (?, ?)", i, p); err != nil {
			return fmt.Errorf("saving priority: %w", err)
		}
	}

	for i, t := range meta.Tags {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO tags (position, value) VALUES (?, ?)", i, t); err != nil {
			return fmt.Errorf("saving tag: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// GetIndex reads the stored vocabulary back.
func (s *indexStore) GetIndex(ctx context.Context) (*domain.IndexMetadata, error) {
	files, err := s.indexFiles(ctx)
	if err != nil {
		return nil, err
	}
	todos, err := s.todoSets(ctx)
	if err != nil {
		return nil, err
	}
	priorities, err := s.orderedValues(ctx, "priorities")
	if err != nil {
		return nil, err
	}
	tags, err := s.orderedValues(ctx, "tags")
	if err != nil {
		return nil, err
	}

	return &domain.IndexMetadata{
		Files:      files,
		Todos:      todos,
		Priorities: priorities,
		Tags:       tags,
	}, nil
}

func (s *indexStore) indexFiles(ctx context.Context) (map[string]string, error) {
	rows, err := s.store.db.QueryContext(ctx, "SELECT name, alias FROM index_files")
	if err != nil {
		return nil, fmt.Errorf("querying index files: %w", err)
	}
	defer rows.Close()

	files := make(map[string]string)
	for rows.Next() {
		var name, alias string
		if err := rows.Scan(&name, &alias); err != nil {
			return nil, fmt.Errorf("scanning index file: %w", err)
		}
		files[name] = alias
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating index files: %w", err)
	}
	return files, nil
}

func (s *indexStore) todoSets(ctx context.Context) ([]domain.TodoSet, error) {
	rows, err := s.store.db.QueryContext(ctx,
		"SELECT set_index, keyword, done FROM todo_keywords ORDER BY set_index")
	if err != nil {
		return nil, fmt.Errorf("querying todo keywords: %w", err)
	}
	defer rows.Close()

	var sets []domain.TodoSet
	for rows.Next() {
		var idx, done int
		var kw string
		if err := rows.Scan(&idx, &kw, &done); err != nil {
			return nil, fmt.Errorf("scanning todo keyword: %w", err)
		}
		for len(sets) <= idx {
			sets = append(sets, make(domain.TodoSet))
		}
		sets[idx][kw] = done != 0
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating todo keywords: %w", err)
	}
	return sets, nil
}

// orderedValues reads a (position, value) table in position order.
func (s *indexStore) orderedValues(ctx context.Context, table string) ([]string, error) {
	rows, err := s.store.db.QueryContext(ctx, "SELECT value FROM "+table+" ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", table, err)
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", table, err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s: %w", table, err)
	}
	return values, nil
}
