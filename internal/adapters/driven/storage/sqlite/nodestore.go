package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/orgsync/internal/core/domain"
	"github.com/custodia-labs/orgsync/internal/core/ports/driven"
)

// ==================== Node Store ====================

// nodeStore implements driven.NodeStore.
type nodeStore struct {
	store *Store
}

var _ driven.NodeStore = (*nodeStore)(nil)

// BeginParse opens a transaction, clears the file's previous nodes and
// creates its root node.
func (s *nodeStore) BeginParse(ctx context.Context, file *domain.OrgFile) (driven.NodeSink, error) {
	if file == nil || file.Name == "" {
		return nil, domain.ErrInvalidInput
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	ok := false
	defer func() {
		if !ok {
			tx.Rollback() //nolint:errcheck
		}
	}()

	var existingID string
	err = tx.QueryRowContext(ctx, "SELECT id FROM files WHERE name = ?", file.Name).Scan(&existingID)
	switch {
	case err == nil:
		file.ID = existingID
	case errors.Is(err, sql.ErrNoRows):
		if file.ID == "" {
			return nil, fmt.Errorf("file %s has no id: %w", file.Name, domain.ErrInvalidInput)
		}
	default:
		return nil, fmt.Errorf("looking up file: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM payloads WHERE node_id IN (SELECT id FROM nodes WHERE file_id = ?)
	`, file.ID); err != nil {
		return nil, fmt.Errorf("clearing payloads: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM nodes WHERE file_id = ?", file.ID); err != nil {
		return nil, fmt.Errorf("clearing nodes: %w", err)
	}

	if file.ParsedAt.IsZero() {
		file.ParsedAt = time.Now().UTC()
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO files (id, name, alias, checksum, root_node_id, parsed_at)
		VALUES (?, ?, ?, ?, NULL, ?)
		ON CONFLICT(id) DO UPDATE SET
			alias = excluded.alias,
			checksum = excluded.checksum,
			root_node_id = NULL,
			parsed_at = excluded.parsed_at
	`, file.ID, file.Name, file.Alias, file.Checksum, file.ParsedAt); err != nil {
		return nil, fmt.Errorf("saving file: %w", err)
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO nodes (file_id, parent_id, depth, title)
		VALUES (?, NULL, 0, ?)
	`, file.ID, file.DisplayName())
	if err != nil {
		return nil, fmt.Errorf("inserting root node: %w", err)
	}
	rootID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading root node id: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "UPDATE files SET root_node_id = ? WHERE id = ?", rootID, file.ID); err != nil {
		return nil, fmt.Errorf("linking root node: %w", err)
	}

	nodeStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO nodes (file_id, parent_id, depth, title, todo, priority, tags, inherited_tags, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return nil, fmt.Errorf("preparing node statement: %w", err)
	}
	payloadStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO payloads (node_id, content, scheduled, scheduled_date, deadline, deadline_date)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return nil, fmt.Errorf("preparing payload statement: %w", err)
	}

	file.RootNodeID = rootID
	ok = true
	return &nodeSink{tx: tx, nodeStmt: nodeStmt, payloadStmt: payloadStmt}, nil
}

// GetFile retrieves a file by name.
func (s *nodeStore) GetFile(ctx context.Context, name string) (*domain.OrgFile, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, name, alias, checksum, root_node_id, parsed_at
		FROM files WHERE name = ?
	`, name)

	file, err := scanFile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return file, err
}

// ListFiles returns all parsed files ordered by name.
func (s *nodeStore) ListFiles(ctx context.Context) ([]domain.OrgFile, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, name, alias, checksum, root_node_id, parsed_at
		FROM files ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("querying files: %w", err)
	}
	defer rows.Close()

	var files []domain.OrgFile //nolint:prealloc // size unknown from query
	for rows.Next() {
		file, err := scanFile(rows)
		if err != nil {
			return nil, err
		}
		files = append(files, *file)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating files: %w", err)
	}
	return files, nil
}

// ListNodes returns the nodes of a file in insertion order.
func (s *nodeStore) ListNodes(ctx context.Context, fileID string) ([]domain.Node, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, file_id, parent_id, depth, title, todo, priority, tags, inherited_tags, position
		FROM nodes WHERE file_id = ?
		ORDER BY id
	`, fileID)
	if err != nil {
		return nil, fmt.Errorf("querying nodes: %w", err)
	}
	defer rows.Close()

	var nodes []domain.Node //nolint:prealloc // size unknown from query
	for rows.Next() {
		var n domain.Node
		var parentID sql.NullInt64
		if err := rows.Scan(&n.ID, &n.FileID, &parentID, &n.Depth, &n.Title, &n.Todo,
			&n.Priority, &n.Tags, &n.InheritedTags, &n.Position); err != nil {
			return nil, fmt.Errorf("scanning node: %w", err)
		}
		n.ParentID = parentID.Int64
		nodes = append(nodes, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating nodes: %w", err)
	}
	return nodes, nil
}

// ListPayloads returns the payloads of a file's nodes.
func (s *nodeStore) ListPayloads(ctx context.Context, fileID string) ([]domain.Payload, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT p.node_id, p.content, p.scheduled, p.scheduled_date, p.deadline, p.deadline_date
		FROM payloads p JOIN nodes n ON n.id = p.node_id
		WHERE n.file_id = ?
		ORDER BY p.node_id
	`, fileID)
	if err != nil {
		return nil, fmt.Errorf("querying payloads: %w", err)
	}
	defer rows.Close()

	var payloads []domain.Payload //nolint:prealloc // size unknown from query
	for rows.Next() {
		var p domain.Payload
		var scheduled, deadline int
		var scheduledDate, deadlineDate string
		if err := rows.Scan(&p.NodeID, &p.Text, &scheduled, &scheduledDate, &deadline, &deadlineDate); err != nil {
			return nil, fmt.Errorf("scanning payload: %w", err)
		}
		p.Timestamps = make(domain.TimestampRecord)
		if scheduled != 0 {
			p.Timestamps[domain.TimestampScheduled] = scheduledDate
		}
		if deadline != 0 {
			p.Timestamps[domain.TimestampDeadline] = deadlineDate
		}
		payloads = append(payloads, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating payloads: %w", err)
	}
	return payloads, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanFile(row rowScanner) (*domain.OrgFile, error) {
	var file domain.OrgFile
	var rootID sql.NullInt64
	var parsedAt sql.NullTime
	if err := row.Scan(&file.ID, &file.Name, &file.Alias, &file.Checksum, &rootID, &parsedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning file: %w", err)
	}
	file.RootNodeID = rootID.Int64
	if parsedAt.Valid {
		file.ParsedAt = parsedAt.Time
	}
	return &file, nil
}

// ==================== Node Sink ====================

// nodeSink implements driven.NodeSink over one transaction.
type nodeSink struct {
	tx          *sql.Tx
	nodeStmt    *sql.Stmt
	payloadStmt *sql.Stmt
	done        bool
}

var _ driven.NodeSink = (*nodeSink)(nil)

// InsertNode stores a node and returns its row ID.
func (s *nodeSink) InsertNode(ctx context.Context, node *domain.Node) (int64, error) {
	if s.done {
		return 0, domain.ErrTransactionClosed
	}
	res, err := s.nodeStmt.ExecContext(ctx, node.FileID, nullInt64(node.ParentID), node.Depth,
		node.Title, node.Todo, node.Priority, node.Tags, node.InheritedTags, node.Position)
	if err != nil {
		return 0, fmt.Errorf("inserting node: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading node id: %w", err)
	}
	return id, nil
}

// InsertPayload stores the payload row of a node.
func (s *nodeSink) InsertPayload(
	ctx context.Context,
	nodeID int64,
	text string,
	timestamps domain.TimestampRecord,
) error {
	if s.done {
		return domain.ErrTransactionClosed
	}
	_, err := s.payloadStmt.ExecContext(ctx, nodeID, text,
		timestamps.Flag(domain.TimestampScheduled), timestamps[domain.TimestampScheduled],
		timestamps.Flag(domain.TimestampDeadline), timestamps[domain.TimestampDeadline])
	if err != nil {
		return fmt.Errorf("inserting payload: %w", err)
	}
	return nil
}

// Commit commits the parse transaction.
func (s *nodeSink) Commit() error {
	if s.done {
		return domain.ErrTransactionClosed
	}
	s.done = true
	if err := s.tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Rollback discards the parse. It is a no-op after Commit.
func (s *nodeSink) Rollback() error {
	if s.done {
		return nil
	}
	s.done = true
	return s.tx.Rollback()
}
