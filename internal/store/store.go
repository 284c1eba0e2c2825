// Package store persists explored Pawn Race positions and the moves between
// them in SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/lgbarn/pawnrace-go/internal/chess"
	"github.com/lgbarn/pawnrace-go/internal/errors"
	"github.com/lgbarn/pawnrace-go/internal/hashing"
)

const schema = `
	CREATE TABLE IF NOT EXISTS positions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		layout TEXT NOT NULL UNIQUE,
		hash INTEGER NOT NULL,
		ply INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS edges (
		parent_id INTEGER NOT NULL,
		child_id INTEGER NOT NULL,
		move TEXT NOT NULL,
		FOREIGN KEY(parent_id) REFERENCES positions(id),
		FOREIGN KEY(child_id) REFERENCES positions(id),
		PRIMARY KEY(parent_id, child_id, move)
	);
	CREATE INDEX IF NOT EXISTS idx_edges_parent ON edges(parent_id);
`

// Store is a SQLite-backed position graph. Boards are stored by layout from
// the perspective of the side to move.
type Store struct {
	db *sql.DB
}

// Edge is a move from a stored position to one of its children.
type Edge struct {
	Child int64
	Move  chess.Move
}

func wrap(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, errors.ErrStore, err)
}

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, wrap("open "+path, err)
	}
	// One connection keeps the in-memory database shared and writes ordered.
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA synchronous=NORMAL;
		PRAGMA temp_store=MEMORY;
		PRAGMA foreign_keys=ON;
	`)
	if err != nil {
		db.Close()
		return nil, wrap("set pragmas", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, wrap("create schema", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return wrap("close", err)
	}
	return nil
}

// SavePosition stores b, first seen at ply, and returns its id. A board that
// is already stored keeps its id and original ply.
func (s *Store) SavePosition(ctx context.Context, b chess.Board, ply int) (int64, error) {
	layout := chess.Layout(b)
	_, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO positions (layout, hash, ply) VALUES (?, ?, ?)",
		layout, int64(hashing.Hash(b)), ply)
	if err != nil {
		return 0, wrap("save position", err)
	}

	var id int64
	err = s.db.QueryRowContext(ctx, "SELECT id FROM positions WHERE layout = ?", layout).Scan(&id)
	if err != nil {
		return 0, wrap("look up position", err)
	}
	return id, nil
}

// SaveEdge records that m leads from parent to child. Duplicates are ignored.
func (s *Store) SaveEdge(ctx context.Context, parent, child int64, m chess.Move) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO edges (parent_id, child_id, move) VALUES (?, ?, ?)",
		parent, child, m.String())
	if err != nil {
		return wrap("save edge", err)
	}
	return nil
}

// Load returns the board stored under id.
func (s *Store) Load(ctx context.Context, id int64) (chess.Board, error) {
	var layout string
	err := s.db.QueryRowContext(ctx, "SELECT layout FROM positions WHERE id = ?", id).Scan(&layout)
	if err != nil {
		return chess.Board{}, wrap(fmt.Sprintf("load position %d", id), err)
	}
	b, err := chess.ParseLayout(layout)
	if err != nil {
		return chess.Board{}, wrap(fmt.Sprintf("decode position %d", id), err)
	}
	return b, nil
}

// Children returns the edges leaving id in insertion order. Moves are
// resolved against the stored parent so en-passant captures keep their flag.
func (s *Store) Children(ctx context.Context, id int64) ([]Edge, error) {
	parent, err := s.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT child_id, move
		FROM edges
		WHERE parent_id = ?
		ORDER BY rowid
	`, id)
	if err != nil {
		return nil, wrap("query children", err)
	}
	defer rows.Close()

	var edges []Edge
	for rows.Next() {
		var child int64
		var text string
		if err := rows.Scan(&child, &text); err != nil {
			return nil, wrap("scan child", err)
		}
		m, err := chess.ParseMove(text)
		if err != nil {
			return nil, wrap("decode move", err)
		}
		resolved, ok := parent.FindMove(m.From, m.To)
		if !ok {
			return nil, wrap(fmt.Sprintf("position %d", id), fmt.Errorf("stored move %s: %w", text, errors.ErrIllegalMove))
		}
		edges = append(edges, Edge{Child: child, Move: resolved})
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("iterate children", err)
	}
	return edges, nil
}

// Count returns the number of stored positions.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM positions").Scan(&n); err != nil {
		return 0, wrap("count positions", err)
	}
	return n, nil
}

// Size returns the database size in bytes, excluding the WAL.
func (s *Store) Size(ctx context.Context) (int64, error) {
	var size int64
	err := s.db.QueryRowContext(ctx,
		"SELECT page_count * page_size FROM pragma_page_count, pragma_page_size").Scan(&size)
	if err != nil {
		return 0, wrap("database size", err)
	}
	return size, nil
}
