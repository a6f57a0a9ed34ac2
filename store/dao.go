package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dekarrin/rezi"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/nkall/canonlr/internal/automaton"
)

// graphDTO is the flattened, rezi-serializable form of an *automaton.Graph.
// automaton.State carries pointer identity that rezi cannot encode directly,
// so paths are stored as indices into a reconstructed state slice.
type graphDTO struct {
	NumStates int
	PathFrom  []int
	PathTo    []int
	PathLabel []string
	Start     int
	Accept    int
}

func encodeGraph(g *automaton.Graph) []byte {
	states := g.States()
	index := make(map[*automaton.State]int, len(states))
	for i, s := range states {
		index[s] = i
	}

	dto := graphDTO{NumStates: len(states)}
	for _, p := range g.Paths() {
		dto.PathFrom = append(dto.PathFrom, index[p.Begin])
		dto.PathTo = append(dto.PathTo, index[p.End])
		dto.PathLabel = append(dto.PathLabel, p.Label)
	}
	dto.Start = index[g.Start]
	dto.Accept = index[g.Accept]

	return rezi.EncBinary(dto)
}

func decodeGraph(data []byte) (*automaton.Graph, error) {
	var dto graphDTO
	n, err := rezi.DecBinary(data, &dto)
	if err != nil {
		return nil, fmt.Errorf("decode automaton: %w", err)
	}
	if n != len(data) {
		return nil, fmt.Errorf("decode automaton: consumed %d of %d bytes", n, len(data))
	}

	g := automaton.NewGraph()
	states := make([]*automaton.State, dto.NumStates)
	for i := range states {
		states[i] = g.NewState()
	}
	for i := range dto.PathFrom {
		g.AddPath(states[dto.PathFrom[i]], states[dto.PathTo[i]], dto.PathLabel[i])
	}
	g.Start = states[dto.Start]
	g.Accept = states[dto.Accept]

	return g, nil
}

// DB is a sqlite-backed store of compiled automata, keyed by uuid.
type DB struct {
	conn *sql.DB
}

// Open opens (and, if needed, initializes the schema of) a sqlite database
// at file. Passing ":memory:" gives an ephemeral in-process database.
func Open(file string) (*DB, error) {
	conn, err := sql.Open("sqlite", file)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

func (db *DB) init() error {
	_, err := db.conn.Exec(`CREATE TABLE IF NOT EXISTS automata (
		id      TEXT NOT NULL PRIMARY KEY,
		pattern TEXT NOT NULL,
		graph   BLOB NOT NULL
	);`)
	return err
}

// Create compiles-result g under pattern, assigns it a fresh uuid, and
// persists it.
func (db *DB) Create(ctx context.Context, pattern string, g *automaton.Graph) (uuid.UUID, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("generate id: %w", err)
	}

	_, err = db.conn.ExecContext(ctx,
		`INSERT INTO automata (id, pattern, graph) VALUES (?, ?, ?)`,
		id.String(), pattern, encodeGraph(g))
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("insert automaton: %w", err)
	}

	return id, nil
}

// Get loads the automaton stored under id.
func (db *DB) Get(ctx context.Context, id uuid.UUID) (*automaton.Graph, error) {
	row := db.conn.QueryRowContext(ctx, `SELECT graph FROM automata WHERE id = ?`, id.String())

	var data []byte
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return decodeGraph(data)
}

// Delete removes the automaton stored under id. It returns ErrNotFound if no
// such automaton exists.
func (db *DB) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := db.conn.ExecContext(ctx, `DELETE FROM automata WHERE id = ?`, id.String())
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n < 1 {
		return ErrNotFound
	}
	return nil
}

// Close closes the underlying database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}
