package history

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/matzehuels/giftcircle/pkg/circle"
	gcerrors "github.com/matzehuels/giftcircle/pkg/errors"
	"github.com/matzehuels/giftcircle/pkg/observability"
)

//go:embed schema.sql
var schemaFS embed.FS

// DefaultLimit is the number of draws [Store.List] returns when no limit is given.
const DefaultLimit = 20

// ErrNotFound is returned when a draw id is unknown.
var ErrNotFound = errors.New("draw not found")

// Draw is a recorded gift circle.
type Draw struct {
	ID        string    `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	Label     string    `db:"label" json:"label,omitempty"`
	UseGroups bool      `db:"use_groups" json:"use_groups"`
	Attempts  int       `db:"attempts" json:"attempts"`
	Seed      uint64    `db:"-" json:"seed"`
	Size      int       `db:"participants" json:"participants"`

	// Circle is only populated by [Store.Get].
	Circle []circle.Participant `db:"-" json:"circle,omitempty"`

	SeedText string `db:"seed" json:"-"`
}

// Result returns the draw as a [circle.Result].
func (d *Draw) Result() *circle.Result {
	return &circle.Result{
		Circle:    d.Circle,
		Attempts:  d.Attempts,
		UseGroups: d.UseGroups,
		Seed:      d.Seed,
	}
}

type assignment struct {
	DrawID    string        `db:"draw_id"`
	Position  int           `db:"position"`
	Name      string        `db:"name"`
	Email     string        `db:"email"`
	Group     sql.NullInt64 `db:"group_number"`
	Recipient string        `db:"recipient"`
}

// Store is a SQLite-backed draw history.
type Store struct {
	db  *sqlx.DB
	now func() time.Time
}

// Open opens or creates the history database at path, creating parent
// directories as needed, and applies the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create history dir: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(10000)&_pragma=foreign_keys(1)", path)
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("open history %s: %w", path, err)
	}
	_, _ = db.ExecContext(ctx, "PRAGMA journal_mode=WAL;")
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	st := &Store{db: db, now: time.Now}
	if err := st.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return st, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	ddl, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, string(ddl)); err != nil {
		return fmt.Errorf("migrate history: %w", err)
	}
	return nil
}

// Record stores res under a fresh id and returns the stored draw.
func (s *Store) Record(ctx context.Context, label string, res *circle.Result) (d *Draw, err error) {
	start := time.Now()
	defer func() { observability.Store().OnQuery(ctx, "record", time.Since(start), err) }()

	d = &Draw{
		ID:        uuid.NewString(),
		CreatedAt: s.now().UTC(),
		Label:     label,
		UseGroups: res.UseGroups,
		Attempts:  res.Attempts,
		Seed:      res.Seed,
		SeedText:  strconv.FormatUint(res.Seed, 10),
		Size:      len(res.Circle),
		Circle:    res.Circle,
	}

	err = s.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.NamedExecContext(ctx,
			`INSERT INTO draws (id, created_at, label, use_groups, attempts, seed, participants)
			 VALUES (:id, :created_at, :label, :use_groups, :attempts, :seed, :participants)`, d); err != nil {
			return fmt.Errorf("insert draw: %w", err)
		}
		for i, p := range res.Circle {
			a := assignment{DrawID: d.ID, Position: i, Name: p.Name, Email: p.Email, Recipient: p.Recipient}
			if p.HasGroup() {
				a.Group = sql.NullInt64{Int64: int64(p.Group), Valid: true}
			}
			if _, err := tx.NamedExecContext(ctx,
				`INSERT INTO assignments (draw_id, position, name, email, group_number, recipient)
				 VALUES (:draw_id, :position, :name, :email, :group_number, :recipient)`, a); err != nil {
				return fmt.Errorf("insert assignment %s: %w", p.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

// List returns the most recent draws first, without their assignments.
// A limit of zero or less means [DefaultLimit].
func (s *Store) List(ctx context.Context, limit int) (draws []Draw, err error) {
	start := time.Now()
	defer func() { observability.Store().OnQuery(ctx, "list", time.Since(start), err) }()

	if limit <= 0 {
		limit = DefaultLimit
	}
	if err := s.db.SelectContext(ctx, &draws,
		`SELECT id, created_at, label, use_groups, attempts, seed, participants
		 FROM draws ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit); err != nil {
		return nil, fmt.Errorf("list draws: %w", err)
	}
	for i := range draws {
		if err := draws[i].parseSeed(); err != nil {
			return nil, err
		}
	}
	return draws, nil
}

// Get returns the draw with the given id including its assignments.
// Unknown ids return an error matching [ErrNotFound] and carrying the
// NOT_FOUND code.
func (s *Store) Get(ctx context.Context, id string) (d *Draw, err error) {
	start := time.Now()
	defer func() { observability.Store().OnQuery(ctx, "get", time.Since(start), err) }()

	d = &Draw{}
	err = s.db.GetContext(ctx, d,
		`SELECT id, created_at, label, use_groups, attempts, seed, participants
		 FROM draws WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, gcerrors.Wrap(gcerrors.ErrCodeNotFound, ErrNotFound, "no draw with id %q", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get draw %s: %w", id, err)
	}
	if err := d.parseSeed(); err != nil {
		return nil, err
	}

	var rows []assignment
	if err := s.db.SelectContext(ctx, &rows,
		`SELECT draw_id, position, name, email, group_number, recipient
		 FROM assignments WHERE draw_id = ? ORDER BY position`, id); err != nil {
		return nil, fmt.Errorf("get assignments %s: %w", id, err)
	}
	d.Circle = make([]circle.Participant, len(rows))
	for i, a := range rows {
		p := circle.Participant{Name: a.Name, Email: a.Email, Group: circle.NoGroup, Recipient: a.Recipient}
		if a.Group.Valid {
			p.Group = circle.GroupID(a.Group.Int64)
		}
		d.Circle[i] = p
	}
	return d, nil
}

func (d *Draw) parseSeed() error {
	seed, err := strconv.ParseUint(d.SeedText, 10, 64)
	if err != nil {
		return fmt.Errorf("draw %s: bad seed %q: %w", d.ID, d.SeedText, err)
	}
	d.Seed = seed
	return nil
}

func (s *Store) withTx(ctx context.Context, fn func(*sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
