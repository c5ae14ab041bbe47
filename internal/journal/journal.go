// This package keeps a sqlite ledger of emission runs: one row per
// run, one row per attempted commit. The journal exists for auditing
// what a run actually did, so every operation is best-effort from the
// driver's point of view and never blocks emission.
package journal

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

//go:embed schema.sql
var schema string

type Journal struct {
	Db *sql.DB
}

// Run is one invocation of the emitter.
type Run struct {
	Id        int64
	Uuid      uuid.UUID
	Text      string
	Year      int
	StartedAt time.Time
}

func Open(path string) (*Journal, error) {
	db, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("Couldn't open journal database:\n%w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("Couldn't initialise journal database:\n%w", err)
	}
	return &Journal{Db: db}, nil
}

func (j *Journal) Close() error {
	return j.Db.Close()
}

func (j *Journal) Transact(f func(*sql.Tx) error) error {
	tx, err := j.Db.Begin()
	if err != nil {
		return err
	}

	err = f(tx)
	if err != nil {
		err2 := tx.Rollback()
		if err2 != nil {
			return fmt.Errorf("Failed to roll back transaction: %w\n\nAfter handling: %v", err2, err)
		}
		return err
	} else {
		err2 := tx.Commit()
		if err2 != nil {
			return fmt.Errorf("Failed to commit transaction:\n%w", err2)
		}
		return nil
	}
}

// BeginRun inserts a run row and returns it with its generated id and
// a fresh uuid.
func (j *Journal) BeginRun(text string, year int) (*Run, error) {
	r := &Run{
		Uuid:      uuid.New(),
		Text:      text,
		Year:      year,
		StartedAt: time.Now().UTC(),
	}

	res, err := j.Db.Exec(`
	  INSERT INTO emission_run (uuid, text, year, started_at)
	  VALUES (?, ?, ?, ?)`,
		r.Uuid.String(), r.Text, r.Year, r.StartedAt.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("Couldn't insert run:\n%w", err)
	}
	if r.Id, err = res.LastInsertId(); err != nil {
		return nil, fmt.Errorf("Couldn't read run id:\n%w", err)
	}

	return r, nil
}

// RecordOutcome appends one attempted commit to the run's ledger.
func (j *Journal) RecordOutcome(run *Run, timestamp string, succeeded bool) error {
	_, err := j.Db.Exec(`
	  INSERT INTO emission_record (run_id, commit_date, succeeded)
	  VALUES (?, ?, ?)`,
		run.Id, timestamp, succeeded)
	if err != nil {
		return fmt.Errorf("Couldn't insert record:\n%w", err)
	}
	return nil
}

// Summary tallies the recorded outcomes of one run.
func (j *Journal) Summary(run *Run) (succeeded int, failed int, err error) {
	rows, err := j.Db.Query(`
	  SELECT succeeded, COUNT(*)
	  FROM emission_record
	  WHERE run_id = ?
	  GROUP BY succeeded`, run.Id)
	if err != nil {
		return 0, 0, fmt.Errorf("Query execution failed:\n%w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ok bool
		var count int
		if err := rows.Scan(&ok, &count); err != nil {
			return 0, 0, fmt.Errorf("Row scanning failed:\n%w", err)
		}
		if ok {
			succeeded = count
		} else {
			failed = count
		}
	}
	if err := rows.Err(); err != nil {
		return 0, 0, fmt.Errorf("Error iterating rows:\n%w", err)
	}

	return succeeded, failed, nil
}

// Get looks up a run by uuid, or nil if none exists.
func (j *Journal) Get(u uuid.UUID) (*Run, error) {
	row := j.Db.QueryRow(`
	  SELECT id, text, year, started_at
	  FROM emission_run
	  WHERE uuid = ?`, u.String())

	r := Run{Uuid: u}
	var startedAt string
	if err := row.Scan(&r.Id, &r.Text, &r.Year, &startedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		} else {
			return nil, fmt.Errorf("Failed to read run:\n%w", err)
		}
	}

	var err error
	if r.StartedAt, err = time.Parse(time.RFC3339, startedAt); err != nil {
		return nil, fmt.Errorf("Failed to parse run timestamp:\n%w", err)
	}

	return &r, nil
}

// List returns every recorded run, oldest first.
func (j *Journal) List() ([]Run, error) {
	rows, err := j.Db.Query(`
	  SELECT id, uuid, text, year, started_at
	  FROM emission_run
	  ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("Query execution failed:\n%w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		r := Run{}
		var uuidString, startedAt string
		if err := rows.Scan(&r.Id, &uuidString, &r.Text, &r.Year, &startedAt); err != nil {
			return nil, fmt.Errorf("Row scanning failed:\n%w", err)
		}
		r.Uuid = uuid.MustParse(uuidString)
		if r.StartedAt, err = time.Parse(time.RFC3339, startedAt); err != nil {
			return nil, fmt.Errorf("Failed to parse run timestamp:\n%w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Error iterating rows:\n%w", err)
	}

	return runs, nil
}
