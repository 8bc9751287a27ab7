package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/huangsam/rolodex/internal/contract"
	"github.com/huangsam/rolodex/schema"
	_ "modernc.org/sqlite" // SQLite driver
)

// ContactsSQLite implements [contract.ContactStore] on a private in-memory SQLite database.
// The database lives only as long as the store; nothing is written to disk.
type ContactsSQLite struct {
	db *sql.DB
}

var _ contract.ContactStore = (*ContactsSQLite)(nil)

// NewContactsSQLite opens a fresh in-memory database and applies the schema migrations.
func NewContactsSQLite(ctx context.Context) (*ContactsSQLite, error) {
	dsn := fmt.Sprintf("file:rolodex-%s?mode=memory&cache=shared", uuid.NewString())
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory SQLite database: %w", err)
	}
	// A single long-lived connection keeps the in-memory database alive and
	// avoids "database is locked" errors.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}
	if err := migrateContacts(db, -1); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &ContactsSQLite{db: db}, nil
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *ContactsSQLite) Find(ctx context.Context, name string) (*schema.Contact, error) {
	id, c, err := findContact(ctx, s.db, name)
	if err != nil {
		return nil, err
	}
	if c.Phones, err = loadPhones(ctx, s.db, id); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ContactsSQLite) All(ctx context.Context) ([]schema.Contact, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, birthday FROM contacts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var contacts []schema.Contact
	positions := make(map[int64]int)
	for rows.Next() {
		var id int64
		var name string
		var birthday sql.NullString
		if err := rows.Scan(&id, &name, &birthday); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		c := schema.Contact{Name: name}
		if c.Birthday, err = decodeBirthday(birthday); err != nil {
			return nil, err
		}
		positions[id] = len(contacts)
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contacts: %w", err)
	}
	_ = rows.Close()

	phoneRows, err := s.db.QueryContext(ctx, `SELECT contact_id, phone FROM contact_phones ORDER BY contact_id, position`)
	if err != nil {
		return nil, fmt.Errorf("failed to list phones: %w", err)
	}
	defer func() { _ = phoneRows.Close() }()
	for phoneRows.Next() {
		var id int64
		var phone string
		if err := phoneRows.Scan(&id, &phone); err != nil {
			return nil, fmt.Errorf("failed to scan phone: %w", err)
		}
		if i, ok := positions[id]; ok {
			contacts[i].Phones = append(contacts[i].Phones, phone)
		}
	}
	if err := phoneRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate phones: %w", err)
	}
	if contacts == nil {
		contacts = []schema.Contact{}
	}
	return contacts, nil
}

func (s *ContactsSQLite) Upsert(ctx context.Context, name string, phones []string, birthday *time.Time) (bool, error) {
	created := false
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		id, _, err := findContact(ctx, tx, name)
		var existing []string
		switch {
		case err == nil:
			if existing, err = loadPhones(ctx, tx, id); err != nil {
				return err
			}
		case errors.Is(err, contract.ErrNotFound):
			created = true
		default:
			return err
		}
		if err := checkPhones(name, existing, phones); err != nil {
			return err
		}

		if created {
			res, err := tx.ExecContext(ctx, `INSERT INTO contacts (name) VALUES (?)`, name)
			if err != nil {
				return fmt.Errorf("failed to insert contact: %w", err)
			}
			if id, err = res.LastInsertId(); err != nil {
				return fmt.Errorf("failed to read contact id: %w", err)
			}
		}
		if birthday != nil {
			if _, err := tx.ExecContext(ctx, `UPDATE contacts SET birthday = ? WHERE id = ?`,
				schema.CivilDate(*birthday).Format(time.DateOnly), id); err != nil {
				return fmt.Errorf("failed to set birthday: %w", err)
			}
		}
		next, err := nextPosition(ctx, tx, id)
		if err != nil {
			return err
		}
		for i, p := range phones {
			if _, err := tx.ExecContext(ctx, `INSERT INTO contact_phones (contact_id, position, phone) VALUES (?, ?, ?)`,
				id, next+i, p); err != nil {
				return fmt.Errorf("failed to insert phone: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

func (s *ContactsSQLite) ReplacePhone(ctx context.Context, name, oldPhone, newPhone string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		id, _, err := findContact(ctx, tx, name)
		if err != nil {
			return err
		}
		var position int
		err = tx.QueryRowContext(ctx,
			`SELECT position FROM contact_phones WHERE contact_id = ? AND phone = ? ORDER BY position LIMIT 1`,
			id, oldPhone).Scan(&position)
		if errors.Is(err, sql.ErrNoRows) {
			return &contract.NotFoundError{Name: name, Phone: oldPhone}
		}
		if err != nil {
			return fmt.Errorf("failed to look up phone: %w", err)
		}
		var count int
		if err := tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM contact_phones WHERE contact_id = ? AND phone = ?`, id, newPhone).Scan(&count); err != nil {
			return fmt.Errorf("failed to check phone: %w", err)
		}
		if count > 0 {
			return &contract.DuplicateError{Name: name, Phone: newPhone}
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE contact_phones SET phone = ? WHERE contact_id = ? AND position = ?`, newPhone, id, position); err != nil {
			return fmt.Errorf("failed to replace phone: %w", err)
		}
		return nil
	})
}

func (s *ContactsSQLite) RemovePhone(ctx context.Context, name, phone string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		id, _, err := findContact(ctx, tx, name)
		if err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM contact_phones WHERE contact_id = ? AND phone = ?`, id, phone)
		if err != nil {
			return fmt.Errorf("failed to remove phone: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return &contract.NotFoundError{Name: name, Phone: phone}
		}
		return nil
	})
}

func (s *ContactsSQLite) Delete(ctx context.Context, name string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		id, _, err := findContact(ctx, tx, name)
		if errors.Is(err, contract.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM contact_phones WHERE contact_id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete phones: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM contacts WHERE id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete contact: %w", err)
		}
		return nil
	})
}

// Close drops the in-memory database.
func (s *ContactsSQLite) Close() error {
	return s.db.Close()
}

// withTx runs fn inside a transaction, rolling back on error.
func (s *ContactsSQLite) withTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func findContact(ctx context.Context, q queryer, name string) (int64, *schema.Contact, error) {
	var id int64
	var birthday sql.NullString
	err := q.QueryRowContext(ctx, `SELECT id, birthday FROM contacts WHERE name = ?`, name).Scan(&id, &birthday)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil, &contract.NotFoundError{Name: name}
	}
	if err != nil {
		return 0, nil, fmt.Errorf("failed to look up contact: %w", err)
	}
	c := &schema.Contact{Name: name}
	if c.Birthday, err = decodeBirthday(birthday); err != nil {
		return 0, nil, err
	}
	return id, c, nil
}

func loadPhones(ctx context.Context, q queryer, id int64) ([]string, error) {
	rows, err := q.QueryContext(ctx, `SELECT phone FROM contact_phones WHERE contact_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load phones: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var phones []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("failed to scan phone: %w", err)
		}
		phones = append(phones, p)
	}
	return phones, rows.Err()
}

func nextPosition(ctx context.Context, q queryer, id int64) (int, error) {
	var next int
	err := q.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(position) + 1, 0) FROM contact_phones WHERE contact_id = ?`, id).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("failed to compute phone position: %w", err)
	}
	return next, nil
}

func decodeBirthday(v sql.NullString) (*time.Time, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, v.String)
	if err != nil {
		return nil, fmt.Errorf("corrupt birthday %q: %w", v.String, err)
	}
	return &t, nil
}
