package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/AlibekovAA/users-api/internal/common/db"
	"github.com/AlibekovAA/users-api/internal/user/domain"
)

const sqliteCreateUsersSchema = `CREATE TABLE IF NOT EXISTS users (
	id       TEXT PRIMARY KEY NOT NULL,
	name     TEXT NOT NULL,
	email    TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL
)`

// foldCaseFunc lower-cases text with Unicode rules; SQLite's own LIKE and
// lower() only fold ASCII.
const foldCaseFunc = "users_fold_case"

func init() {
	sqlite.MustRegisterDeterministicScalarFunction(foldCaseFunc, 1, foldCase)
}

func foldCase(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(sqlDB *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: sqlDB}
}

func (r *SQLiteRepository) Migrate(ctx context.Context) error {
	start := time.Now()
	_, err := r.db.ExecContext(ctx, sqliteCreateUsersSchema)
	return db.HandleExecError(db.DriverSQLite, err, "migrate users", table, start)
}

func (r *SQLiteRepository) List(ctx context.Context) ([]domain.User, error) {
	return r.query(ctx, "list users", `SELECT id, name, email, password FROM users ORDER BY id`)
}

func (r *SQLiteRepository) SearchByName(ctx context.Context, term string) ([]domain.User, error) {
	return r.query(
		ctx,
		"search users",
		`SELECT id, name, email, password
		 FROM users
		 WHERE `+foldCaseFunc+`(name) LIKE ? ESCAPE '\'
		 ORDER BY id`,
		containsPattern(strings.ToLower(term)),
	)
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id domain.ID) (domain.User, error) {
	return r.queryOne(ctx, "find user by id", `SELECT id, name, email, password FROM users WHERE id = ?`, string(id))
}

func (r *SQLiteRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.queryOne(ctx, "find user by email", `SELECT id, name, email, password FROM users WHERE email = ?`, email)
}

func (r *SQLiteRepository) Create(ctx context.Context, user domain.User) error {
	start := time.Now()
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO users (id, name, email, password) VALUES (?, ?, ?, ?)`,
		string(user.ID),
		user.Name,
		user.Email,
		user.Password,
	)
	if conflict := sqliteConflict(err); conflict != nil {
		db.MeasureQueryDuration(db.DriverSQLite, "create user", table, start)
		return conflict
	}
	return db.HandleExecError(db.DriverSQLite, err, "create user", table, start)
}

func (r *SQLiteRepository) Delete(ctx context.Context, id domain.ID) error {
	start := time.Now()
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, string(id))
	if err = db.HandleExecError(db.DriverSQLite, err, "delete user", table, start); err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return db.HandleExecError(db.DriverSQLite, err, "delete user", table, start)
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *SQLiteRepository) query(ctx context.Context, operation, query string, args ...any) ([]domain.User, error) {
	start := time.Now()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, db.HandleQueryError(db.DriverSQLite, err, ErrUserNotFound, operation, table, start)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Password); err != nil {
			return nil, db.HandleQueryError(db.DriverSQLite, err, ErrUserNotFound, operation, table, start)
		}
		users = append(users, u)
	}
	if err := db.HandleQueryError(db.DriverSQLite, rows.Err(), ErrUserNotFound, operation, table, start); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *SQLiteRepository) queryOne(ctx context.Context, operation, query string, arg any) (domain.User, error) {
	start := time.Now()
	var user domain.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&user.ID, &user.Name, &user.Email, &user.Password)
	if err = db.HandleQueryError(db.DriverSQLite, err, ErrUserNotFound, operation, table, start); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func sqliteConflict(err error) error {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return nil
	}
	// Extended codes carry the constraint kind in the high bits.
	switch sqliteErr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT:
	default:
		return nil
	}
	msg := sqliteErr.Error()
	switch {
	case strings.Contains(msg, "users.id"):
		return ErrIDAlreadyExists
	case strings.Contains(msg, "users.email"):
		return ErrEmailAlreadyExists
	}
	return nil
}
