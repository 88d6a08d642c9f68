package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgconn"
	pgx "github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/AlibekovAA/users-api/internal/common/db"
	"github.com/AlibekovAA/users-api/internal/user/domain"
)

const (
	pgUniqueViolation   = "23505"
	pgPrimaryKeyName    = "users_pkey"
	pgEmailUniqueName   = "users_email_key"
	pgCreateUsersSchema = `CREATE TABLE IF NOT EXISTS users (
	id       TEXT PRIMARY KEY,
	name     TEXT NOT NULL,
	email    TEXT NOT NULL,
	password TEXT NOT NULL,
	CONSTRAINT users_email_key UNIQUE (email)
)`
)

type PgRepository struct {
	pool *pgxpool.Pool
}

func NewPgRepository(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{pool: pool}
}

func (r *PgRepository) Migrate(ctx context.Context) error {
	start := time.Now()
	_, err := r.pool.Exec(ctx, pgCreateUsersSchema)
	return db.HandleExecError(db.DriverPostgres, err, "migrate users", table, start)
}

func (r *PgRepository) List(ctx context.Context) ([]domain.User, error) {
	start := time.Now()
	rows, err := r.pool.Query(ctx, `SELECT id, name, email, password FROM users ORDER BY id`)
	if err != nil {
		return nil, db.HandleQueryError(db.DriverPostgres, err, ErrUserNotFound, "list users", table, start)
	}
	defer rows.Close()

	users, err := scanPgUsers(rows)
	return users, db.HandleQueryError(db.DriverPostgres, err, ErrUserNotFound, "list users", table, start)
}

func (r *PgRepository) SearchByName(ctx context.Context, term string) ([]domain.User, error) {
	start := time.Now()
	rows, err := r.pool.Query(
		ctx,
		`SELECT id, name, email, password
		 FROM users
		 WHERE name ILIKE $1 ESCAPE '\'
		 ORDER BY id`,
		containsPattern(term),
	)
	if err != nil {
		return nil, db.HandleQueryError(db.DriverPostgres, err, ErrUserNotFound, "search users", table, start)
	}
	defer rows.Close()

	users, err := scanPgUsers(rows)
	return users, db.HandleQueryError(db.DriverPostgres, err, ErrUserNotFound, "search users", table, start)
}

func (r *PgRepository) FindByID(ctx context.Context, id domain.ID) (domain.User, error) {
	start := time.Now()
	row := r.pool.QueryRow(ctx, `SELECT id, name, email, password FROM users WHERE id = $1`, string(id))

	var user domain.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Password)
	if err = db.HandleQueryError(db.DriverPostgres, err, ErrUserNotFound, "find user by id", table, start); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (r *PgRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	start := time.Now()
	row := r.pool.QueryRow(ctx, `SELECT id, name, email, password FROM users WHERE email = $1`, email)

	var user domain.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Password)
	if err = db.HandleQueryError(db.DriverPostgres, err, ErrUserNotFound, "find user by email", table, start); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (r *PgRepository) Create(ctx context.Context, user domain.User) error {
	start := time.Now()
	_, err := r.pool.Exec(
		ctx,
		`INSERT INTO users (id, name, email, password) VALUES ($1, $2, $3, $4)`,
		string(user.ID),
		user.Name,
		user.Email,
		user.Password,
	)
	if conflict := pgConflict(err); conflict != nil {
		db.MeasureQueryDuration(db.DriverPostgres, "create user", table, start)
		return conflict
	}
	return db.HandleExecError(db.DriverPostgres, err, "create user", table, start)
}

func (r *PgRepository) Delete(ctx context.Context, id domain.ID) error {
	start := time.Now()
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, string(id))
	if err = db.HandleExecError(db.DriverPostgres, err, "delete user", table, start); err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func scanPgUsers(rows pgx.Rows) ([]domain.User, error) {
	users := make([]domain.User, 0)
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Password); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

func pgConflict(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return nil
	}
	switch pgErr.ConstraintName {
	case pgPrimaryKeyName:
		return ErrIDAlreadyExists
	case pgEmailUniqueName:
		return ErrEmailAlreadyExists
	}
	return nil
}
