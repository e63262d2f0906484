package db

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"time"
)

// Dialect names the SQL flavor a [Queries] speaks.
type Dialect string

// Supported dialects.
const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// DBTX is satisfied by both [*sql.DB] and [*sql.Tx].
type DBTX interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

// New returns a Queries issuing statements against db in the given dialect.
func New(db DBTX, dialect Dialect) *Queries {
	return &Queries{db: db, dialect: dialect}
}

// Queries holds the application's SQL statements.
type Queries struct {
	db      DBTX
	dialect Dialect
}

// WithTx returns a copy of q that runs its statements inside tx.
func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx, dialect: q.dialect}
}

// bind rewrites ? placeholders into the dialect's form.
func (q *Queries) bind(query string) string {
	if q.dialect != DialectPostgres {
		return query
	}
	var (
		out strings.Builder
		n   int
	)
	out.Grow(len(query) + 8) //nolint:mnd // room for a few multi-digit placeholders
	for _, r := range query {
		if r != '?' {
			out.WriteRune(r)
			continue
		}
		n++
		out.WriteByte('$')
		out.WriteString(strconv.Itoa(n))
	}
	return out.String()
}

const createUser = `
INSERT INTO users (id, username, first_name, last_name, email, password_hash, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
`

// CreateUserParams are the arguments to [Queries.CreateUser].
type CreateUserParams struct {
	ID           uint64
	Username     string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}

// CreateUser inserts a new user row.
func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) error {
	_, err := q.db.ExecContext(ctx, q.bind(createUser),
		arg.ID,
		arg.Username,
		arg.FirstName,
		arg.LastName,
		arg.Email,
		arg.PasswordHash,
		arg.CreatedAt,
	)
	return err
}

const getUser = `
SELECT id, username, first_name, last_name, email, password_hash, created_at
FROM users
WHERE id = ?
`

// GetUser returns the user with the given ID.
func (q *Queries) GetUser(ctx context.Context, id uint64) (User, error) {
	row := q.db.QueryRowContext(ctx, q.bind(getUser), id)
	return scanUser(row)
}

const getUserByName = `
SELECT id, username, first_name, last_name, email, password_hash, created_at
FROM users
WHERE username = ?
`

// GetUserByName returns the user with the given username.
func (q *Queries) GetUserByName(ctx context.Context, username string) (User, error) {
	row := q.db.QueryRowContext(ctx, q.bind(getUserByName), username)
	return scanUser(row)
}

func scanUser(row *sql.Row) (User, error) {
	var i User
	err := row.Scan(
		&i.ID,
		&i.Username,
		&i.FirstName,
		&i.LastName,
		&i.Email,
		&i.PasswordHash,
		&i.CreatedAt,
	)
	return i, err
}

const deleteUser = `
DELETE FROM users
WHERE id = ?
`

// DeleteUser removes a user, returning the number of rows affected.
func (q *Queries) DeleteUser(ctx context.Context, id uint64) (int64, error) {
	result, err := q.db.ExecContext(ctx, q.bind(deleteUser), id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const createGroup = `
INSERT INTO "groups" (id, name)
VALUES (?, ?)
`

// CreateGroup inserts a new group row.
func (q *Queries) CreateGroup(ctx context.Context, arg Group) error {
	_, err := q.db.ExecContext(ctx, q.bind(createGroup), arg.ID, arg.Name)
	return err
}

const listGroups = `
SELECT id, name
FROM "groups"
ORDER BY name
`

// ListGroups returns every group ordered by name.
func (q *Queries) ListGroups(ctx context.Context) ([]Group, error) {
	rows, err := q.db.QueryContext(ctx, q.bind(listGroups))
	if err != nil {
		return nil, err
	}
	return scanGroups(rows)
}

const addUserToGroup = `
INSERT INTO user_group_association (user_id, group_id)
VALUES (?, ?)
`

// AddUserToGroup records a user's membership in a group.
func (q *Queries) AddUserToGroup(ctx context.Context, arg UserGroupAssociation) error {
	_, err := q.db.ExecContext(ctx, q.bind(addUserToGroup), arg.UserID, arg.GroupID)
	return err
}

const listUserGroups = `
SELECT g.id, g.name
FROM "groups" g
         JOIN user_group_association uga ON uga.group_id = g.id
WHERE uga.user_id = ?
ORDER BY g.name
`

// ListUserGroups returns the groups a user belongs to, ordered by name.
func (q *Queries) ListUserGroups(ctx context.Context, userID uint64) ([]Group, error) {
	rows, err := q.db.QueryContext(ctx, q.bind(listUserGroups), userID)
	if err != nil {
		return nil, err
	}
	return scanGroups(rows)
}

func scanGroups(rows *sql.Rows) ([]Group, error) {
	defer func() { _ = rows.Close() }()
	var items []Group
	for rows.Next() {
		var i Group
		if err := rows.Scan(&i.ID, &i.Name); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createPost = `
INSERT INTO posts (id, author_id, title, body, created_at)
VALUES (?, ?, ?, ?, ?)
`

// CreatePost inserts a new post row.
func (q *Queries) CreatePost(ctx context.Context, arg Post) error {
	_, err := q.db.ExecContext(ctx, q.bind(createPost),
		arg.ID,
		arg.AuthorID,
		arg.Title,
		arg.Body,
		arg.CreatedAt,
	)
	return err
}

const getPost = `
SELECT p.id, p.author_id, p.title, p.body, p.created_at, u.username
FROM posts p
         JOIN users u ON u.id = p.author_id
WHERE p.id = ?
`

// GetPost returns a post with its author's username.
func (q *Queries) GetPost(ctx context.Context, id uint64) (PostView, error) {
	var i PostView
	err := q.db.QueryRowContext(ctx, q.bind(getPost), id).Scan(
		&i.ID,
		&i.AuthorID,
		&i.Title,
		&i.Body,
		&i.CreatedAt,
		&i.AuthorName,
	)
	return i, err
}

const listPosts = `
SELECT p.id, p.author_id, p.title, p.body, p.created_at, u.username
FROM posts p
         JOIN users u ON u.id = p.author_id
WHERE p.id < ?
ORDER BY p.id DESC
LIMIT ?
`

// ListPostsParams are the arguments to [Queries.ListPosts].
type ListPostsParams struct {
	Before uint64
	Limit  int64
}

// ListPosts returns up to Limit posts with IDs below Before, newest first.
func (q *Queries) ListPosts(ctx context.Context, arg ListPostsParams) ([]PostView, error) {
	rows, err := q.db.QueryContext(ctx, q.bind(listPosts), arg.Before, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var items []PostView
	for rows.Next() {
		var i PostView
		if err := rows.Scan(
			&i.ID,
			&i.AuthorID,
			&i.Title,
			&i.Body,
			&i.CreatedAt,
			&i.AuthorName,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
