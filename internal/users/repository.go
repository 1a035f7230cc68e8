package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/odyssey-erp/inventory-api/internal/platform/db"
	"github.com/odyssey-erp/inventory-api/internal/shared"
)

const entity = "user"

type Repository interface {
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, id int64) (User, error)
	// Create fails with a *shared.ValidationError when the role does not exist.
	Create(ctx context.Context, user User) (User, error)
	Update(ctx context.Context, id int64, user User) error
	Delete(ctx context.Context, id int64) error
}

// Conn is satisfied by *pgxpool.Pool.
type Conn interface {
	db.DBTX
	db.TxBeginner
}

type repository struct {
	conn Conn
}

func NewRepository(conn Conn) Repository {
	return &repository{conn: conn}
}

const selectUsers = `SELECT id, first_name, last_name, email, password_hash, role_id FROM users`

func scanUser(row pgx.Row) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.RoleID)
	return u, err
}

func (r *repository) List(ctx context.Context) ([]User, error) {
	rows, err := r.conn.Query(ctx, selectUsers+` ORDER BY id`)
	if err != nil {
		return nil, db.Wrap("list", entity, 0, err)
	}
	defer rows.Close()

	users := make([]User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, db.Wrap("list", entity, 0, err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Wrap("list", entity, 0, err)
	}
	return users, nil
}

func (r *repository) Get(ctx context.Context, id int64) (User, error) {
	u, err := scanUser(r.conn.QueryRow(ctx, selectUsers+` WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, shared.ErrNotFound
	}
	if err != nil {
		return User{}, db.Wrap("get", entity, id, err)
	}
	return u, nil
}

func (r *repository) Create(ctx context.Context, user User) (User, error) {
	err := db.WithTx(ctx, r.conn, func(tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM roles WHERE id = $1)`, user.RoleID).Scan(&exists); err != nil {
			return db.Wrap("create", entity, user.ID, err)
		}
		if !exists {
			return shared.NewValidationError("role_id", fmt.Sprintf("role %d does not exist", user.RoleID))
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO users (id, first_name, last_name, email, password_hash, role_id) VALUES ($1, $2, $3, $4, $5, $6)`,
			user.ID, user.FirstName, user.LastName, user.Email, user.PasswordHash, user.RoleID,
		)
		if err != nil {
			return db.Wrap("create", entity, user.ID, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, shared.ErrValidation) || shared.IsStorage(err) {
			return User{}, err
		}
		return User{}, db.Wrap("create", entity, user.ID, err)
	}
	return user, nil
}

func (r *repository) Update(ctx context.Context, id int64, user User) error {
	tag, err := r.conn.Exec(ctx,
		`UPDATE users SET first_name = $1, last_name = $2, email = $3, password_hash = $4, role_id = $5 WHERE id = $6`,
		user.FirstName, user.LastName, user.Email, user.PasswordHash, user.RoleID, id,
	)
	if err != nil {
		return db.Wrap("update", entity, id, err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.conn.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return db.Wrap("delete", entity, id, err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}
