package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/iliyamo/online-market/internal/utils"
)

// User mirrors the 'users' table. Accounts are immutable after signup:
// there is no update or delete path in this core.
type User struct {
	ID           uint64
	Name         string
	Email        string
	Phone        string
	Address      string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create inserts an account and returns its ID. The plaintext password is
// hashed here so that it never travels past the repository boundary.
// Email uniqueness is enforced by the unique key on users.email; the
// MySQL duplicate-key error (1062) is mapped to ErrEmailExists.
func (r *UserRepo) Create(ctx context.Context, name, email, phone, address, password, role string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (name, email, phone, address, password_hash, role) VALUES (?,?,?,?,?,?)",
		name, email, phone, address, hash, role)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches an account by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,email,phone,address,password_hash,role,created_at FROM users WHERE email=? LIMIT 1",
		email).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Address, &u.PasswordHash, &u.Role, &u.CreatedAt)
	return u, err
}
