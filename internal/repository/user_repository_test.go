package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"
)

func TestUserRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WithArgs("Sam Seller", "s@x.com", "555-0100", "1 Market St", sqlmock.AnyArg(), RoleSeller).
		WillReturnResult(sqlmock.NewResult(7, 1))

	repo := NewUserRepo(db)
	id, err := repo.Create(context.Background(), "Sam Seller", "S@X.com ", "555-0100", "1 Market St", "hunter2", RoleSeller, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id != 7 {
		t.Fatalf("expected id 7, got %d", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserRepoCreateDuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 's@x.com' for key 'users.email'"))

	repo := NewUserRepo(db)
	if _, err := repo.Create(context.Background(), "Sam", "s@x.com", "", "", "pw", RoleSeller, bcrypt.MinCost); err != ErrEmailExists {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestUserRepoGetByEmailNormalizes(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "email", "phone", "address", "password_hash", "role", "created_at"}).
		AddRow(3, "Cleo Customer", "c@x.com", "555-0101", "2 Cart Ln", "$2a$04$hash", RoleCustomer, time.Now())
	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("c@x.com").
		WillReturnRows(rows)

	repo := NewUserRepo(db)
	u, err := repo.GetByEmail(context.Background(), "  C@X.COM ")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if u.Email != "c@x.com" || u.Role != RoleCustomer {
		t.Fatalf("unexpected user: %+v", u)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
