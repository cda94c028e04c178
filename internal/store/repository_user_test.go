package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/medinventory/medinv/internal/logger"
	"github.com/medinventory/medinv/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		DB:     &DB{DB: db, dialect: "postgres", logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var userColumns = []string{"id", "username", "name", "email", "role", "created_at"}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Username: "jdoe",
		Name:     "John Doe",
		Email:    "jdoe@clinic.example",
		Role:     models.RoleCommon,
	}

	now := time.Now()
	rows := sqlmock.
		NewRows(userColumns).
		AddRow(1, user.Username, user.Name, user.Email, user.Role, now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Username, user.Name, user.Email, user.Role, "hash").
		WillReturnRows(rows)

	created, err := repo.CreateUser(ctx, user, "hash")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected ID=1, got %d", created.ID)
	}
	if created.Username != user.Username {
		t.Errorf("expected username %s, got %s", user.Username, created.Username)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, models.User{Username: "jdoe"}, "hash")
	if !errors.Is(err, ErrUsernameAlreadyExists) {
		t.Fatalf("expected ErrUsernameAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UniqueViolation_SQLite(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()
	repo.DB.dialect = "sqlite3"

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("UNIQUE constraint failed: users.username"))

	_, err := repo.CreateUser(ctx, models.User{Username: "jdoe"}, "hash")
	if !errors.Is(err, ErrUsernameAlreadyExists) {
		t.Fatalf("expected ErrUsernameAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(ctx, models.User{Username: "jdoe"}, "hash")
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows(append(append([]string{}, userColumns...), "password_hash")).
		AddRow(1, "jdoe", "John Doe", "jdoe@clinic.example", models.RoleCommon, now, "hash")

	mock.ExpectQuery("SELECT id").
		WithArgs("jdoe").
		WillReturnRows(rows)

	found, passwordHash, err := repo.FindUserByUsername(ctx, "jdoe")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Username != "jdoe" {
		t.Errorf("expected username jdoe, got %s", found.Username)
	}
	if passwordHash != "hash" {
		t.Errorf("expected password hash to round-trip, got %q", passwordHash)
	}
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, _, err := repo.FindUserByUsername(ctx, "ghost")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestGetUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows(userColumns).
		AddRow(7, "jdoe", "John Doe", "jdoe@clinic.example", models.RoleTechnician, now)

	mock.ExpectQuery("SELECT id").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	found, err := repo.GetUser(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != 7 {
		t.Errorf("expected ID=7, got %d", found.ID)
	}
	if found.Role != models.RoleTechnician {
		t.Errorf("expected role %s, got %s", models.RoleTechnician, found.Role)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetUser(ctx, 404)
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestListUsers_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows(userColumns).
		AddRow(1, "asmith", "Alice Smith", "asmith@clinic.example", models.RoleAdministrator, now).
		AddRow(2, "jdoe", "John Doe", "jdoe@clinic.example", models.RoleCommon, now)

	mock.ExpectQuery("SELECT id").
		WillReturnRows(rows)

	users, err := repo.ListUsers(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].Username != "asmith" {
		t.Errorf("expected first user asmith, got %s", users[0].Username)
	}
}

func TestUpdateUser_PatchesOnlyGivenFields(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	newName := "John Q. Doe"

	rows := sqlmock.
		NewRows(userColumns).
		AddRow(1, "jdoe", newName, "jdoe@clinic.example", models.RoleCommon, now)

	mock.ExpectQuery("UPDATE users SET name").
		WithArgs(newName, int64(1)).
		WillReturnRows(rows)

	updated, err := repo.UpdateUser(ctx, 1, models.UserPatch{Name: &newName}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != newName {
		t.Errorf("expected name %q, got %q", newName, updated.Name)
	}
}

func TestUpdateUser_EmptyPatchReturnsCurrentRecord(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows(userColumns).
		AddRow(1, "jdoe", "John Doe", "jdoe@clinic.example", models.RoleCommon, now)

	mock.ExpectQuery("SELECT id").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	updated, err := repo.UpdateUser(ctx, 1, models.UserPatch{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Username != "jdoe" {
		t.Errorf("expected canonical record back, got %+v", updated)
	}
}

func TestUpdateUser_UsernameTaken(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	taken := "asmith"

	mock.ExpectQuery("UPDATE users SET username").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.UpdateUser(ctx, 1, models.UserPatch{Username: &taken}, nil)
	if !errors.Is(err, ErrUsernameAlreadyExists) {
		t.Fatalf("expected ErrUsernameAlreadyExists, got %v", err)
	}
}

func TestDeleteUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM users").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteUser(ctx, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteUser_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM users").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteUser(ctx, 404)
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}
