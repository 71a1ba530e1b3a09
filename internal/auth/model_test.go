package auth

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/go-cmp/cmp"
	_ "github.com/mattn/go-sqlite3"
)

func TestUserRepoCreateGet(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	repo := &UserRepo{DB: db}
	ctx := context.Background()
	if err := repo.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	u := User{Sub: "u-1", Username: "alice", PasswordHash: "x", Email: "alice@example.com", Groups: []string{"default", "editor"}}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("user not found")
	}
	if diff := cmp.Diff(u.Groups, got.Groups); diff != "" {
		t.Errorf("groups (-want +got):\n%s", diff)
	}

	missing, err := repo.GetByUsername(ctx, "bob")
	if err != nil || missing != nil {
		t.Errorf("missing user = %v, %v", missing, err)
	}

	if err := repo.Create(ctx, u); err == nil {
		t.Error("duplicate username must fail")
	}
}
