package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/javiermolinar/todayaim/internal/aim"
)

func newTestRepo(t *testing.T) *SQLite {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	repo, err := New(path)
	if err != nil {
		t.Fatalf("failed to create test repo: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

// repositories returns every implementation under test.
func repositories(t *testing.T) map[string]aim.Repository {
	t.Helper()
	return map[string]aim.Repository{
		"sqlite": newTestRepo(t),
		"memory": NewMemory(),
	}
}

func createAim(t *testing.T, repo aim.Repository, description string, offset int) *aim.Aim {
	t.Helper()
	a, err := aim.New(description, offset)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.CreateAim(context.Background(), a); err != nil {
		t.Fatalf("CreateAim failed: %v", err)
	}
	return a
}

func TestCreateAndGetAim(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			created := time.Date(2025, 1, 9, 10, 30, 0, 0, time.UTC)
			a := &aim.Aim{Description: "Read a chapter", OffsetFromToday: -2, CreatedAt: created}

			if err := repo.CreateAim(ctx, a); err != nil {
				t.Fatalf("CreateAim failed: %v", err)
			}
			if a.ID == 0 {
				t.Fatal("expected ID to be set after insert")
			}

			got, err := repo.GetAim(ctx, a.ID)
			if err != nil {
				t.Fatalf("GetAim failed: %v", err)
			}
			if got == nil {
				t.Fatal("expected aim, got nil")
			}
			if got.Description != "Read a chapter" || got.OffsetFromToday != -2 {
				t.Errorf("unexpected aim %+v", got)
			}
			if got.Accomplished || got.Favorited {
				t.Errorf("expected flags cleared, got %+v", got)
			}
			if !got.CreatedAt.Equal(created) {
				t.Errorf("expected created at %v, got %v", created, got.CreatedAt)
			}
		})
	}
}

func TestGetAim_NotFound(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			got, err := repo.GetAim(context.Background(), 999)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != nil {
				t.Errorf("expected nil, got %+v", got)
			}
		})
	}
}

func TestListAims_CreationOrder(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			empty, err := repo.ListAims(ctx)
			if err != nil {
				t.Fatalf("ListAims failed: %v", err)
			}
			if len(empty) != 0 {
				t.Fatalf("expected no aims, got %d", len(empty))
			}

			createAim(t, repo, "first", 3)
			createAim(t, repo, "second", -1)
			createAim(t, repo, "third", 0)

			aims, err := repo.ListAims(ctx)
			if err != nil {
				t.Fatalf("ListAims failed: %v", err)
			}
			if len(aims) != 3 {
				t.Fatalf("expected 3 aims, got %d", len(aims))
			}
			for i, want := range []string{"first", "second", "third"} {
				if aims[i].Description != want {
					t.Errorf("aims[%d] = %q, want %q", i, aims[i].Description, want)
				}
			}
		})
	}
}

func TestApply(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			a := createAim(t, repo, "Run 5k", 0)

			steps := []struct {
				cmd              aim.Command
				wantAccomplished bool
				wantFavorited    bool
			}{
				{aim.AccomplishCommand(a.ID, true), true, false},
				{aim.FavoriteCommand(a.ID, true), true, true},
				{aim.FavoriteCommand(a.ID, false), true, false},
				{aim.FavoriteCommand(a.ID, true), true, true},
				{aim.AccomplishCommand(a.ID, false), false, false},
			}

			for _, step := range steps {
				if err := repo.Apply(ctx, step.cmd); err != nil {
					t.Fatalf("Apply(%s) failed: %v", step.cmd, err)
				}
				got, err := repo.GetAim(ctx, a.ID)
				if err != nil {
					t.Fatalf("GetAim failed: %v", err)
				}
				if got.Accomplished != step.wantAccomplished || got.Favorited != step.wantFavorited {
					t.Errorf("after %s: accomplished=%v favorited=%v, want %v %v",
						step.cmd, got.Accomplished, got.Favorited, step.wantAccomplished, step.wantFavorited)
				}
			}
		})
	}
}

func TestApply_Delete(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			keep := createAim(t, repo, "keep", 0)
			drop := createAim(t, repo, "drop", 0)

			if err := repo.Apply(ctx, aim.DeleteCommand(drop.ID)); err != nil {
				t.Fatalf("delete failed: %v", err)
			}

			got, err := repo.GetAim(ctx, drop.ID)
			if err != nil {
				t.Fatalf("GetAim failed: %v", err)
			}
			if got != nil {
				t.Error("expected deleted aim to be gone")
			}

			aims, _ := repo.ListAims(ctx)
			if len(aims) != 1 || aims[0].ID != keep.ID {
				t.Errorf("expected only %d left, got %+v", keep.ID, aims)
			}

			err = repo.Apply(ctx, aim.DeleteCommand(drop.ID))
			if !errors.Is(err, aim.ErrAimNotFound) {
				t.Errorf("expected ErrAimNotFound on second delete, got %v", err)
			}
		})
	}
}

func TestApply_Errors(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			tests := []struct {
				name    string
				cmd     aim.Command
				wantErr error
			}{
				{"missing id", aim.Command{Op: aim.OpDelete}, aim.ErrMissingID},
				{"unknown op", aim.Command{Op: "rename", ID: 1}, aim.ErrUnknownOp},
				{"not found", aim.FavoriteCommand(42, true), aim.ErrAimNotFound},
			}
			for _, tt := range tests {
				t.Run(tt.name, func(t *testing.T) {
					if err := repo.Apply(ctx, tt.cmd); !errors.Is(err, tt.wantErr) {
						t.Errorf("expected %v, got %v", tt.wantErr, err)
					}
				})
			}
		})
	}
}

type stubResult struct {
	rows int64
	err  error
}

func (r stubResult) LastInsertId() (int64, error) { return 0, nil }
func (r stubResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestCheckAffected(t *testing.T) {
	cmd := aim.DeleteCommand(7)
	driverErr := errors.New("rows affected unsupported")

	if err := checkAffected(stubResult{rows: 1}, cmd); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := checkAffected(stubResult{}, cmd); !errors.Is(err, aim.ErrAimNotFound) {
		t.Errorf("expected ErrAimNotFound, got %v", err)
	}

	err := checkAffected(stubResult{err: driverErr}, cmd)
	if !errors.Is(err, driverErr) {
		t.Errorf("expected driver error, got %v", err)
	}
	if errors.Is(err, aim.ErrAimNotFound) {
		t.Error("driver error must not read as a missing aim")
	}
}

func TestApply_ClosedDatabase(t *testing.T) {
	repo := newTestRepo(t)
	a := createAim(t, repo, "stranded", 0)
	_ = repo.Close()

	err := repo.Apply(context.Background(), aim.DeleteCommand(a.ID))
	if err == nil {
		t.Fatal("expected an error")
	}
	if errors.Is(err, aim.ErrAimNotFound) {
		t.Errorf("closed database reported as missing aim: %v", err)
	}
}

func TestNew_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "aims.db")
	repo, err := New(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = repo.Close() }()

	createAim(t, repo, "persisted", 1)
}

func TestNew_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aims.db")

	repo, err := New(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	createAim(t, repo, "survives restart", 2)
	_ = repo.Close()

	repo, err = New(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer func() { _ = repo.Close() }()

	aims, err := repo.ListAims(context.Background())
	if err != nil {
		t.Fatalf("ListAims failed: %v", err)
	}
	if len(aims) != 1 || aims[0].Description != "survives restart" {
		t.Errorf("unexpected aims after reopen: %+v", aims)
	}
}

func TestSchemaVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aims.db")

	repo, err := New(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_ = repo.Close()

	version, dirty, err := SchemaVersion(path)
	if err != nil {
		t.Fatalf("SchemaVersion failed: %v", err)
	}
	if version != 1 || dirty {
		t.Errorf("expected clean version 1, got %d (dirty=%v)", version, dirty)
	}

	// Running migrations again is a no-op.
	if err := RunMigrations(path); err != nil {
		t.Errorf("second migration run failed: %v", err)
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"2025-01-09T10:30:00Z", false},
		{"2025-01-09T10:30:00+02:00", false},
		{"2025-01-09 10:30:00", false},
		{"yesterday", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := parseTimestamp(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseTimestamp(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
