package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/Shivansh-2508/PGT-Portal/internal/domain"
	"github.com/Shivansh-2508/PGT-Portal/internal/domain/entity"
	"github.com/Shivansh-2508/PGT-Portal/internal/domain/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestContext_CopiesOnReadAndWrite(t *testing.T) {
	c := NewContext()
	if c.Authenticated() {
		t.Fatal("new context must not be authenticated")
	}

	s := entity.Session{"_id": "u1", "userType": "staff"}
	c.Set(s)
	s["_id"] = ""

	if !c.Authenticated() {
		t.Fatal("mutating the caller's map changed the stored session")
	}

	got := c.Current()
	got["_id"] = "other"
	if c.Current().ID() != "u1" {
		t.Errorf("mutating Current() result changed the stored session")
	}

	c.Clear()
	if c.Current() != nil || c.Authenticated() {
		t.Error("Clear() left a session behind")
	}
}

func TestRepository_Load(t *testing.T) {
	tests := []struct {
		name     string
		stored   map[string]string
		wantOK   bool
		wantID   string
		wantAuth bool
	}{
		{
			name:   "nothing stored",
			stored: nil,
			wantOK: false,
		},
		{
			name:     "valid record",
			stored:   map[string]string{StorageKey: `{"_id":"u1","name":"A","userType":"student"}`},
			wantOK:   true,
			wantID:   "u1",
			wantAuth: true,
		},
		{
			name:     "record without identity marker is passed through",
			stored:   map[string]string{StorageKey: `{"name":"A","userType":"staff"}`},
			wantOK:   true,
			wantAuth: false,
		},
		{
			name:     "numeric identity marker",
			stored:   map[string]string{StorageKey: `{"_id":42,"userType":"staff"}`},
			wantOK:   true,
			wantID:   "42",
			wantAuth: true,
		},
		{
			name:   "malformed json is ignored",
			stored: map[string]string{StorageKey: `{"_id":`},
			wantOK: false,
		},
		{
			name:   "json null is ignored",
			stored: map[string]string{StorageKey: `null`},
			wantOK: false,
		},
		{
			name:   "json array is ignored",
			stored: map[string]string{StorageKey: `[1,2]`},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewRepository(mocks.NewMockKeyValueStore(tt.stored), testLogger())

			s, ok, err := repo.Load(context.Background())
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if ok != tt.wantOK {
				t.Fatalf("Load() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if s.ID() != tt.wantID {
				t.Errorf("ID() = %q, want %q", s.ID(), tt.wantID)
			}
			if s.IsAuthenticated() != tt.wantAuth {
				t.Errorf("IsAuthenticated() = %v, want %v", s.IsAuthenticated(), tt.wantAuth)
			}
		})
	}
}

func TestRepository_SaveRoundTrip(t *testing.T) {
	store := mocks.NewMockKeyValueStore(nil)
	repo := NewRepository(store, testLogger())
	ctx := context.Background()

	in := entity.NewSession(map[string]any{"_id": "u1", "name": "A"}, entity.RoleStudent)
	if err := repo.Save(ctx, in); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	out, ok, err := repo.Load(ctx)
	if err != nil || !ok {
		t.Fatalf("Load() = (%v, %v, %v)", out, ok, err)
	}
	for k, v := range in {
		if out[k] != v {
			t.Errorf("field %s = %v, want %v", k, out[k], v)
		}
	}

	if err := repo.Delete(ctx); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok, _ := repo.Load(ctx); ok {
		t.Error("session still stored after Delete()")
	}
}

func TestRepository_StorageErrors(t *testing.T) {
	boom := errors.New("disk full")
	store := &mocks.MockKeyValueStore{
		GetFunc: func(ctx context.Context, key string) (string, bool, error) { return "", false, boom },
		SetFunc: func(ctx context.Context, key, value string) error { return boom },
	}
	repo := NewRepository(store, testLogger())

	if _, _, err := repo.Load(context.Background()); !domain.IsStorage(err) {
		t.Errorf("Load() error = %v, want storage error", err)
	}
	if err := repo.Save(context.Background(), entity.Session{"_id": "u1"}); !domain.IsStorage(err) {
		t.Errorf("Save() error = %v, want storage error", err)
	}
}
