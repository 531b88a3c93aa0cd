package leaderboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"
)

var fixedDay = time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedDay }

// failingKV returns the configured errors.
type failingKV struct {
	getErr error
	setErr error
	value  string
	has    bool
}

func (f *failingKV) Get(string) (string, bool, error) { return f.value, f.has, f.getErr }
func (f *failingKV) Set(string, string) error { return f.setErr }

func TestOpenEmpty(t *testing.T) {
	b := Open(NewMemoryKV())

	if got := b.Entries(); len(got) != 0 {
		t.Errorf("expected empty board, got %v", got)
	}
	if b.Limit() != DefaultLimit {
		t.Errorf("Limit = %d, expected %d", b.Limit(), DefaultLimit)
	}
}

func TestOpenRecoversFromBadData(t *testing.T) {
	tests := []struct {
		name string
		kv   KV
	}{
		{"corrupt json", func() KV {
			kv := NewMemoryKV()
			_ = kv.Set(DefaultKey, "{not json")
			return kv
		}()},
		{"wrong shape", func() KV {
			kv := NewMemoryKV()
			_ = kv.Set(DefaultKey, `{"name":"solo"}`)
			return kv
		}()},
		{"read error", &failingKV{getErr: errors.New("disk gone")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Open(tt.kv)
			if got := b.Entries(); len(got) != 0 {
				t.Errorf("expected empty board, got %v", got)
			}
		})
	}
}

func TestOpenSortsAndTruncates(t *testing.T) {
	var stored []Entry
	for i := 0; i < 10; i++ {
		stored = append(stored, Entry{Name: fmt.Sprintf("p%d", i), Score: i * 10, Date: "2026-01-01"})
	}
	data, _ := json.Marshal(stored)
	kv := NewMemoryKV()
	_ = kv.Set(DefaultKey, string(data))

	got := Open(kv).Entries()

	if len(got) != 7 {
		t.Fatalf("expected 7 entries, got %d", len(got))
	}
	if got[0].Score != 90 || got[6].Score != 30 {
		t.Errorf("expected scores 90..30, got %d..%d", got[0].Score, got[6].Score)
	}
}

func TestSubmitPersists(t *testing.T) {
	kv := NewMemoryKV()
	b := Open(kv, WithClock(fixedClock))

	entries, err := b.Submit("  Ada ", 250)
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}

	want := Entry{Name: "Ada", Score: 250, Date: "2026-03-14"}
	if len(entries) != 1 || entries[0] != want {
		t.Fatalf("entries = %v, expected [%v]", entries, want)
	}

	raw, ok, _ := kv.Get(DefaultKey)
	if !ok {
		t.Fatal("board was not persisted")
	}
	if raw != `[{"name":"Ada","score":250,"date":"2026-03-14"}]` {
		t.Errorf("stored = %s", raw)
	}

	// A second board over the same store sees the entry
	reopened := Open(kv).Entries()
	if len(reopened) != 1 || reopened[0] != want {
		t.Errorf("reopened = %v, expected [%v]", reopened, want)
	}
}

func TestSubmitRejectsEmptyName(t *testing.T) {
	kv := NewMemoryKV()
	b := Open(kv)
	if _, err := b.Submit("Bo", 10); err != nil {
		t.Fatal(err)
	}
	before, _, _ := kv.Get(DefaultKey)

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := b.Submit(name, 999)

		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("Submit(%q) error = %v, expected *ValidationError", name, err)
		}
		if ve.Field != "name" {
			t.Errorf("Field = %q, expected name", ve.Field)
		}
		if !IsValidation(err) {
			t.Error("IsValidation should match")
		}
	}

	if got := b.Entries(); len(got) != 1 || got[0].Name != "Bo" {
		t.Errorf("board changed after rejected submissions: %v", got)
	}
	after, _, _ := kv.Get(DefaultKey)
	if after != before {
		t.Error("store changed after rejected submissions")
	}
}

func TestSubmitEvictsLowest(t *testing.T) {
	b := Open(NewMemoryKV())

	scores := []int{50, 10, 70, 30, 90, 20, 60}
	for i, s := range scores {
		if _, err := b.Submit(fmt.Sprintf("p%d", i), s); err != nil {
			t.Fatal(err)
		}
	}
	if b.Qualifies(5) {
		t.Error("a score below a full board should not qualify")
	}
	if !b.Qualifies(15) {
		t.Error("a score above the lowest entry should qualify")
	}

	entries, err := b.Submit("late", 40)
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 7 {
		t.Fatalf("expected 7 entries, got %d", len(entries))
	}
	want := []int{90, 70, 60, 50, 40, 30, 20}
	for i, e := range entries {
		if e.Score != want[i] {
			t.Errorf("entries[%d].Score = %d, expected %d", i, e.Score, want[i])
		}
	}
}

func TestSubmitTiesKeepOrder(t *testing.T) {
	b := Open(NewMemoryKV())
	_, _ = b.Submit("first", 100)
	entries, _ := b.Submit("second", 100)

	if entries[0].Name != "first" || entries[1].Name != "second" {
		t.Errorf("tie order = %s, %s", entries[0].Name, entries[1].Name)
	}
}

func TestSubmitPersistFailureLeavesBoard(t *testing.T) {
	kv := &failingKV{setErr: errors.New("read-only")}
	b := Open(kv)

	_, err := b.Submit("Ada", 10)
	if err == nil {
		t.Fatal("expected an error when the store rejects the write")
	}
	if IsValidation(err) {
		t.Error("persistence failures are not validation errors")
	}
	if got := b.Entries(); len(got) != 0 {
		t.Errorf("board changed after failed save: %v", got)
	}
}

func TestEntriesIsCopy(t *testing.T) {
	b := Open(NewMemoryKV())
	_, _ = b.Submit("Ada", 10)

	got := b.Entries()
	got[0].Score = 1_000_000

	if b.Entries()[0].Score != 10 {
		t.Error("mutating Entries() result changed the board")
	}
}

func TestOptions(t *testing.T) {
	kv := NewMemoryKV()
	b := Open(kv, WithLimit(2), WithKey("custom"))

	for i := 0; i < 3; i++ {
		_, _ = b.Submit("p", i)
	}

	if len(b.Entries()) != 2 {
		t.Errorf("expected 2 entries, got %d", len(b.Entries()))
	}
	if _, ok, _ := kv.Get("custom"); !ok {
		t.Error("expected the board under the custom key")
	}
	if _, ok, _ := kv.Get(DefaultKey); ok {
		t.Error("default key should be untouched")
	}
}

func TestMedal(t *testing.T) {
	if Medal(0) == "" || Medal(1) == "" || Medal(2) == "" {
		t.Error("top three should have medals")
	}
	if Medal(3) != "" {
		t.Error("fourth place should have no medal")
	}
}
