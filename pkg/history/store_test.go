package history

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/matzehuels/giftcircle/pkg/circle"
	gcerrors "github.com/matzehuels/giftcircle/pkg/errors"
	"github.com/matzehuels/giftcircle/pkg/observability"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(context.Background(), filepath.Join(t.TempDir(), "nested", "history.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func testResult(seed uint64) *circle.Result {
	people := []circle.Participant{
		{Name: "Father", Email: "dad@example.com", Group: 1},
		{Name: "Son", Group: 2},
		{Name: "Mother", Group: 1},
		{Name: "Guest", Group: circle.NoGroup},
	}
	circle.AssignRecipients(people)
	return &circle.Result{Circle: people, Attempts: 3, UseGroups: true, Seed: seed}
}

func TestRecordAndGet(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	res := testResult(math.MaxUint64)
	d, err := st.Record(ctx, "Christmas", res)
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if d.ID == "" {
		t.Fatal("Record() returned empty id")
	}

	got, err := st.Get(ctx, d.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Label != "Christmas" || got.Attempts != 3 || !got.UseGroups || got.Size != 4 {
		t.Errorf("Get() metadata = %+v", got)
	}
	if got.Seed != math.MaxUint64 {
		t.Errorf("Seed = %d, want %d", got.Seed, uint64(math.MaxUint64))
	}
	if !slices.Equal(got.Circle, res.Circle) {
		t.Errorf("Circle = %+v, want %+v", got.Circle, res.Circle)
	}
	if got.Result().Chain() != res.Chain() {
		t.Errorf("Result().Chain() = %q, want %q", got.Result().Chain(), res.Chain())
	}
}

func TestGetNotFound(t *testing.T) {
	st := openTestStore(t)

	_, err := st.Get(context.Background(), "does-not-exist")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
	if !gcerrors.Is(err, gcerrors.ErrCodeNotFound) {
		t.Errorf("Get() code = %s, want NOT_FOUND", gcerrors.GetCode(err))
	}
}

func TestList(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 12, 1, 10, 0, 0, 0, time.UTC)
	var ids []string
	for i := range 3 {
		st.now = func() time.Time { return base.Add(time.Duration(i) * time.Hour) }
		d, err := st.Record(ctx, "", testResult(uint64(i+1)))
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, d.ID)
	}

	draws, err := st.List(ctx, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(draws) != 3 {
		t.Fatalf("List() returned %d draws, want 3", len(draws))
	}
	if draws[0].ID != ids[2] || draws[2].ID != ids[0] {
		t.Errorf("List() order = %v, want newest first", []string{draws[0].ID, draws[1].ID, draws[2].ID})
	}
	if draws[0].Seed != 3 {
		t.Errorf("newest seed = %d, want 3", draws[0].Seed)
	}
	if !draws[0].CreatedAt.Equal(base.Add(2 * time.Hour)) {
		t.Errorf("CreatedAt = %v, want %v", draws[0].CreatedAt, base.Add(2*time.Hour))
	}
	if draws[0].Circle != nil {
		t.Error("List() should not load assignments")
	}

	limited, err := st.List(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 2 {
		t.Errorf("List(2) returned %d draws", len(limited))
	}
}

func TestReopenKeepsHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	st, err := Open(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	d, err := st.Record(ctx, "kept", testResult(9))
	if err != nil {
		t.Fatal(err)
	}
	st.Close()

	st, err = Open(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()
	if _, err := st.Get(ctx, d.ID); err != nil {
		t.Errorf("Get() after reopen error = %v", err)
	}
}

type recordingStoreHooks struct {
	ops []string
}

func (h *recordingStoreHooks) OnQuery(_ context.Context, op string, _ time.Duration, _ error) {
	h.ops = append(h.ops, op)
}

func TestStoreHooks(t *testing.T) {
	hooks := &recordingStoreHooks{}
	observability.SetStoreHooks(hooks)
	defer observability.Reset()

	st := openTestStore(t)
	ctx := context.Background()
	d, err := st.Record(ctx, "", testResult(1))
	if err != nil {
		t.Fatal(err)
	}
	_, _ = st.List(ctx, 1)
	_, _ = st.Get(ctx, d.ID)

	if want := []string{"record", "list", "get"}; !slices.Equal(hooks.ops, want) {
		t.Errorf("hook ops = %v, want %v", hooks.ops, want)
	}
}
