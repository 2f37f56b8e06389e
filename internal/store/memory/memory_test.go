package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/MrSnakeDoc/klub/internal/store"
)

func TestNew(t *testing.T) {
	b := New(0)
	if b == nil {
		t.Fatal("New() returned nil")
	}
	if b.Len() != 0 {
		t.Errorf("New() should start empty, got %v keys", b.Len())
	}
}

func TestGetMissing(t *testing.T) {
	b := New(0)

	_, err := b.Get(context.Background(), "nope")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestSetOverwrites(t *testing.T) {
	b := New(0)
	ctx := context.Background()

	if err := b.Set(ctx, "k", []byte("one")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := b.Set(ctx, "k", []byte("three")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := b.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got) != "three" {
		t.Errorf("Get() = %q, want %q", got, "three")
	}
	if b.Size() != len("k")+len("three") {
		t.Errorf("Size() = %v, want %v", b.Size(), len("k")+len("three"))
	}
}

func TestGetReturnsCopy(t *testing.T) {
	b := New(0)
	ctx := context.Background()

	src := []byte("abc")
	_ = b.Set(ctx, "k", src)
	src[0] = 'x'

	got, _ := b.Get(ctx, "k")
	got[1] = 'y'

	again, _ := b.Get(ctx, "k")
	if string(again) != "abc" {
		t.Errorf("stored value mutated through caller slice: %q", again)
	}
}

func TestSetIfAbsent(t *testing.T) {
	b := New(0)
	ctx := context.Background()

	wrote, err := b.SetIfAbsent(ctx, "k", []byte("first"))
	if err != nil || !wrote {
		t.Fatalf("SetIfAbsent() = %v, %v, want true, nil", wrote, err)
	}

	wrote, err = b.SetIfAbsent(ctx, "k", []byte("second"))
	if err != nil || wrote {
		t.Fatalf("SetIfAbsent() on existing key = %v, %v, want false, nil", wrote, err)
	}

	got, _ := b.Get(ctx, "k")
	if string(got) != "first" {
		t.Errorf("SetIfAbsent() overwrote existing value: %q", got)
	}
}

func TestDelete(t *testing.T) {
	b := New(0)
	ctx := context.Background()

	_ = b.Set(ctx, "k", []byte("v"))
	if err := b.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if b.Len() != 0 || b.Size() != 0 {
		t.Errorf("Delete() left len=%v size=%v", b.Len(), b.Size())
	}

	// Deleting a missing key is a no-op
	if err := b.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete() on missing key error = %v", err)
	}
}

func TestQuota(t *testing.T) {
	b := New(10)
	ctx := context.Background()

	if err := b.Set(ctx, "a", []byte("12345")); err != nil {
		t.Fatalf("Set() within quota error = %v", err)
	}

	err := b.Set(ctx, "b", []byte("123456789"))
	if !errors.Is(err, store.ErrQuotaExceeded) {
		t.Fatalf("Set() over quota error = %v, want ErrQuotaExceeded", err)
	}
	if _, err := b.Get(ctx, "b"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("rejected write should not be stored")
	}

	// Replacing a value only counts the delta
	if err := b.Set(ctx, "a", []byte("123456789")); err != nil {
		t.Errorf("Set() replacing within quota error = %v", err)
	}

	wrote, err := b.SetIfAbsent(ctx, "c", []byte("x"))
	if wrote || !errors.Is(err, store.ErrQuotaExceeded) {
		t.Errorf("SetIfAbsent() over quota = %v, %v", wrote, err)
	}
}

func TestConcurrentAccess(t *testing.T) {
	b := New(0)
	ctx := context.Background()

	var wg sync.WaitGroup

	// Concurrent writers
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = b.Set(ctx, fmt.Sprintf("k%d", i%10), []byte("value"))
		}(i)
	}

	// Concurrent readers
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = b.Get(ctx, fmt.Sprintf("k%d", i%10))
		}(i)
	}

	wg.Wait()

	if b.Len() != 10 {
		t.Errorf("Len() after concurrent writes = %v, want 10", b.Len())
	}
	if b.Size() != 10*(len("k0")+len("value")) {
		t.Errorf("Size() after concurrent writes = %v", b.Size())
	}
}
