package fetch

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestLoad_AppliesResult(t *testing.T) {
	l := NewLoader(func(_ context.Context, q int) (int, error) { return q * 2, nil })
	got, err := l.Load(context.Background(), 21)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != 42 {
		t.Fatalf("got %d want 42", got)
	}
	latest, tok := l.Latest()
	if latest != 42 || tok != 1 {
		t.Fatalf("latest=%d token=%d", latest, tok)
	}
}

func TestLoad_StaleResultIsDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	// The slow query ignores cancellation to model a source that cannot be
	// interrupted; its result must still be dropped.
	l := NewLoader(func(_ context.Context, q string) (string, error) {
		if q == "old" {
			close(started)
			<-release
		}
		return q, nil
	})

	done := make(chan error, 1)
	go func() {
		_, err := l.Load(context.Background(), "old")
		done <- err
	}()
	<-started

	got, err := l.Load(context.Background(), "new")
	if err != nil || got != "new" {
		t.Fatalf("new load: got %q err %v", got, err)
	}

	close(release)
	if err := <-done; !errors.Is(err, ErrSuperseded) {
		t.Fatalf("old load: expected ErrSuperseded, got %v", err)
	}
	latest, tok := l.Latest()
	if latest != "new" || tok != 2 {
		t.Fatalf("latest=%q token=%d, want new/2", latest, tok)
	}
}

func TestLoad_NewerRequestCancelsOlder(t *testing.T) {
	started := make(chan struct{})
	l := NewLoader(func(ctx context.Context, q string) (string, error) {
		if q == "old" {
			close(started)
			<-ctx.Done()
			return "", ctx.Err()
		}
		return q, nil
	})

	done := make(chan error, 1)
	go func() {
		_, err := l.Load(context.Background(), "old")
		done <- err
	}()
	<-started
	if _, err := l.Load(context.Background(), "new"); err != nil {
		t.Fatalf("new load: %v", err)
	}
	select {
	case err := <-done:
		if !errors.Is(err, ErrSuperseded) {
			t.Fatalf("expected ErrSuperseded, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("old load was not cancelled")
	}
}

func TestLoad_ErrorKeepsPreviousResult(t *testing.T) {
	boom := errors.New("boom")
	l := NewLoader(func(_ context.Context, q int) (int, error) {
		if q < 0 {
			return 0, boom
		}
		return q, nil
	})
	if _, err := l.Load(context.Background(), 7); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Load(context.Background(), -1); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	latest, tok := l.Latest()
	if latest != 7 || tok != 1 {
		t.Fatalf("latest=%d token=%d", latest, tok)
	}
}

func TestDelay_HonoursCancel(t *testing.T) {
	fn := Delay(time.Hour, func(_ context.Context, q int) (int, error) { return q, nil })
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := fn(ctx, 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
