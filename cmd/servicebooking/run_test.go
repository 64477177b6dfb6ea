package main

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"
)

type appStub struct {
	startErr error
	stopErr  error
	done     chan os.Signal
	stopped  bool
}

func (a *appStub) Start(context.Context) error { return a.startErr }

func (a *appStub) Stop(ctx context.Context) error {
	a.stopped = true
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("stop context without deadline")
	}
	return a.stopErr
}

func (a *appStub) Done() <-chan os.Signal { return a.done }

func TestRunStopsOnContextCancel(t *testing.T) {
	app := &appStub{done: make(chan os.Signal)}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := run(ctx, app); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !app.stopped {
		t.Fatal("expected app to be stopped")
	}
}

func TestRunStopsWhenAppDone(t *testing.T) {
	app := &appStub{done: make(chan os.Signal, 1)}
	app.done <- os.Interrupt

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := run(ctx, app); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !app.stopped {
		t.Fatal("expected app to be stopped")
	}
}

func TestRunReportsFailures(t *testing.T) {
	startFail := &appStub{startErr: errors.New("boom"), done: make(chan os.Signal)}
	if err := run(context.Background(), startFail); err == nil || startFail.stopped {
		t.Fatalf("expected start failure without stop, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	stopFail := &appStub{stopErr: errors.New("stuck"), done: make(chan os.Signal)}
	if err := run(ctx, stopFail); err == nil {
		t.Fatal("expected stop failure")
	}
}
