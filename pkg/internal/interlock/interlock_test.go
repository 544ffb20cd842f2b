package interlock_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/joeydtaylor/filament/pkg/internal/interlock"
	"github.com/joeydtaylor/filament/pkg/internal/sensor"
	"github.com/joeydtaylor/filament/pkg/internal/types"
)

func TestDoSerializesSections(t *testing.T) {
	g := interlock.NewInterlock("flush")

	var active, maxActive int32
	section := func() error {
		n := atomic.AddInt32(&active, 1)
		for {
			seen := atomic.LoadInt32(&maxActive)
			if n <= seen || atomic.CompareAndSwapInt32(&maxActive, seen, n) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		atomic.AddInt32(&active, -1)
		return nil
	}

	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func() {
			_ = g.Do(context.Background(), time.Second, section)
			done <- struct{}{}
		}()
	}
	for i := 0; i < 4; i++ {
		<-done
	}

	if atomic.LoadInt32(&maxActive) != 1 {
		t.Fatalf("observed %d concurrent sections, want 1", maxActive)
	}
}

func TestDoReturnsSectionError(t *testing.T) {
	g := interlock.NewInterlock("flush")
	want := errors.New("push failed")

	got := g.Do(context.Background(), time.Second, func() error { return want })
	if !errors.Is(got, want) {
		t.Fatalf("Do() = %v, want %v", got, want)
	}
}

func TestDoTimeoutUnblocksCallerAndSectionCompletes(t *testing.T) {
	s := sensor.NewSensor()
	timeouts := make(chan string, 1)
	s.RegisterOnInterlockTimeout(func(_ types.ComponentMetadata, name string) {
		timeouts <- name
	})

	g := interlock.NewInterlock("flush", interlock.WithSensor(s))

	release := make(chan struct{})
	completed := make(chan struct{})

	start := time.Now()
	err := g.Do(context.Background(), 30*time.Millisecond, func() error {
		<-release
		close(completed)
		return nil
	})
	elapsed := time.Since(start)

	if !errors.Is(err, interlock.ErrTimeout) {
		t.Fatalf("Do() = %v, want ErrTimeout", err)
	}
	if elapsed > 500*time.Millisecond {
		t.Fatalf("caller blocked %v past the timeout", elapsed)
	}

	select {
	case name := <-timeouts:
		if name != "flush" {
			t.Fatalf("timeout reported for gate %q, want flush", name)
		}
	case <-time.After(time.Second):
		t.Fatalf("sensor never observed the timeout")
	}

	// The late section must still run to completion.
	close(release)
	select {
	case <-completed:
	case <-time.After(time.Second):
		t.Fatalf("section was abandoned after timeout")
	}
}

func TestDoContextCancellation(t *testing.T) {
	g := interlock.NewInterlock("flush")
	ctx, cancel := context.WithCancel(context.Background())

	release := make(chan struct{})
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := g.Do(ctx, time.Minute, func() error {
		<-release
		return nil
	})
	close(release)

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Do() = %v, want context.Canceled", err)
	}
}
