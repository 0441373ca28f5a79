package mailbox

import (
	"sync"
	"testing"
	"time"
)

func TestSignalOverwrites(t *testing.T) {
	m := New[int]()
	m.Signal(1)
	m.Signal(2)
	m.Signal(3)

	select {
	case got := <-m.C():
		if got != 3 {
			t.Errorf("received %d, want 3", got)
		}
	default:
		t.Fatal("nothing pending")
	}

	if v, ok := m.TryTake(); ok {
		t.Errorf("TryTake() = %d, true after drain", v)
	}
}

func TestTryTake(t *testing.T) {
	m := New[string]()
	if _, ok := m.TryTake(); ok {
		t.Fatal("TryTake() on empty mailbox returned a value")
	}
	m.Signal("a")
	if v, ok := m.TryTake(); !ok || v != "a" {
		t.Errorf("TryTake() = %q, %v, want \"a\", true", v, ok)
	}
}

func TestSignalWakesReceiver(t *testing.T) {
	m := New[int]()
	got := make(chan int)
	go func() {
		got <- <-m.C()
	}()
	m.Signal(7)
	select {
	case v := <-got:
		if v != 7 {
			t.Errorf("received %d, want 7", v)
		}
	case <-time.After(time.Second):
		t.Fatal("receiver not woken")
	}
}

func TestSignalConcurrentNeverBlocks(t *testing.T) {
	m := New[int]()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Signal(i*100 + j)
			}
		}(i)
	}
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Signal blocked")
	}
	if _, ok := m.TryTake(); !ok {
		t.Error("no value pending after concurrent signals")
	}
}
