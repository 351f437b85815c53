package timex

import (
	"testing"
	"time"
)

func TestMonoMsIsMonotonic(t *testing.T) {
	a := MonoMs()
	time.Sleep(2 * time.Millisecond)
	b := MonoMs()
	if b < a+1 {
		t.Fatalf("MonoMs did not advance: %d -> %d", a, b)
	}
}

func TestMs(t *testing.T) {
	if Ms(10) != 10*time.Millisecond {
		t.Fatalf("Ms(10) = %v", Ms(10))
	}
}
