package textwrap

import (
	"strings"
	"testing"

	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/textenc"
)

func fixed(r rune) int { return 10 }

func TestBreakAtSpaceBeforeThirdWord(t *testing.T) {
	got := BreakLongString("aaaa bbbb cccc", textenc.UTF8, fixed, 90)
	if got != "aaaa bbbb\ncccc" {
		t.Fatalf("expected break before third word, got %q", got)
	}
	if strings.Count(got, "\n") != 1 {
		t.Fatalf("expected exactly one newline, got %q", got)
	}
}

func TestBreakPullsBackToLastSpace(t *testing.T) {
	got := BreakLongString("aaaa bbbb cccc", textenc.UTF8, fixed, 70)
	if got != "aaaa\nbbbb\ncccc" {
		t.Fatalf("expected one word per line, got %q", got)
	}
}

func TestLongWordOverflows(t *testing.T) {
	got := BreakLongString("supercalifragilistic go", textenc.UTF8, fixed, 50)
	if got != "supercalifragilistic\ngo" {
		t.Fatalf("expected long word to overflow unbroken, got %q", got)
	}
}

func TestExistingNewlineResetsWidth(t *testing.T) {
	in := "aaaa\nbbbb cccc"
	if got := BreakLongString(in, textenc.UTF8, fixed, 90); got != in {
		t.Fatalf("expected unchanged text, got %q", got)
	}
}

func TestDecodeFailureStopsWrapping(t *testing.T) {
	got := BreakLongString("aaaa \xff bbbb", textenc.UTF8, fixed, 10)
	if got != "aaaa\n\xff bbbb" {
		t.Fatalf("expected wrapping to stop at invalid byte, got %q", got)
	}
}

func TestEmptyAndDegenerateInputs(t *testing.T) {
	if BreakLongString("", textenc.UTF8, fixed, 10) != "" {
		t.Fatalf("expected empty string unchanged")
	}
	if got := BreakLongString("a b", nil, nil, 10); got != "a b" {
		t.Fatalf("expected nil width func to be a no-op, got %q", got)
	}
}

func TestCacheWrapsOncePerID(t *testing.T) {
	calls := 0
	c, err := NewCache(8, func(s string) string {
		calls++
		return BreakLongString(s, textenc.UTF8, fixed, 90)
	})
	if err != nil {
		t.Fatalf("new cache: %v", err)
	}
	first := c.Get(3, "aaaa bbbb cccc")
	second := c.Get(3, "aaaa bbbb cccc")
	if first != second || calls != 1 {
		t.Fatalf("expected memoized result, calls=%d", calls)
	}
	c.Purge()
	c.Get(3, "aaaa bbbb cccc")
	if calls != 2 || c.Len() != 1 {
		t.Fatalf("expected re-wrap after purge, calls=%d len=%d", calls, c.Len())
	}
}
