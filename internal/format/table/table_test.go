package table

import (
	"reflect"
	"testing"
)

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"en", "English", "1"},
		{"pt", "Portuguese", "12"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignLeft, AlignRight})
	want := []string{
		"en  English      1",
		"pt  Portuguese  12",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatCountsWideCells(t *testing.T) {
	rows := [][]string{
		{"日本語", "ja"},
		{"Dutch", "nl"},
	}
	got := Format(rows, nil)
	want := []string{
		"日本語  ja",
		"Dutch   nl",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatPadsShortRows(t *testing.T) {
	got := Format([][]string{{"a", "b"}, {"c"}}, nil)
	if !reflect.DeepEqual(got, []string{"a  b", "c"}) {
		t.Fatalf("unexpected rows %q", got)
	}
	if Format(nil, nil) != nil {
		t.Fatalf("expected nil for no rows")
	}
}
