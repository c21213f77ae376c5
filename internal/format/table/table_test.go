package table

import "testing"

func TestFormatPadsColumns(t *testing.T) {
	rows := [][]string{
		{"first", "base cleanup"},
		{"p2", "wip"},
	}
	out := Format(rows, []Alignment{AlignLeft, AlignLeft})
	if len(out) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(out))
	}
	if out[0] != "first  base cleanup" {
		t.Fatalf("unexpected row %q", out[0])
	}
	if out[1] != "p2     wip" {
		t.Fatalf("unexpected row %q", out[1])
	}
}

func TestFormatRightAlignment(t *testing.T) {
	rows := [][]string{
		{"1", "a"},
		{"12", "b"},
	}
	out := Format(rows, []Alignment{AlignRight, AlignLeft})
	if out[0] != " 1  a" {
		t.Fatalf("unexpected row %q", out[0])
	}
}

func TestFormatLastColumnUnpadded(t *testing.T) {
	rows := [][]string{
		{"*", "+", "fix-parser", "rework the tokenizer"},
		{" ", ">", "p2", "wip"},
	}
	out := Format(rows, []Alignment{AlignLeft, AlignLeft, AlignLeft, AlignLeft})
	for _, row := range out {
		if row != "" && row[len(row)-1] == ' ' {
			t.Fatalf("trailing padding in %q", row)
		}
	}
	if out[1] != "   >  p2          wip" {
		t.Fatalf("unexpected row %q", out[1])
	}
}

func TestFormatRaggedRows(t *testing.T) {
	rows := [][]string{
		{"only"},
		{"a", "b", "c"},
	}
	out := Format(rows, []Alignment{AlignLeft})
	if out[0] != "only" {
		t.Fatalf("unexpected row %q", out[0])
	}
	if out[1] != "a     b  c" {
		t.Fatalf("unexpected row %q", out[1])
	}
}

func TestFormatEmpty(t *testing.T) {
	if out := Format(nil, nil); out != nil {
		t.Fatalf("expected nil for no rows, got %v", out)
	}
}
