package common

import "testing"

func TestField(t *testing.T) {
	line := "23000   ADELAIDE (WEST TERRACE)"

	if got := Field(line, 0, 8); got != "23000" {
		t.Errorf("Field(0,8) = %q, want %q", got, "23000")
	}
	if got := Field(line, 8, 49); got != "ADELAIDE (WEST TERRACE)" {
		t.Errorf("Field(8,49) = %q, want name", got)
	}

	// Short lines yield what is available.
	if got := Field("abc", 1, 10); got != "bc" {
		t.Errorf("Field short = %q, want %q", got, "bc")
	}
	if got := Field("abc", 5, 10); got != "" {
		t.Errorf("Field past end = %q, want empty", got)
	}
}
