package jsonutil

import (
	"reflect"
	"strings"
	"testing"
)

func TestParsePairs(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    [][2]int
		wantErr bool
	}{
		{name: "compact", in: "[[6,1],[4,3]]", want: [][2]int{{6, 1}, {4, 3}}},
		{name: "whitespace", in: " [ [1, 1] ]\n", want: [][2]int{{1, 1}}},
		{name: "empty string", in: "  ", want: [][2]int{}},
		{name: "empty array", in: "[]", want: [][2]int{}},
		{name: "short entry", in: "[[1]]", wantErr: true},
		{name: "long entry", in: "[[1,2,3]]", wantErr: true},
		{name: "not json", in: "6,1", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePairs(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePairs(%q) expected error, got %v", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePairs(%q) error: %v", tt.in, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParsePairs(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestReadPairs(t *testing.T) {
	got, err := ReadPairs(strings.NewReader("[[0,6]]"))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, [][2]int{{0, 6}}) {
		t.Errorf("ReadPairs = %v", got)
	}
}

func TestFormatPairs(t *testing.T) {
	if got := FormatPairs([][2]int{{6, 1}, {4, 3}}); got != "[[6,1],[4,3]]" {
		t.Errorf("FormatPairs = %s", got)
	}
	if got := FormatPairs(nil); got != "[]" {
		t.Errorf("FormatPairs(nil) = %s, want []", got)
	}
}

func TestPrettyJSON(t *testing.T) {
	pretty := PrettyJSON(`{"a":[1,2]}`)
	if !strings.Contains(pretty, "\n  \"a\"") {
		t.Errorf("PrettyJSON = %q", pretty)
	}
	if got := PrettyJSON("not json"); got != "not json" {
		t.Errorf("PrettyJSON(invalid) = %q", got)
	}
}
