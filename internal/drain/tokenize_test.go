package drain

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "plain line",
			line: "connected to host",
			want: []string{"connected", "to", "host"},
		},
		{
			name: "runs of whitespace collapse",
			line: "level=info \t msg=ready",
			want: []string{"level=info", "msg=ready"},
		},
		{
			name: "surrounding whitespace dropped",
			line: "  padded line  ",
			want: []string{"padded", "line"},
		},
		{
			name: "empty line",
			line: "",
			want: []string{},
		},
		{
			name: "whitespace only",
			line: " \t ",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.line)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}
