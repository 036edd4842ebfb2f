package render

import "testing"

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"svg", FormatSVG, false},
		{" PNG ", FormatPNG, false},
		{"dot", FormatDOT, false},
		{"pdf", FormatPDF, false},
		{"gif", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNeedsRSVG(t *testing.T) {
	for _, f := range Formats {
		want := f == FormatPDF || f == FormatPNG
		if got := f.NeedsRSVG(); got != want {
			t.Errorf("%s.NeedsRSVG() = %v, want %v", f, got, want)
		}
	}
}
