package export

import "testing"

func TestFileName(t *testing.T) {
	cases := []struct {
		name string
		mode Mode
		want string
	}{
		{"Dana Whitfield", ModeATS, "Dana_Whitfield_ATS.pdf"},
		{"Dana Whitfield", ModeVisual, "Dana_Whitfield_Visual.pdf"},
		{"", ModeATS, "Resume_ATS.pdf"},
		{"!!!", ModeVisual, "Resume_Visual.pdf"},
		{"José Álvarez", ModeATS, "Jos_lvarez_ATS.pdf"},
	}
	for _, tc := range cases {
		if got := FileName(tc.name, tc.mode); got != tc.want {
			t.Fatalf("FileName(%q, %s) = %q, want %q", tc.name, tc.mode, got, tc.want)
		}
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode(""); err != nil || m != ModeATS {
		t.Fatalf("empty mode: got %q, %v", m, err)
	}
	if m, err := ParseMode("visual"); err != nil || m != ModeVisual {
		t.Fatalf("visual mode: got %q, %v", m, err)
	}
	if _, err := ParseMode("docx"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}
