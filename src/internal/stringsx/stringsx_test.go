package stringsx

import "testing"

func TestFirstNonEmpty(t *testing.T) {
	if got := FirstNonEmpty("", " ", "x", "y"); got != "x" {
		t.Fatalf("FirstNonEmpty: want 'x', got %q", got)
	}
	if got := FirstNonEmpty("", ""); got != "" {
		t.Fatalf("FirstNonEmpty empty: want '', got %q", got)
	}
}

func TestCollapseSpace(t *testing.T) {
	if got := CollapseSpace("  Proc.\tof\n\nACL  "); got != "Proc. of ACL" {
		t.Fatalf("CollapseSpace: got %q", got)
	}
}

func TestIsBlank(t *testing.T) {
	for _, s := range []string{"", " ", "\t\n"} {
		if !IsBlank(s) {
			t.Fatalf("IsBlank(%q)=false", s)
		}
	}
	if IsBlank(" x ") {
		t.Fatalf("IsBlank(' x ')=true")
	}
}

func TestIsDigits(t *testing.T) {
	cases := map[string]bool{"2019": true, "": false, "20a9": false, " 2019": false, "0": true}
	for in, want := range cases {
		if got := IsDigits(in); got != want {
			t.Fatalf("IsDigits(%q)=%v want %v", in, got, want)
		}
	}
}
