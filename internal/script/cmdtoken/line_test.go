package cmdtoken

import "testing"

func TestSkipSpace(t *testing.T) {
	cases := map[string]string{
		"":          "",
		"   ":       "",
		"  a b":     "a b",
		"\tx":       "\tx",
		"  \nx":     "\nx",
		"no-spaces": "no-spaces",
	}
	for in, want := range cases {
		got := SkipSpace(in)
		if got != want {
			t.Fatalf("SkipSpace(%q)=%q want %q", in, got, want)
		}
		if again := SkipSpace(got); again != got {
			t.Fatalf("SkipSpace not idempotent on %q: %q", in, again)
		}
	}
}

func TestGetCmd(t *testing.T) {
	cases := map[string]string{
		"CreateObject type=Portico": "CreateObject",
		"   Title text=\"x\"":       "Title",
		"Home\tpos=1":               "Home",
		"Home;1 x=2":                "Home;1",
		"":                          "",
		"    ":                      "",
	}
	for in, want := range cases {
		if got := GetCmd(in); got != want {
			t.Fatalf("GetCmd(%q)=%q want %q", in, got, want)
		}
	}
}

func TestCmd(t *testing.T) {
	cases := []struct {
		line, token string
		want        bool
	}{
		{"Home", "Home", true},
		{"Home pos=1", "Home", true},
		{"Home\tpos=1", "Home", true},
		{"Home\n", "Home", true},
		{"   Home", "Home", true},
		{"Home2", "Home", false},
		{"Foobar", "Foo", false},
		{"Home;1", "Home", false},
		{"home", "Home", false},
		{"Hom", "Home", false},
		{"", "Home", false},
		{"\tHome", "Home", false},
	}
	for _, tc := range cases {
		if got := Cmd(tc.line, tc.token); got != tc.want {
			t.Fatalf("Cmd(%q,%q)=%v want %v", tc.line, tc.token, got, tc.want)
		}
	}
}

func TestSearchOp(t *testing.T) {
	line := "CreateObject type=Portico pos=1;2 power=0.5 pos=9;9"
	if got := SearchOp(line, "pos"); got != "1;2 power=0.5 pos=9;9" {
		t.Fatalf("first pos: %q", got)
	}
	if got := SearchOp(line, "type"); got != "Portico pos=1;2 power=0.5 pos=9;9" {
		t.Fatalf("type: %q", got)
	}
	if got := SearchOp(line, "dir"); got != "" {
		t.Fatalf("absent op should be empty, got %q", got)
	}
	// "power=" must not satisfy a search for "ower".
	if got := SearchOp(line, "ower"); got != "" {
		t.Fatalf("operator suffix matched: %q", got)
	}
	// The operator must be preceded by a space.
	if got := SearchOp("pos=1;2", "pos"); got != "" {
		t.Fatalf("operator at line start matched: %q", got)
	}
}

func TestSearchArg(t *testing.T) {
	cur := SearchOp("cmd op=1;2;3 next=4;5", "op")
	cases := []struct {
		rank int
		want string
	}{
		{0, "1;2;3 next=4;5"},
		{1, "2;3 next=4;5"},
		{2, "3 next=4;5"},
		{3, ""}, // '=' of next reached first
		{9, ""},
	}
	for _, tc := range cases {
		if got := SearchArg(cur, tc.rank); got != tc.want {
			t.Fatalf("SearchArg rank %d=%q want %q", tc.rank, got, tc.want)
		}
	}
	if got := SearchArg("a;   b", 1); got != "b" {
		t.Fatalf("leading spaces kept: %q", got)
	}
	if got := SearchArg("", 0); got != "" {
		t.Fatalf("empty cursor: %q", got)
	}
}
