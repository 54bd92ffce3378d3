package main

import "testing"

func TestParseProgress(t *testing.T) {
	cases := []struct {
		line string
		want progressMsg
		ok   bool
	}{
		{"[PROGRESS] 5/120 (4.2%)", progressMsg{5, 120, 4.2}, true},
		{"[PROGRESS] 6/5 (120.0%)", progressMsg{6, 5, 120.0}, true},
		{"[PROGRESS] 1/0 (0.0%)", progressMsg{1, 0, 0.0}, true},
		{"[INFO] Camera initialized successfully", progressMsg{}, false},
		{"[PROGRESS] garbage", progressMsg{}, false},
		{"[PROGRESS] 5/120", progressMsg{}, false},
		{"", progressMsg{}, false},
	}

	for _, tc := range cases {
		got, ok := parseProgress(tc.line)
		if ok != tc.ok || got != tc.want {
			t.Errorf("parseProgress(%q) = %+v, %v; want %+v, %v", tc.line, got, ok, tc.want, tc.ok)
		}
	}
}
