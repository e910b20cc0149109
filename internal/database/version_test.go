package database

import "testing"

func TestCompatKey(t *testing.T) {
	cases := []struct {
		version string
		want    string
	}{
		{"1.2.3", "1.2"},
		{"1.2.9", "1.2"},
		{"v1.2.0", "1.2"},
		{"1.3.0", "1.3"},
		{"0.4", "0.4"},
		{"2.0.0-rc1", "2.0"},
		{"dev", "dev"},
		{"", "dev"},
		{"abc.def", "dev"},
	}
	for _, c := range cases {
		if got := CompatKey(c.version); got != c.want {
			t.Errorf("CompatKey(%q) = %q, want %q", c.version, got, c.want)
		}
	}
}

func TestFileNameSharedAcrossPatches(t *testing.T) {
	if FileName("1.2.0") != FileName("1.2.9") {
		t.Error("expected patch releases to share a database file")
	}
	if FileName("1.2.9") == FileName("1.3.0") {
		t.Error("expected minor releases to use different database files")
	}
	if FileName("1.2.0") != "sources-v1.2.db" {
		t.Errorf("unexpected file name %q", FileName("1.2.0"))
	}
}
