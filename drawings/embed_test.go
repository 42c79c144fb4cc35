package drawings

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestNames(t *testing.T) {
	names := Names()
	for _, want := range []string{"diamond", "square", "stairs"} {
		if !slices.Contains(names, want) {
			t.Fatalf("Names() = %v, missing %q", names, want)
		}
	}
	if !slices.IsSorted(names) {
		t.Fatalf("Names() not sorted: %v", names)
	}
}

func TestLoad(t *testing.T) {
	disk := filepath.Join(t.TempDir(), "mine.turtle")
	if err := os.WriteFile(disk, []byte("EAST 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name    string
		want    string
		wantErr error
	}{
		{name: disk, want: "EAST 1\n"},
		{name: "square", want: "COLOUR FF0000\n"},
		{name: "square.turtle", want: "COLOUR FF0000\n"},
		{name: "nope", wantErr: fs.ErrNotExist},
	}

	for _, c := range cases {
		t.Run(filepath.Base(c.name), func(t *testing.T) {
			data, err := Load(c.name)
			if c.wantErr != nil {
				if !errors.Is(err, c.wantErr) {
					t.Fatalf("expected %v, got %v", c.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load(%q): %v", c.name, err)
			}
			if !strings.HasPrefix(string(data), c.want) {
				t.Fatalf("Load(%q) = %q", c.name, data)
			}
		})
	}

	if !OnDisk(disk) || OnDisk("square") {
		t.Fatalf("OnDisk mismatch")
	}
}
