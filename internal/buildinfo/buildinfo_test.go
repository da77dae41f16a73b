package buildinfo

import "testing"

func TestShort(t *testing.T) {
	defer func(v, c string) { Version, Commit = v, c }(Version, Commit)

	tcs := []struct {
		version, commit, want string
	}{
		{version: "dev", commit: "unknown", want: "dev"},
		{version: "v1.2.0", commit: "abc", want: "v1.2.0"},
		{version: "dev", commit: "0123456789abcdef", want: "0123456"},
		{version: "", commit: "abc", want: "abc"},
	}
	for _, tc := range tcs {
		Version, Commit = tc.version, tc.commit
		if got := Short(); got != tc.want {
			t.Fatalf("Short() with version=%q commit=%q = %q; want %q", tc.version, tc.commit, got, tc.want)
		}
	}
}
