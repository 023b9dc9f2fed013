package cli

import "testing"

func TestParseCount(t *testing.T) {
	testCases := []struct {
		raw         string
		want        int
		description string
	}{
		{"3", 3, "plain number"},
		{"0", 0, "zero"},
		{"", 0, "empty input falls back to zero"},
		{"ten", 0, "non-numeric falls back to zero"},
		{"3.5", 0, "float falls back to zero"},
		{"-7", 0, "negative clamps to zero"},
		{"2147483647", MaxWordCount, "exactly the maximum"},
		{"99999999999", MaxWordCount, "oversized clamps to the maximum"},
	}

	for _, tc := range testCases {
		if got := ParseCount(tc.raw); got != tc.want {
			t.Errorf("%s: ParseCount(%q) = %d, want %d", tc.description, tc.raw, got, tc.want)
		}
	}
}

func TestClampCount(t *testing.T) {
	if got := ClampCount(-1); got != 0 {
		t.Errorf("ClampCount(-1) = %d, want 0", got)
	}
	if got := ClampCount(42); got != 42 {
		t.Errorf("ClampCount(42) = %d, want 42", got)
	}
	if got := ClampCount(int64(MaxWordCount) + 1); got != MaxWordCount {
		t.Errorf("ClampCount(max+1) = %d, want %d", got, MaxWordCount)
	}
}
