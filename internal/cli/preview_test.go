package cli

import (
	"strings"
	"testing"

	"github.com/tagforge/tagcloud/pkg/cloud"
	"github.com/tagforge/tagcloud/pkg/freq"
)

func TestPreviewTable(t *testing.T) {
	sel := cloud.Select([]freq.Pair{
		{Word: "the", Count: 3000},
		{Word: "cat", Count: 2},
	}, 2)

	out := PreviewTable(sel, cloud.DefaultScale())

	for _, want := range []string{"Word", "Count", "Font", "the", "cat", "3,000", "47", "11"} {
		if !strings.Contains(out, want) {
			t.Errorf("preview table missing %q:\n%s", want, out)
		}
	}
}

func TestPreviewTableEmptySelection(t *testing.T) {
	out := PreviewTable(cloud.Selection{}, cloud.DefaultScale())
	if !strings.Contains(out, "Word") {
		t.Errorf("empty preview should still render the header:\n%s", out)
	}
}
