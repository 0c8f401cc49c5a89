package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KaramelBytes/strokelens-cli/internal/dataset"
)

func TestRenderGroups(t *testing.T) {
	got := Render(SmokingStrokeComparison(loadFixture(t)))
	want := `stroke:
  mean_age: 50
  modal_age: 50, 60, 40
  median_age: 50
no_stroke:
  mean_age: 30
  modal_age: 30
  median_age: 30`
	assert.Equal(t, want, got)
}

func TestRenderNestedMissingShowsNoData(t *testing.T) {
	got := Render(HypertensionByGender(loadFixture(t)))
	assert.Contains(t, got, "Female:\n  stroke:\n    mean_age: No data\n    modal_age: No data\n    median_age: No data\n")
	assert.Contains(t, got, "  no_stroke:\n    mean_age: 65\n    modal_age: 60, 70\n")
}

func TestRenderList(t *testing.T) {
	assert.Equal(t, "1. p1\n2. p2", Render(HypertensionStrokeIDs(loadFixture(t))))
	assert.Equal(t, "No results found.", Render(&Result{Kind: KindList}))
}

func TestRenderFlat(t *testing.T) {
	res := flatResult(
		Scalar("mean", dataset.Float(1.5)),
		Scalar("std_dev", dataset.Missing()),
		ListEntry("stroke", nil),
	)
	assert.Equal(t, "mean: 1.5\nstd_dev: No data\nstroke: No data", Render(res))
}

func TestRenderErrorAndUnknown(t *testing.T) {
	assert.Equal(t, "error: boom", Render(errorResult("boom")))
	assert.Equal(t, "(unrecognized result)", Render(&Result{}))
	assert.Equal(t, "", Render(nil))
}
