package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tohojo/stgit-console/internal/marks"
	"github.com/tohojo/stgit-console/internal/stgit"
)

func testSeries(t *testing.T) stgit.Series {
	t.Helper()
	series, err := stgit.ParseSeries(" + A # a\n + B # b\n > C # c\n - D # d\n")
	require.NoError(t, err)
	return series
}

func marked(names ...string) *marks.Store {
	s := marks.NewStore()
	s.Add(names...)
	return s
}

func TestMarksNarrowRange(t *testing.T) {
	res, err := Resolve(
		Request{UseRange: true, UseMarks: true},
		Context{Range: []string{"A", "B", "C"}, Marks: marked("B"), Series: testSeries(t)},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, res.Patches)
	assert.Nil(t, res.Prompt)
}

func TestRangeVerbatimWhenMarksIneligible(t *testing.T) {
	res, err := Resolve(
		Request{UseRange: true, UseMarks: false},
		Context{Range: []string{"A", "B", "C"}, Marks: marked("B"), Series: testSeries(t)},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Patches)
}

func TestRangeVerbatimWhenIntersectionEmpty(t *testing.T) {
	res, err := Resolve(
		Request{UseRange: true, UseMarks: true},
		Context{Range: []string{"A", "B"}, Marks: marked("D"), Series: testSeries(t)},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Patches)
}

func TestMarksReorderedToStackOrder(t *testing.T) {
	res, err := Resolve(
		Request{UseMarks: true},
		Context{Marks: marked("C", "A"), Series: testSeries(t)},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, res.Patches)
}

func TestPointFallback(t *testing.T) {
	res, err := Resolve(
		Request{UsePoint: true},
		Context{Point: "D", Marks: marks.NewStore(), Series: testSeries(t)},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"D"}, res.Patches)
}

func TestPointSkippedWhenIneligible(t *testing.T) {
	_, err := Resolve(
		Request{UseMarks: true},
		Context{Point: "D", Marks: marks.NewStore(), Series: testSeries(t)},
	)
	assert.ErrorIs(t, err, ErrNoneSelected)
}

func TestPromptFallback(t *testing.T) {
	res, err := Resolve(
		Request{UsePoint: true, RequireExact: true, Prompt: "Goto patch"},
		Context{Marks: marks.NewStore(), Series: testSeries(t)},
	)
	require.NoError(t, err)
	require.NotNil(t, res.Prompt)
	assert.Empty(t, res.Patches)
	assert.Equal(t, "Goto patch", res.Prompt.Message)
	assert.True(t, res.Prompt.RequireExact)
}

func TestNoSourceAndNoPrompt(t *testing.T) {
	_, err := Resolve(Request{UsePoint: true}, Context{Marks: marks.NewStore(), Series: testSeries(t)})
	assert.ErrorIs(t, err, ErrNoneSelected)
}

func TestStaleMarksFallThrough(t *testing.T) {
	res, err := Resolve(
		Request{UseMarks: true, UsePoint: true},
		Context{Point: "B", Marks: marked("deleted-patch"), Series: testSeries(t)},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, res.Patches)
}

func TestAnswerExactMatch(t *testing.T) {
	req := Request{RequireExact: true, Prompt: "Patch"}
	ctx := Context{Series: testSeries(t)}

	patches, err := Answer(req, ctx, "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, patches)

	_, err = Answer(req, ctx, "nope")
	assert.ErrorContains(t, err, "nope")

	_, err = Answer(req, ctx, "")
	assert.ErrorIs(t, err, ErrNoneSelected)
}

func TestAnswerWithoutExactMatchAcceptsNewNames(t *testing.T) {
	patches, err := Answer(Request{Prompt: "New name"}, Context{Series: testSeries(t)}, "fresh")
	require.NoError(t, err)
	assert.Equal(t, []string{"fresh"}, patches)
}
