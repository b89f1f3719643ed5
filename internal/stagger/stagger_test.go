package stagger_test

import (
	"testing"
	"time"

	"github.com/Zachkp/portfolio/internal/stagger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_DelaysAreIndexTimesStep(t *testing.T) {
	const n = 7
	step := 150 * time.Millisecond

	got := stagger.Generate(n, step)

	require.Len(t, got, n)
	for i, d := range got {
		assert.Equal(t, i, d.Index)
		assert.Equal(t, time.Duration(i)*step, d.Delay)
		assert.False(t, d.Visible)
	}
	assert.Zero(t, got[0].Delay)
}

func TestFor_ThreeAchievements(t *testing.T) {
	items := []struct{ Title string }{{"a"}, {"b"}, {"c"}}

	got := stagger.For(items, 100*time.Millisecond)

	delays := make([]int64, len(got))
	for i, d := range got {
		delays[i] = d.DelayMillis()
	}
	assert.Equal(t, []int64{0, 100, 200}, delays)
}

func TestGenerate_Degenerate(t *testing.T) {
	assert.Empty(t, stagger.Generate(0, time.Second))
	assert.Empty(t, stagger.Generate(-3, time.Second))
	assert.NotNil(t, stagger.For[int](nil, time.Second))

	for _, d := range stagger.Generate(3, -time.Second) {
		assert.Zero(t, d.Delay)
	}
}

func TestDescriptor_StyleAndClass(t *testing.T) {
	d := stagger.Descriptor{Index: 2, Delay: 200 * time.Millisecond}

	assert.Equal(t, "stagger-item", d.Class())
	assert.Contains(t, string(d.Style()), "opacity: 0")
	assert.Contains(t, string(d.Style()), "translateY(20px)")

	v := d.Reveal()
	assert.True(t, v.Visible)
	assert.False(t, d.Visible, "Reveal must not mutate the receiver")
	assert.Equal(t, "stagger-item is-visible", v.Class())
	assert.Contains(t, string(v.Style()), "opacity: 1")
	assert.Contains(t, string(v.Style()), "transition: opacity 500ms ease-out")
	assert.Equal(t, d.Delay, v.Delay)
}
