package marquee

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	assert.Equal(t, 0.0, o.Distance)
	assert.False(t, o.Disabled)
	assert.Equal(t, "input,option", o.Cancel)
	assert.Equal(t, "*", o.Filter)
	assert.Equal(t, 100.0, o.ScrollingThreshold)
	assert.Equal(t, 1.0, o.ScrollSpeedMultiplier)
	assert.Nil(t, o.Scroller)
	assert.Nil(t, o.Positioner)
	require.NoError(t, o.Validate())
}

func TestOptionKeys(t *testing.T) {
	keys := OptionKeys()
	assert.Equal(t, []string{
		"distance", "disabled", "cancel", "filter",
		"scrollingThreshold", "scrollSpeedMultiplier", "scroller", "positioner",
	}, keys)

	keys[0] = "mutated"
	assert.Equal(t, "distance", OptionKeys()[0], "OptionKeys returns a copy")
}

func TestOptionsGet(t *testing.T) {
	o := DefaultOptions()
	o.Filter = "li"

	v, err := o.Get("filter")
	require.NoError(t, err)
	assert.Equal(t, "li", v)

	v, err = o.Get("scrollingThreshold")
	require.NoError(t, err)
	assert.Equal(t, 100.0, v)

	v, err = o.Get("disabled")
	require.NoError(t, err)
	assert.Equal(t, false, v)

	_, err = o.Get("speed")
	assert.ErrorIs(t, err, ErrUnknownOption)
}

func TestOptionsSetWeaklyTyped(t *testing.T) {
	o := DefaultOptions()
	require.NoError(t, o.Set("distance", 5))
	assert.Equal(t, 5.0, o.Distance)

	require.NoError(t, o.Set("scrollSpeedMultiplier", "2.5"))
	assert.Equal(t, 2.5, o.ScrollSpeedMultiplier)

	require.NoError(t, o.Set("disabled", "true"))
	assert.True(t, o.Disabled)

	require.NoError(t, o.Set("filter", "li.item"))
	assert.Equal(t, "li.item", o.Filter)
}

func TestOptionsSetNilResetsDefault(t *testing.T) {
	o := DefaultOptions()
	o.ScrollingThreshold = 10
	o.Cancel = ""
	require.NoError(t, o.Set("scrollingThreshold", nil))
	require.NoError(t, o.Set("cancel", nil))
	assert.Equal(t, 100.0, o.ScrollingThreshold)
	assert.Equal(t, "input,option", o.Cancel)
}

func TestOptionsSetRejectsInvalid(t *testing.T) {
	o := DefaultOptions()

	assert.ErrorIs(t, o.Set("nope", 1), ErrUnknownOption)
	assert.ErrorIs(t, o.Set("distance", -1), ErrInvalidOption)
	assert.ErrorIs(t, o.Set("distance", "far"), ErrInvalidOption)
	assert.ErrorIs(t, o.Set("filter", "li..x"), ErrInvalidOption)
	assert.ErrorIs(t, o.Set("scroller", 42), ErrInvalidOption)
	assert.ErrorIs(t, o.Set("positioner", "offset"), ErrInvalidOption)

	// A rejected value leaves the options untouched.
	assert.Equal(t, DefaultOptions().Distance, o.Distance)
	assert.Equal(t, "*", o.Filter)
}

func TestOptionsSetProviders(t *testing.T) {
	o := DefaultOptions()
	vp := NewViewport(10, 10)

	require.NoError(t, o.Set("scroller", vp.Factory()))
	require.NotNil(t, o.Scroller)
	assert.Same(t, vp, o.Scroller(nil, Rect{}))

	require.NoError(t, o.Set("scroller", func(*Node, Rect) Scroller { return vp }))
	assert.Same(t, vp, o.Scroller(nil, Rect{}))

	require.NoError(t, o.Set("positioner", OffsetPositioner{}))
	assert.Equal(t, OffsetPositioner{}, o.Positioner)

	fixed := Rect{1, 2, 3, 4}
	require.NoError(t, o.Set("positioner", func(c, e *Node) Rect { return fixed }))
	assert.Equal(t, fixed, o.Positioner.Position(nil, nil))

	require.NoError(t, o.Set("scroller", nil))
	require.NoError(t, o.Set("positioner", nil))
	assert.Nil(t, o.Scroller)
	assert.Nil(t, o.Positioner)

	v, err := o.Get("positioner")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDecodeOptions(t *testing.T) {
	o, err := DecodeOptions(map[string]any{
		"distance": "3",
		"filter":   "li",
	})
	require.NoError(t, err)
	assert.Equal(t, 3.0, o.Distance)
	assert.Equal(t, "li", o.Filter)
	assert.Equal(t, 100.0, o.ScrollingThreshold, "absent keys keep defaults")

	_, err = DecodeOptions(map[string]any{"bogus": 1})
	assert.ErrorIs(t, err, ErrUnknownOption)
}

func TestLoadOptions(t *testing.T) {
	o, err := LoadOptions(strings.NewReader(`
distance: 4
filter: li.item
scrollingThreshold: 60
scrollSpeedMultiplier: 1.5
`))
	require.NoError(t, err)
	assert.Equal(t, 4.0, o.Distance)
	assert.Equal(t, "li.item", o.Filter)
	assert.Equal(t, 60.0, o.ScrollingThreshold)
	assert.Equal(t, 1.5, o.ScrollSpeedMultiplier)
	assert.Equal(t, "input,option", o.Cancel)
}

func TestLoadOptionsEmpty(t *testing.T) {
	o, err := LoadOptions(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions().Filter, o.Filter)
}

func TestLoadOptionsErrors(t *testing.T) {
	_, err := LoadOptions(strings.NewReader("scroller: native\n"))
	assert.ErrorIs(t, err, ErrInvalidOption)

	_, err = LoadOptions(strings.NewReader("speed: 2\n"))
	assert.ErrorIs(t, err, ErrUnknownOption)

	_, err = LoadOptions(strings.NewReader("distance: [1, 2\n"))
	assert.Error(t, err)
}
