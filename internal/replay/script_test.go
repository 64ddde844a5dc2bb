package replay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/vkit/internal/slider"
	vkiterrors "github.com/alexisbeaulieu97/vkit/pkg/errors"
)

func TestDecodeScript(t *testing.T) {
	t.Parallel()

	data := []byte(`slider: price
track: {left: 10, width: 100}
events:
  - {type: down, x: 25, target: track}
  - {type: move, x: 40, pointer: 3, pointer_type: touch, primary: false}
  - type: up
    expect: {low: 20, dragging: false}
`)

	script, err := DecodeScript(data, "script.yaml")
	require.NoError(t, err)
	assert.Equal(t, "price", script.Slider)
	assert.Equal(t, Track{Left: 10, Width: 100}, script.Track)
	require.Len(t, script.Events, 3)

	down := script.Events[0].PointerEvent()
	assert.Equal(t, slider.PointerEvent{
		ClientX:     25,
		PointerID:   DefaultPointerID,
		Button:      slider.ButtonPrimary,
		PointerType: slider.PointerMouse,
		IsPrimary:   true,
	}, down)

	move := script.Events[1].PointerEvent()
	assert.Equal(t, 3, move.PointerID)
	assert.Equal(t, slider.PointerTouch, move.PointerType)
	assert.False(t, move.IsPrimary)

	assert.Equal(t, TargetAuto, script.Events[2].TargetName())
	require.NotNil(t, script.Events[2].Expect)
	assert.Equal(t, 20.0, *script.Events[2].Expect.Low)
}

func TestDecodeScriptErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		data      string
		wantField string
		wantParse bool
	}{
		{
			name:      "unknown event type",
			data:      "slider: a\nevents:\n  - {type: hover}\n",
			wantField: "events[0].type",
		},
		{
			name:      "unknown target",
			data:      "slider: a\nevents:\n  - {type: down, target: knob}\n",
			wantField: "events[0].target",
		},
		{
			name:      "negative track width",
			data:      "slider: a\ntrack: {width: -5}\nevents:\n  - {type: up}\n",
			wantField: "track.width",
		},
		{
			name:      "no events",
			data:      "slider: a\nevents: []\n",
			wantField: "events",
		},
		{
			name:      "missing slider",
			data:      "events:\n  - {type: up}\n",
			wantField: "slider",
		},
		{
			name:      "unknown key",
			data:      "slider: a\nspeed: 2\nevents:\n  - {type: up}\n",
			wantParse: true,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := DecodeScript([]byte(tc.data), "script.yaml")
			require.Error(t, err)

			if tc.wantParse {
				var parseErr *vkiterrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				return
			}

			var validationErr *vkiterrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.wantField, validationErr.Field)
		})
	}
}
