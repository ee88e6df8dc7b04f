package mappings

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_FreshValue(t *testing.T) {
	a := Default()
	b := Default()
	require.NotSame(t, a, b)

	a.Global.Debounce = 400
	assert.Equal(t, MinDebounceTime, b.Global.Debounce, "defaults must not be shared")
	assert.Equal(t, MinComboWindow, Default().Global.ComboWindow)
	assert.False(t, Default().Global.Microphone)
	assert.False(t, Default().HasRhythms())
}

func TestOptional(t *testing.T) {
	var unset Optional[Delay]
	_, ok := unset.Get()
	assert.False(t, ok)
	assert.Equal(t, Delay(20), unset.OrDefault(20))

	set := Some(Delay(150))
	v, ok := set.Get()
	assert.True(t, ok)
	assert.Equal(t, Delay(150), v)
	assert.Equal(t, Delay(150), set.OrDefault(20))
}

func TestOptional_JSON(t *testing.T) {
	data, err := json.Marshal([]Optional[Delay]{Some(Delay(150)), {}})
	require.NoError(t, err)
	assert.JSONEq(t, `[150, null]`, string(data))

	var decoded []Optional[Delay]
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, []Optional[Delay]{Some(Delay(150)), {}}, decoded)
}

func TestRhythm_JSONRoundTrip(t *testing.T) {
	r := Rhythm{
		Character: '$',
		Beats: []Beat{
			{Input: BackLeftBongo, Delay: Some(Delay(150))},
			{Input: ClapMicrophone},
		},
	}

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"character":"$","beats":[{"input":"BLB","delay":150},{"input":"MIC","delay":null}]}`, string(data))

	var decoded Rhythm
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, r, decoded)

	require.Error(t, json.Unmarshal([]byte(`{"character":"ab","beats":[]}`), &decoded))
}

func TestSettings_Clone(t *testing.T) {
	s := &Settings{
		Global: GlobalSettings{Debounce: 50, ComboWindow: 200},
		Freestyle: []Rhythm{
			{Character: 'a', Beats: []Beat{{Input: BackLeftBongo}}},
		},
	}

	c := s.Clone()
	assert.Equal(t, s, c)

	c.Freestyle[0].Beats[0].Input = ClapMicrophone
	c.Global.Debounce = 60
	assert.Equal(t, BackLeftBongo, s.Freestyle[0].Beats[0].Input)
	assert.Equal(t, 50, s.Global.Debounce)

	assert.Nil(t, Default().Clone().Freestyle)
}

func TestSettings_Rhythm(t *testing.T) {
	s := &Settings{Freestyle: []Rhythm{{Character: 'a'}, {Character: 'b'}}}

	r, ok := s.Rhythm('b')
	require.True(t, ok)
	assert.Equal(t, byte('b'), r.Character)

	_, ok = s.Rhythm('z')
	assert.False(t, ok)
}

func TestRhythm_Timing(t *testing.T) {
	r := Rhythm{Beats: []Beat{
		{Input: BackLeftBongo, Delay: Some(Delay(100))},
		{Input: FrontLeftBongo, Delay: Some(Delay(250))},
		{Input: StartPauseButton},
	}}

	assert.Equal(t, []Delay{100, 250}, r.Delays())
	assert.Equal(t, 350*time.Millisecond, r.Length())
	assert.False(t, r.UsesMicrophone())
	assert.Equal(t, 250*time.Millisecond, Delay(250).Duration())
}
