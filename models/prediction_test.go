package models

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPredictionInput(t *testing.T) {
	want := PredictionInput{Season: 1, Workingday: 1, Weathersit: 1}
	if diff := cmp.Diff(want, DefaultPredictionInput()); diff != "" {
		t.Fatalf("DefaultPredictionInput() mismatch (-want +got):\n%s", diff)
	}
}

func TestPredictionInput_SetOnlyTouchesOneField(t *testing.T) {
	in := DefaultPredictionInput()
	require.NoError(t, in.Set(FieldHumidity, 65))

	want := DefaultPredictionInput()
	want.Humidity = 65
	if diff := cmp.Diff(want, in); diff != "" {
		t.Fatalf("Set(humidity) mismatch (-want +got):\n%s", diff)
	}
}

func TestPredictionInput_SetGetEveryField(t *testing.T) {
	var in PredictionInput
	for i, name := range FieldNames {
		require.NoError(t, in.Set(name, float64(i+1)))
	}
	for i, name := range FieldNames {
		got, err := in.Get(name)
		require.NoError(t, err)
		assert.Equal(t, float64(i+1), got, name)
	}
}

func TestPredictionInput_UnknownField(t *testing.T) {
	in := DefaultPredictionInput()
	assert.Error(t, in.Set("pressure", 1013))
	_, err := in.Get("pressure")
	assert.Error(t, err)
}

func TestPredictionInput_JSONHasAllTenFields(t *testing.T) {
	b, err := json.Marshal(DefaultPredictionInput())
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(b, &body))
	assert.Len(t, body, len(FieldNames))
	for _, name := range FieldNames {
		assert.Contains(t, body, name)
	}
	assert.Equal(t, float64(1), body[FieldSeason])
	assert.Equal(t, float64(0), body[FieldTemp])
}

func TestDefaultFormOptions(t *testing.T) {
	opts := DefaultFormOptions()
	require.Len(t, opts.Hours, 24)
	assert.Equal(t, "00:00", opts.Hours[0].Label)
	assert.Equal(t, "23:00", opts.Hours[23].Label)
	assert.Equal(t, "Sunday", opts.Weekdays[0].Label)
	assert.Equal(t, 4, opts.WeatherSituations[3].Value)
	assert.Equal(t, "Heavy Rain/Snow", opts.WeatherSituations[3].Label)
}
