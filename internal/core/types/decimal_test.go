package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantityInput_AcceptsNumbersAndStrings(t *testing.T) {
	var in struct {
		A QuantityInput `json:"a"`
		B QuantityInput `json:"b"`
		C QuantityInput `json:"c"`
		D QuantityInput `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 12.50, "b": "3,5", "c": null, "d": "abc"}`), &in))

	q, ok := in.A.Parse()
	assert.True(t, ok)
	assert.Equal(t, "12.5", q.String())

	q, ok = in.B.Parse()
	assert.True(t, ok)
	assert.Equal(t, "3.5", q.String())

	_, ok = in.C.Parse()
	assert.False(t, ok)

	_, ok = in.D.Parse()
	assert.False(t, ok)
}

func TestQuantityInput_RejectsNonPositive(t *testing.T) {
	for _, raw := range []QuantityInput{"0", "-1", "  ", "0.000"} {
		_, ok := raw.Parse()
		assert.False(t, ok, "input %q", raw)
	}
}

func TestPresentRoundsToTwoPlaces(t *testing.T) {
	assert.Equal(t, "0.17", Present(MustDecimal("0.16665")).StringFixed(2))
	assert.Equal(t, "-2.00", Present(MustDecimal("-2.004")).StringFixed(2))
}

func TestUnitOrDefault(t *testing.T) {
	assert.Equal(t, DefaultUnitType, UnitOrDefault(""))
	assert.Equal(t, DefaultUnitType, UnitOrDefault("   "))
	assert.Equal(t, "кор", UnitOrDefault(" кор "))
}
