package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain amount", input: "25.50", want: "25.50"},
		{name: "negative amount", input: "-3.10", want: "-3.10"},
		{name: "integer amount", input: "100", want: "100.00"},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMoneyFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.String())
		})
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := NewMoneyFromFloat(10.25)
	b := NewMoneyFromFloat(4.75)

	assert.Equal(t, "15.00", a.Add(b).String())
	assert.Equal(t, "5.50", a.Subtract(b).String())
	assert.Equal(t, "20.50", a.MultiplyByInt(2).String())
	assert.Equal(t, "-10.25", a.Negate().String())
	assert.True(t, b.LessThan(a))
	assert.True(t, a.GreaterThan(b))
	assert.True(t, a.Subtract(a).IsZero())
}

func TestMoneyRound2(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "no rounding needed", input: "12.34", want: "12.34"},
		{name: "rounds down", input: "12.344", want: "12.34"},
		{name: "rounds up", input: "12.346", want: "12.35"},
		{name: "half rounds away from zero", input: "12.345", want: "12.35"},
		{name: "negative half rounds away from zero", input: "-12.345", want: "-12.35"},
		{name: "long tail", input: "0.005", want: "0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMoneyFromString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Round2().String())
		})
	}
}

func TestMoneyPercentage(t *testing.T) {
	m := NewMoneyFromFloat(200)
	p := m.Percentage(decimal.NewFromFloat(12.5)).Round2()
	assert.Equal(t, "25.00", p.String())
}

func TestMoneyJSON(t *testing.T) {
	m := NewMoneyFromFloat(255)
	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, "255.00", string(data))

	var fromNumber Money
	require.NoError(t, json.Unmarshal([]byte("19.99"), &fromNumber))
	assert.Equal(t, "19.99", fromNumber.String())

	var fromString Money
	require.NoError(t, json.Unmarshal([]byte(`"7.25"`), &fromString))
	assert.Equal(t, "7.25", fromString.String())

	var bad Money
	assert.Error(t, json.Unmarshal([]byte(`"nope"`), &bad))
}
