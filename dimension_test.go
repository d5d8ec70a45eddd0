package gridcss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDimension(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "percentage", input: "25%", want: "25%"},
		{name: "fractional percentage", input: "33.5%", want: "33.5%"},
		{name: "pixels", input: "20px", want: "20px"},
		{name: "rem", input: "1.5rem", want: "1.5rem"},
		{name: "uppercase unit normalized", input: "2EM", want: "2em"},
		{name: "scientific notation", input: "1e2px", want: "100px"},
		{name: "negative length", input: "-5px", want: "-5px"},
		{name: "zero", input: "0", want: "0"},
		{name: "bare number", input: "12", want: "12"},
		{name: "auto keyword", input: "auto", want: "auto"},
		{name: "auto mixed case", input: "Auto", want: "auto"},
		{name: "surrounding whitespace", input: "  10px  ", want: "10px"},
		{name: "empty", input: "", wantErr: true},
		{name: "blank", input: "   ", wantErr: true},
		{name: "garbage", input: "wide", wantErr: true},
		{name: "trailing input", input: "10px 20px", wantErr: true},
		{name: "space before unit", input: "10 px", wantErr: true},
		{name: "string value", input: `"10px"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDimension(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestParseDimensionKinds(t *testing.T) {
	pct, err := ParseDimension("25%")
	require.NoError(t, err)
	assert.True(t, pct.IsPercent())
	assert.Equal(t, 25.0, pct.Value())
	assert.Equal(t, "%", pct.Unit())

	rem, err := ParseDimension("1.5rem")
	require.NoError(t, err)
	assert.Equal(t, KindQuantity, rem.Kind())
	assert.False(t, rem.IsPercent())
	assert.Equal(t, "rem", rem.Unit())

	auto, err := ParseDimension("auto")
	require.NoError(t, err)
	assert.Equal(t, KindAuto, auto.Kind())

	zero, err := ParseDimension("0")
	require.NoError(t, err)
	assert.True(t, zero.IsZero())
	assert.False(t, zero.Positive())
}

func TestDimensionArithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Dimension
		want string
	}{
		{
			name: "same unit folds to quantity",
			got:  Percent(25).Sub(Percent(3.75)),
			want: "21.25%",
		},
		{
			name: "mixed units stay deferred",
			got:  Percent(25).Sub(Length(15.1, "px")),
			want: "calc(25% - 15.1px)",
		},
		{
			name: "addition keeps sign",
			got:  Percent(100).Add(Length(40, "px")),
			want: "calc(100% + 40px)",
		},
		{
			name: "terms cancel to zero",
			got:  Length(10, "px").Sub(Length(10, "px")),
			want: "0",
		},
		{
			name: "zero terms drop out of expressions",
			got:  Percent(100).Sub(Length(0, "px")).Sub(Length(0.1, "px")),
			want: "calc(100% - 0.1px)",
		},
		{
			name: "scale",
			got:  Length(20, "px").Scale(0.75),
			want: "15px",
		},
		{
			name: "scale expression scales all terms",
			got:  Percent(50).Add(Length(10, "px")).Scale(2),
			want: "calc(100% + 20px)",
		},
		{
			name: "neg",
			got:  Length(20, "px").Neg(),
			want: "-20px",
		},
		{
			name: "auto absorbs",
			got:  Auto().Sub(Length(5, "px")),
			want: "auto",
		},
		{
			name: "chained subtraction folds per unit",
			got:  Percent(25).Sub(Length(15, "px")).Sub(Length(0.1, "px")),
			want: "calc(25% - 15.1px)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got.String())
		})
	}
}

func TestDimensionString(t *testing.T) {
	tests := []struct {
		name string
		d    Dimension
		want string
	}{
		{name: "zero renders bare", d: Length(0, "px"), want: "0"},
		{name: "zero value", d: Dimension{}, want: "0"},
		{name: "auto", d: Auto(), want: "auto"},
		{name: "long fractions trim to five places", d: Percent(100.0 / 3), want: "33.33333%"},
		{name: "trailing zeros trimmed", d: Length(1.50, "rem"), want: "1.5rem"},
		{name: "mixed unit order follows operands", d: Length(5, "px").Sub(Percent(50)), want: "calc(5px - 50%)"},
		{name: "negative leading expr term", d: Length(5, "px").Neg().Sub(Percent(50)), want: "calc(-5px - 50%)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.String())
		})
	}
}
