package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldValue_JSONScalars(t *testing.T) {
	tests := []struct {
		name string
		val  FieldValue
		want string
	}{
		{"Text", Text("Jane Doe"), `"Jane Doe"`},
		{"Number", Number(12500.5), `12500.5`},
		{"Bool", Bool(true), `true`},
		{"Date", Date(time.Date(2024, 3, 9, 15, 0, 0, 0, time.UTC)), `"2024-03-09"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.val)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))

			var back FieldValue
			require.NoError(t, json.Unmarshal(got, &back))
			assert.True(t, tt.val.Equal(back), "got %v (%s)", back, back.Kind())
		})
	}
}

func TestFieldValue_DecodeKeepsTextKind(t *testing.T) {
	var v FieldValue
	require.NoError(t, json.Unmarshal([]byte(`"2024-01-15"`), &v))
	assert.Equal(t, Text("2024-01-15"), v)

	d, err := ParseDate("2024-01-15")
	require.NoError(t, err)
	assert.True(t, d.Equal(v))
	assert.True(t, v.Equal(d))
	assert.False(t, Text("2024-01-16").Equal(d))
	assert.False(t, Number(1).Equal(Text("1")))
}

func TestFieldValue_UnmarshalEdgeCases(t *testing.T) {
	var v FieldValue

	require.NoError(t, json.Unmarshal([]byte(`null`), &v))
	assert.True(t, v.IsEmpty())

	require.NoError(t, json.Unmarshal([]byte(`"2024-13-45"`), &v))
	assert.Equal(t, ValueText, v.Kind())

	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &v))
	assert.Error(t, json.Unmarshal([]byte(`[1]`), &v))
}

func TestFieldValue_Accessors(t *testing.T) {
	n, ok := Number(3).AsNumber()
	assert.True(t, ok)
	assert.Equal(t, 3.0, n)

	_, ok = Text("3").AsNumber()
	assert.False(t, ok)

	d, err := ParseDate("2023-01-31")
	require.NoError(t, err)
	ts, ok := d.AsTime()
	assert.True(t, ok)
	assert.Equal(t, time.January, ts.Month())
	assert.Equal(t, "2023-01-31", d.String())

	_, err = ParseDate("31/01/2023")
	assert.Error(t, err)

	b, ok := Bool(false).AsBool()
	assert.True(t, ok)
	assert.False(t, b)
	assert.Equal(t, "false", Bool(false).String())
}

func TestFieldData_PreservesOrder(t *testing.T) {
	var d FieldData
	d.Set("zeta", Text("z"))
	d.Set("alpha", Number(1))
	d.Set("zeta", Text("z2"))

	assert.Equal(t, []string{"zeta", "alpha"}, d.Keys())

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":"z2","alpha":1}`, string(raw))

	var back FieldData
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, d, back)
	assert.True(t, d.Equal(back))
}

func TestFieldData_EmptyIsZero(t *testing.T) {
	var back FieldData
	require.NoError(t, json.Unmarshal([]byte(`{}`), &back))
	assert.Equal(t, FieldData{}, back)

	require.NoError(t, json.Unmarshal([]byte(`null`), &back))
	assert.Equal(t, FieldData{}, back)

	assert.Equal(t, FieldData{}, FieldData{}.Clone())

	raw, err := json.Marshal(FieldData{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(raw))
}

func TestFieldData_CloneIsIndependent(t *testing.T) {
	d := FieldsOf(Field{"a", Text("1")})
	c := d.Clone()
	c.Set("b", Text("2"))

	assert.Equal(t, 1, d.Len())
	assert.Equal(t, 2, c.Len())
	_, ok := d.Get("b")
	assert.False(t, ok)
}

func TestFieldData_RejectsNonObject(t *testing.T) {
	var d FieldData
	assert.Error(t, json.Unmarshal([]byte(`["a"]`), &d))
}
