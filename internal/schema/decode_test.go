package schema

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDescriptorDispatch(t *testing.T) {
	tests := []struct {
		json string
		kind ValueKind
	}{
		{`{"type":"bool"}`, KindBool},
		{`{"type":"Bool"}`, KindBool},
		{`{"type":"FLOAT"}`, KindFloat},
		{`{"type":"string"}`, KindString},
		{`{"type":"color"}`, KindColor},
		{`{"type":"uint32"}`, KindUint32},
		{`{"type":"uint64"}`, KindUint64},
		{`{"type":"vector2"}`, KindVector2},
		{`{"type":"vector3"}`, KindVector3},
		{`{"type":"unknown"}`, KindUnknown},
		{`{"type":"action"}`, KindAction},
	}
	for _, tt := range tests {
		d, err := DecodeDescriptor([]byte(tt.json))
		require.NoError(t, err, tt.json)
		assert.Equal(t, tt.kind, d.Kind(), tt.json)
	}
}

func TestDecodeDescriptorMissingType(t *testing.T) {
	for _, in := range []string{`{}`, `{"label":"x"}`, `{"type":"vector4"}`} {
		_, err := DecodeDescriptor([]byte(in))
		require.Error(t, err, in)
		assert.True(t, IsDecodeError(err), in)
	}
}

func TestDecodeIntInjectsDefaultRange(t *testing.T) {
	d, err := DecodeDescriptor([]byte(`{"type":"int","default":5}`))
	require.NoError(t, err)

	id, ok := d.(*IntDescriptor)
	require.True(t, ok)
	require.NotNil(t, id.Range)
	assert.Equal(t, float64(0), *id.Range.Min)
	assert.Equal(t, float64(100), *id.Range.Max)
	assert.Equal(t, float64(1), *id.Range.Step)
}

func TestDecodeFloatInjectsDefaultRange(t *testing.T) {
	d, err := DecodeDescriptor([]byte(`{"type":"float"}`))
	require.NoError(t, err)

	fd, ok := d.(*FloatDescriptor)
	require.True(t, ok)
	require.NotNil(t, fd.Range)
	assert.Equal(t, float64(0), *fd.Range.Min)
	assert.Equal(t, float64(1), *fd.Range.Max)
	assert.Equal(t, float64(0.01), *fd.Range.Step)
}

func TestDecodeIntKeepsDeclaredRange(t *testing.T) {
	d, err := DecodeDescriptor([]byte(`{"type":"int","range":{"min":-10,"max":10}}`))
	require.NoError(t, err)

	id := d.(*IntDescriptor)
	assert.Equal(t, float64(-10), *id.Range.Min)
	assert.Equal(t, float64(10), *id.Range.Max)
	assert.Nil(t, id.Range.Step)
}

func TestDecodeEnumRequiresOptions(t *testing.T) {
	_, err := DecodeDescriptor([]byte(`{"type":"enum"}`))
	require.Error(t, err)
	assert.True(t, IsDecodeError(err))
	assert.Contains(t, err.Error(), "options")

	_, err = DecodeDescriptor([]byte(`{"type":"bitmask"}`))
	require.Error(t, err)
	assert.True(t, IsDecodeError(err))
}

func TestDecodeEnumPreservesOptionOrder(t *testing.T) {
	in := `{"type":"enum","options":{"z":"Last alpha","a":"First alpha","m":"Middle"},"default":"m"}`
	d, err := DecodeDescriptor([]byte(in))
	require.NoError(t, err)

	ed := d.(*EnumDescriptor)
	var keys []string
	for pair := ed.Options.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	assert.Equal(t, []string{"z", "a", "m"}, keys)

	// Encode preserves the same object order.
	out, err := EncodeDescriptor(d)
	require.NoError(t, err)
	zi := bytes.Index(out, []byte(`"z"`))
	ai := bytes.Index(out, []byte(`"a"`))
	mi := bytes.Index(out, []byte(`"m"`))
	require.NotEqual(t, -1, zi)
	require.NotEqual(t, -1, ai)
	require.NotEqual(t, -1, mi)
	assert.Less(t, zi, ai)
	assert.Less(t, ai, mi)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	def := int32(3)
	orig := &IntDescriptor{
		Meta:         Meta{Label: "Crosshair style", RequiresCheats: false},
		Range:        &Range{Min: boundOf(0), Max: boundOf(5), Step: boundOf(1)},
		DefaultValue: &def,
	}

	data, err := EncodeDescriptor(orig)
	require.NoError(t, err)

	back, err := DecodeDescriptor(data)
	require.NoError(t, err)
	assert.Equal(t, orig, back)
}

func TestCommandDefinitionJSON(t *testing.T) {
	in := `{
		"command": "cl_crosshairstyle",
		"consoleData": {
			"defaultValue": "4",
			"flags": ["a", "cl"],
			"description": "Crosshair style"
		},
		"typeDescriptor": {"type": "int", "range": {"min": 0, "max": 5}, "default": 4}
	}`

	var def CommandDefinition
	require.NoError(t, json.Unmarshal([]byte(in), &def))

	assert.Equal(t, "cl_crosshairstyle", def.Command)
	assert.True(t, def.Console.HasFlag("cl"))
	assert.Equal(t, KindInt, def.Type.Kind())
	assert.Equal(t, int32(4), def.DefaultValue())

	out, err := json.Marshal(def)
	require.NoError(t, err)

	var back CommandDefinition
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, def.Command, back.Command)
	assert.Equal(t, def.Type, back.Type)
}

func TestCommandDefinitionRejectsMissingFields(t *testing.T) {
	var def CommandDefinition

	err := json.Unmarshal([]byte(`{"consoleData":{},"typeDescriptor":{"type":"bool"}}`), &def)
	require.Error(t, err)
	assert.True(t, IsDecodeError(err))

	err = json.Unmarshal([]byte(`{"command":"x","consoleData":{}}`), &def)
	require.Error(t, err)
	assert.True(t, IsDecodeError(err))
}

func TestCommandDefinitionDefaultFallsBack(t *testing.T) {
	// A console default the descriptor cannot coerce falls back to the
	// kind default instead of failing.
	bogus := "not-a-number"
	def := CommandDefinition{
		Command: "sv_example",
		Console: ConsoleData{DefaultValue: &bogus},
		Type:    &IntDescriptor{Range: DefaultIntRange()},
	}
	assert.Equal(t, int32(0), def.DefaultValue())
}
