package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoolParseString(t *testing.T) {
	d := &BoolDescriptor{}

	tests := []struct {
		raw  string
		want bool
	}{
		{"0", false},
		{"1", true},
		{"true", true},
		{"false", false},
	}
	for _, tt := range tests {
		got, err := d.ParseString(tt.raw)
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}

	// Literals are case-sensitive; numbers other than 0/1 are not booleans.
	for _, raw := range []string{"True", "FALSE", "2", "-1", "yes", ""} {
		_, err := d.ParseString(raw)
		require.Error(t, err, raw)
		var perr *ParseError
		require.ErrorAs(t, err, &perr, raw)
		assert.Equal(t, KindBool, perr.Kind)
	}
}

func TestBoolFormatConfig(t *testing.T) {
	d := &BoolDescriptor{}
	assert.Equal(t, "true", d.FormatConfig(true))
	assert.Equal(t, "false", d.FormatConfig(false))
}

func TestBoolCoerce(t *testing.T) {
	d := &BoolDescriptor{}

	got, err := d.Coerce(1)
	require.NoError(t, err)
	assert.Equal(t, true, got)

	got, err = d.Coerce(float64(0))
	require.NoError(t, err)
	assert.Equal(t, false, got)

	_, err = d.Coerce(2)
	require.Error(t, err)
	_, err = d.Coerce("maybe")
	require.Error(t, err)
}

func TestIntValidateRange(t *testing.T) {
	d := &IntDescriptor{Range: DefaultIntRange()}

	require.NoError(t, d.Validate(int32(0)))
	require.NoError(t, d.Validate(int32(100)))

	err := d.Validate(int32(150))
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "greater than maximum 100")

	err = d.Validate(int32(-1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "less than minimum 0")
}

func TestIntParseString(t *testing.T) {
	d := &IntDescriptor{Range: DefaultIntRange()}

	got, err := d.ParseString("-17")
	require.NoError(t, err)
	assert.Equal(t, int32(-17), got)

	for _, raw := range []string{"1.5", "abc", "", "0x10"} {
		_, err := d.ParseString(raw)
		require.Error(t, err, raw)
	}
}

func TestFloatFormatRoundTrip(t *testing.T) {
	d := &FloatDescriptor{Range: DefaultFloatRange()}

	// Format must be the exact inverse of parse for every valid value.
	for _, raw := range []string{"0.5", "1", "0.02", "0.875"} {
		v, err := d.ParseString(raw)
		require.NoError(t, err, raw)
		back, err := d.ParseString(d.FormatConfig(v))
		require.NoError(t, err, raw)
		assert.Equal(t, v, back, raw)
	}

	assert.Equal(t, "0.5", d.FormatConfig(float32(0.5)))
	assert.Equal(t, "1", d.FormatConfig(float32(1)))
}

func TestFloatValidateRange(t *testing.T) {
	d := &FloatDescriptor{Range: DefaultFloatRange()}

	require.NoError(t, d.Validate(float32(0.5)))

	err := d.Validate(float32(1.5))
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestStringQuoting(t *testing.T) {
	d := &StringDescriptor{}

	assert.Equal(t, "plain", d.FormatConfig("plain"))
	assert.Equal(t, `"two words"`, d.FormatConfig("two words"))
	assert.Equal(t, `"a;b"`, d.FormatConfig("a;b"))

	// Parse strips exactly one quote layer, making the round trip exact.
	v, err := d.ParseString(`"two words"`)
	require.NoError(t, err)
	assert.Equal(t, "two words", v)

	v, err = d.ParseString("unquoted")
	require.NoError(t, err)
	assert.Equal(t, "unquoted", v)
}

func TestEnumValidate(t *testing.T) {
	opts := NewOptions()
	opts.Set("0", "Classic")
	opts.Set("1", "Modern")

	d := &EnumDescriptor{Options: opts}

	require.NoError(t, d.Validate("0"))
	require.NoError(t, d.Validate("1"))

	err := d.Validate("2")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "not an allowed option")
}

func TestEnumDefaultFirstOption(t *testing.T) {
	opts := NewOptions()
	opts.Set("radar", "Radar only")
	opts.Set("full", "Full map")

	d := &EnumDescriptor{Options: opts}
	assert.Equal(t, "radar", d.Default())

	def := "full"
	d.DefaultValue = &def
	assert.Equal(t, "full", d.Default())
}

func TestBitmaskAcceptsAnyMask(t *testing.T) {
	opts := NewOptions()
	opts.Set("1", "Grenades")
	opts.Set("2", "Bullets")

	d := &BitmaskDescriptor{Options: opts}

	v, err := d.ParseString("7")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), v)

	// Undocumented bits are tolerated.
	require.NoError(t, d.Validate(uint64(1024)))

	_, err = d.ParseString("-1")
	require.Error(t, err)
}

func TestUint32Coerce(t *testing.T) {
	d := &Uint32Descriptor{}

	got, err := d.Coerce(int64(4294967295))
	require.NoError(t, err)
	assert.Equal(t, uint32(4294967295), got)

	_, err = d.Coerce(int64(4294967296))
	require.Error(t, err)
	_, err = d.Coerce(-1)
	require.Error(t, err)
}

func TestUint64ParseString(t *testing.T) {
	d := &Uint64Descriptor{}

	got, err := d.ParseString("76561198000000000")
	require.NoError(t, err)
	assert.Equal(t, uint64(76561198000000000), got)

	_, err = d.ParseString("-3")
	require.Error(t, err)
}

func TestVector3Canonicalization(t *testing.T) {
	d := &Vector3Descriptor{}

	v, err := d.ParseString("1.50 2 3.0")
	require.NoError(t, err)
	assert.Equal(t, "1.5 2 3", v)

	// Quoted input parses the same.
	v, err = d.ParseString(`"1.50 2 3.0"`)
	require.NoError(t, err)
	assert.Equal(t, "1.5 2 3", v)

	assert.Equal(t, `"1.5 2 3"`, d.FormatConfig("1.5 2 3"))

	back, err := d.ParseString(d.FormatConfig(v))
	require.NoError(t, err)
	assert.Equal(t, v, back)
}

func TestVector3Arity(t *testing.T) {
	d := &Vector3Descriptor{}

	for _, raw := range []string{"1 2", "1 2 3 4", "", "1 x 3"} {
		_, err := d.ParseString(raw)
		require.Error(t, err, raw)
	}
}

func TestVector3ComponentRange(t *testing.T) {
	d := &Vector3Descriptor{Range: &Range{Min: boundOf(0), Max: boundOf(255)}}

	require.NoError(t, d.Validate("0 128 255"))

	err := d.Validate("0 300 10")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "component 2")
}

func TestVector2Arity(t *testing.T) {
	d := &Vector2Descriptor{}

	v, err := d.ParseString("0.5 0.5")
	require.NoError(t, err)
	assert.Equal(t, "0.5 0.5", v)

	_, err = d.ParseString("0.5")
	require.Error(t, err)
}

func TestActionDefaults(t *testing.T) {
	d := &ActionDescriptor{}

	assert.Equal(t, "", d.Default())

	v, err := d.ParseString(`"autoexec.cfg"`)
	require.NoError(t, err)
	assert.Equal(t, "autoexec.cfg", v)
	require.NoError(t, d.Validate(v))
}

func TestUnknownPassthrough(t *testing.T) {
	d := &UnknownDescriptor{}

	v, err := d.ParseString("120")
	require.NoError(t, err)
	assert.Equal(t, "120", v)
	assert.Equal(t, "120", d.FormatConfig(v))
}
