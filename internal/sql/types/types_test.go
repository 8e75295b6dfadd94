package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntegerTypes(t *testing.T) {
	t.Run("INTEGER", func(t *testing.T) {
		assert.Equal(t, "INTEGER", Integer.Name())
		assert.Equal(t, 4, Integer.Size())

		v1 := NewIntegerValue(42)
		v2 := NewIntegerValue(-10)
		v3 := NewNullValue()

		assert.Equal(t, 1, Integer.Compare(v1, v2))
		assert.Equal(t, -1, Integer.Compare(v2, v1))
		assert.Equal(t, 0, Integer.Compare(v1, v1))
		assert.Equal(t, -1, Integer.Compare(v3, v1))

		data, err := Integer.Serialize(v1)
		assert.NoError(t, err)
		assert.Equal(t, 4, len(data))

		v4, err := Integer.Deserialize(data)
		assert.NoError(t, err)
		assert.Equal(t, int32(42), v4.Data)

		nullData, err := Integer.Serialize(v3)
		assert.NoError(t, err)
		assert.Equal(t, 0, len(nullData))

		v5, err := Integer.Deserialize(nil)
		assert.NoError(t, err)
		assert.True(t, v5.IsNull(), "should be null")
	})

	t.Run("BIGINT", func(t *testing.T) {
		assert.Equal(t, "BIGINT", BigInt.Name())
		assert.Equal(t, 8, BigInt.Size())

		v1 := NewBigIntValue(int64(1234567890123456))
		data, err := BigInt.Serialize(v1)
		assert.NoError(t, err)
		assert.Equal(t, 8, len(data))

		v2, err := BigInt.Deserialize(data)
		assert.NoError(t, err)
		assert.Equal(t, int64(1234567890123456), v2.Data)
	})

	t.Run("SMALLINT", func(t *testing.T) {
		assert.Equal(t, "SMALLINT", SmallInt.Name())
		assert.Equal(t, 2, SmallInt.Size())

		v1 := NewSmallIntValue(int16(32767))
		data, err := SmallInt.Serialize(v1)
		assert.NoError(t, err)
		assert.Equal(t, 2, len(data))

		v2, err := SmallInt.Deserialize(data)
		assert.NoError(t, err)
		assert.Equal(t, int16(32767), v2.Data)
	})
}

func TestTextType(t *testing.T) {
	assert.Equal(t, "TEXT", Text.Name())
	assert.Equal(t, -1, Text.Size())

	longStr := "w_street_1 addresses do not fit a fixed-width column"
	v1 := NewTextValue(longStr)

	data, err := Text.Serialize(v1)
	assert.NoError(t, err)

	v2, err := Text.Deserialize(data)
	assert.NoError(t, err)
	assert.Equal(t, longStr, v2.Data)
}

func TestBooleanType(t *testing.T) {
	assert.Equal(t, "BOOLEAN", Boolean.Name())
	assert.Equal(t, 1, Boolean.Size())

	vTrue := NewBooleanValue(true)
	vFalse := NewBooleanValue(false)

	assert.Equal(t, -1, Boolean.Compare(vFalse, vTrue))
	assert.Equal(t, 1, Boolean.Compare(vTrue, vFalse))
	assert.Equal(t, 0, Boolean.Compare(vTrue, vTrue))

	dataTrue, err := Boolean.Serialize(vTrue)
	assert.NoError(t, err)
	assert.Equal(t, []byte{1}, dataTrue)

	dataFalse, err := Boolean.Serialize(vFalse)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0}, dataFalse)

	v1, err := Boolean.Deserialize(dataTrue)
	assert.NoError(t, err)
	assert.Equal(t, true, v1.Data)

	v2, err := Boolean.Deserialize(dataFalse)
	assert.NoError(t, err)
	assert.Equal(t, false, v2.Data)
}

func TestFloatTypes(t *testing.T) {
	t.Run("FLOAT", func(t *testing.T) {
		assert.Equal(t, "FLOAT", Float.Name())
		v1 := NewValue(float32(1234.5))
		data, err := Float.Serialize(v1)
		assert.NoError(t, err)
		assert.Equal(t, 4, len(data))

		v2, err := Float.Deserialize(data)
		assert.NoError(t, err)
		assert.Equal(t, float32(1234.5), v2.Data)
	})

	t.Run("DOUBLE PRECISION", func(t *testing.T) {
		assert.Equal(t, "DOUBLE PRECISION", Double.Name())
		v1 := NewValue(1234.5)
		data, err := Double.Serialize(v1)
		assert.NoError(t, err)
		assert.Equal(t, 8, len(data))

		v2, err := Double.Deserialize(data)
		assert.NoError(t, err)
		assert.Equal(t, 1234.5, v2.Data)
	})
}

func TestNullHandling(t *testing.T) {
	nullVal := NewNullValue()
	assert.True(t, nullVal.IsNull(), "should be null")
	assert.Equal(t, "NULL", nullVal.String())

	allTypes := []DataType{
		Integer, BigInt, SmallInt, Boolean, Text, Float, Double,
	}

	for _, dt := range allTypes {
		data, err := dt.Serialize(nullVal)
		assert.NoError(t, err)
		assert.True(t, data == nil || len(data) == 0, "null should serialize to nil or empty")

		val, err := dt.Deserialize(nil)
		assert.NoError(t, err)
		assert.True(t, val.IsNull(), "should deserialize to null")

		assert.True(t, dt.IsValid(nullVal), "null should be valid")

		nonNull := dt.Zero()
		assert.Equal(t, 1, dt.Compare(nonNull, nullVal))
		assert.Equal(t, -1, dt.Compare(nullVal, nonNull))
		assert.Equal(t, 0, dt.Compare(nullVal, nullVal))
	}
}

func TestValueType(t *testing.T) {
	assert.Equal(t, Integer, NewIntegerValue(1).Type())
	assert.Equal(t, BigInt, NewBigIntValue(1).Type())
	assert.Equal(t, SmallInt, NewSmallIntValue(1).Type())
	assert.Equal(t, Text, NewTextValue("x").Type())
	assert.Equal(t, Boolean, NewBooleanValue(true).Type())
	assert.Equal(t, Float, NewValue(float32(1)).Type())
	assert.Equal(t, Double, NewValue(float64(1)).Type())
	assert.Equal(t, Unknown, NewNullValue().Type())
}
