package types

import (
	"encoding/binary"
	"fmt"
	"strings"
)

func init() {
	Text = &textType{}
}

// textType implements the TEXT data type (unbounded). This is the only
// string storage the transformer's catalog fixtures use (column defaults,
// history records); VARCHAR/CHAR length tracking has no caller and is not
// carried.
type textType struct{}

func (t *textType) Name() string {
	return "TEXT"
}

func (t *textType) Size() int {
	return -1 // Variable size
}

func (t *textType) Compare(a, b Value) int {
	if a.Null || b.Null {
		return CompareValues(a, b)
	}

	aStr := a.Data.(string)
	bStr := b.Data.(string)

	return strings.Compare(aStr, bStr)
}

func (t *textType) Serialize(v Value) ([]byte, error) {
	if v.Null {
		return nil, nil
	}

	str, ok := v.Data.(string)
	if !ok {
		return nil, fmt.Errorf("expected string, got %T", v.Data)
	}

	strLen := len(str)
	if strLen > 4294967295 { // uint32 max
		return nil, fmt.Errorf("string too long: %d bytes", strLen)
	}

	// Serialize as: [4 bytes length][string data]
	buf := make([]byte, 4+strLen)
	binary.BigEndian.PutUint32(buf[:4], uint32(strLen)) // nolint:gosec // Length checked above
	copy(buf[4:], str)

	return buf, nil
}

func (t *textType) Deserialize(data []byte) (Value, error) {
	if data == nil {
		return NewNullValue(), nil
	}

	if len(data) < 4 {
		return Value{}, fmt.Errorf("invalid TEXT data: too short")
	}

	length := binary.BigEndian.Uint32(data[:4])

	if len(data) < 4+int(length) {
		return Value{}, fmt.Errorf("invalid TEXT data: expected %d bytes, got %d", 4+length, len(data))
	}

	str := string(data[4 : 4+length])
	return NewValue(str), nil
}

func (t *textType) IsValid(v Value) bool {
	if v.Null {
		return true
	}

	_, ok := v.Data.(string)
	return ok
}

func (t *textType) Zero() Value {
	return NewValue("")
}

// NewTextValue creates a new TEXT value.
func NewTextValue(s string) Value {
	return NewValue(s)
}
