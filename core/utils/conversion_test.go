package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	assert.Equal(t, 7, ToInt(7))
	assert.Equal(t, 7, ToInt(int64(7)))
	assert.Equal(t, 7, ToInt(7.9))
	assert.Equal(t, 7, ToInt("7"))
	assert.Equal(t, 7, ToInt(json.Number("7")))
	assert.Equal(t, 0, ToInt("not a number"))
}

func TestToFloat(t *testing.T) {
	assert.Equal(t, 3.5, ToFloat(3.5))
	assert.Equal(t, 3.0, ToFloat(3))
	assert.Equal(t, 3.5, ToFloat("3.5"))
	assert.Equal(t, 3.5, ToFloat(json.Number("3.5")))
	assert.Equal(t, 0.0, ToFloat(struct{}{}))
}

func TestToString(t *testing.T) {
	assert.Equal(t, "hello", ToString("hello"))
	assert.Equal(t, "7", ToString(7))
	// Whole floats render without the decimal part
	assert.Equal(t, "7", ToString(7.0))
	assert.Equal(t, "7.5", ToString(7.5))
	assert.Equal(t, "7", ToString(json.Number("7")))
	assert.Equal(t, "true", ToString(true))
}

func TestToBool(t *testing.T) {
	assert.True(t, ToBool(true))
	assert.True(t, ToBool(1))
	assert.True(t, ToBool("true"))
	assert.True(t, ToBool("1"))
	assert.False(t, ToBool("no"))
	assert.False(t, ToBool(0))
	assert.False(t, ToBool(nil))
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(nil))
	assert.True(t, IsEmpty(""))
	assert.False(t, IsEmpty("0"))
	assert.False(t, IsEmpty(0))
	assert.False(t, IsEmpty(false))
}
