package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("NE_STRING", "  value ")
	assert.Equal(t, "value", GetEnvString("NE_STRING", "default"))

	t.Setenv("NE_STRING", "   ")
	assert.Equal(t, "default", GetEnvString("NE_STRING", "default"))
	assert.Equal(t, "default", GetEnvString("NE_STRING_UNSET", "default"))
}

func TestGetEnvNumbers(t *testing.T) {
	t.Setenv("NE_INT", "42")
	t.Setenv("NE_INT64", "1048576")
	t.Setenv("NE_FLOAT", "2.5")
	assert.Equal(t, 42, GetEnvInt("NE_INT", 1))
	assert.Equal(t, int64(1048576), GetEnvInt64("NE_INT64", 1))
	assert.InDelta(t, 2.5, GetEnvFloat("NE_FLOAT", 1), 1e-9)

	t.Setenv("NE_INT", "4.2")
	t.Setenv("NE_FLOAT", "fast")
	assert.Equal(t, 1, GetEnvInt("NE_INT", 1))
	assert.InDelta(t, 1.0, GetEnvFloat("NE_FLOAT", 1), 1e-9)
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value string
		def   bool
		want  bool
	}{
		{value: "true", def: false, want: true},
		{value: "1", def: false, want: true},
		{value: "FALSE", def: true, want: false},
		{value: "maybe", def: true, want: true},
		{value: "", def: true, want: true},
	}
	for _, tt := range tests {
		t.Setenv("NE_BOOL", tt.value)
		assert.Equal(t, tt.want, GetEnvBool("NE_BOOL", tt.def), "value %q", tt.value)
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("NE_DURATION", "168h")
	assert.Equal(t, 7*24*time.Hour, GetEnvDuration("NE_DURATION", time.Second))

	t.Setenv("NE_DURATION", "7d")
	assert.Equal(t, time.Second, GetEnvDuration("NE_DURATION", time.Second))
}

func TestGetEnvStringList(t *testing.T) {
	t.Setenv("NE_LIST", "https://a.example, ,https://b.example ")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, GetEnvStringList("NE_LIST", nil))

	t.Setenv("NE_LIST", " , ")
	assert.Equal(t, []string{"x"}, GetEnvStringList("NE_LIST", []string{"x"}))
}

func TestValidateDurations(t *testing.T) {
	assert.NoError(t, ValidatePositiveDuration(time.Second))
	assert.Error(t, ValidatePositiveDuration(0))

	assert.NoError(t, ValidateDurationRange(time.Hour, time.Minute, 24*time.Hour))
	assert.Error(t, ValidateDurationRange(time.Second, time.Minute, time.Hour))
	assert.Error(t, ValidateDurationRange(2*time.Hour, time.Minute, time.Hour))
	assert.Error(t, ValidateDurationRange(time.Minute, time.Hour, time.Minute))
}
