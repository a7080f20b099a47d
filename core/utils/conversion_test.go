package utils_test

import (
	"testing"

	"server-launcher/core/utils"

	"github.com/stretchr/testify/assert"
)

func TestParsePort(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    uint16
		wantErr bool
	}{
		{"Default", "7777", 7777, false},
		{"Padded", " 7778 ", 7778, false},
		{"Zero", "0", 0, false},
		{"Max", "65535", 65535, false},
		{"Overflow", "65536", 0, true},
		{"Negative", "-1", 0, true},
		{"Text", "abc", 0, true},
		{"Empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := utils.ParsePort(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseYesNo(t *testing.T) {
	tests := []struct {
		input  string
		answer bool
		ok     bool
	}{
		{"y", true, true},
		{"YES", true, true},
		{"true", true, true},
		{"n", false, true},
		{" No ", false, true},
		{"0", false, true},
		{"maybe", false, false},
		{"", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			answer, ok := utils.ParseYesNo(tt.input)
			assert.Equal(t, tt.answer, answer)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestToString(t *testing.T) {
	v := "/data"
	assert.Equal(t, "/data", utils.ToString(&v, "Default"))
	assert.Equal(t, "Default", utils.ToString(nil, "Default"))
}
