package server_test

import (
	"encoding/json"
	"testing"

	"server-launcher/core/server"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaunchArgs_SetKeepsOrder(t *testing.T) {
	var a server.LaunchArgs
	a.Set("-b", "2")
	a.Set("-a", "1")
	a.Set("-b", "9")

	assert.Equal(t, []string{"-b", "-a"}, a.Keys())
	v, ok := a.Get("-b")
	assert.True(t, ok)
	assert.Equal(t, "9", v)
}

func TestLaunchArgs_Add(t *testing.T) {
	var a server.LaunchArgs
	require.NoError(t, a.Add("-a", ""))

	err := a.Add("-a", "again")
	assert.ErrorIs(t, err, server.ErrArgExists)

	err = a.Add("  ", "x")
	assert.ErrorIs(t, err, server.ErrBlankArgKey)

	v, _ := a.Get("-a")
	assert.Equal(t, "", v)
}

func TestLaunchArgs_Rename(t *testing.T) {
	t.Run("KeepsValueAndDropsOldKey", func(t *testing.T) {
		a := server.NewLaunchArgs(
			server.Arg{Key: "-a", Value: "1"},
			server.Arg{Key: "-b", Value: "2"},
			server.Arg{Key: "-c", Value: "3"},
		)

		require.NoError(t, a.Rename("-b", "-z"))

		assert.False(t, a.Has("-b"))
		v, ok := a.Get("-z")
		assert.True(t, ok)
		assert.Equal(t, "2", v)
		assert.Equal(t, []string{"-a", "-z", "-c"}, a.Keys())
		assert.Equal(t, 3, a.Len())
	})

	t.Run("UnknownKey", func(t *testing.T) {
		var a server.LaunchArgs
		assert.ErrorIs(t, a.Rename("-x", "-y"), server.ErrArgNotFound)
	})

	t.Run("OntoExistingKey", func(t *testing.T) {
		a := server.NewLaunchArgs(server.Arg{Key: "-a", Value: "1"}, server.Arg{Key: "-b", Value: "2"})

		assert.ErrorIs(t, a.Rename("-a", "-b"), server.ErrArgExists)
		v, _ := a.Get("-a")
		assert.Equal(t, "1", v)
	})

	t.Run("SameKey", func(t *testing.T) {
		a := server.NewLaunchArgs(server.Arg{Key: "-a", Value: "1"})
		assert.NoError(t, a.Rename("-a", "-a"))
		assert.Equal(t, 1, a.Len())
	})
}

func TestLaunchArgs_Delete(t *testing.T) {
	a := server.NewLaunchArgs(server.Arg{Key: "-a", Value: "1"}, server.Arg{Key: "-b", Value: "2"})
	clone := a.Clone()

	assert.True(t, a.Delete("-a"))
	assert.False(t, a.Delete("-a"))
	assert.Equal(t, []string{"-b"}, a.Keys())
	assert.Equal(t, []string{"-a", "-b"}, clone.Keys())
}

func TestLaunchArgs_Update(t *testing.T) {
	a := server.NewLaunchArgs(server.Arg{Key: "-a", Value: "1"})

	require.NoError(t, a.Update("-a", ""))
	v, _ := a.Get("-a")
	assert.Equal(t, "", v)
	assert.ErrorIs(t, a.Update("-b", "x"), server.ErrArgNotFound)
}

func TestLaunchArgs_JSONPreservesOrder(t *testing.T) {
	doc := `{"-z":"26","-a":"1","-m":""}`

	var a server.LaunchArgs
	require.NoError(t, json.Unmarshal([]byte(doc), &a))
	assert.Equal(t, []string{"-z", "-a", "-m"}, a.Keys())

	out, err := json.Marshal(a)
	require.NoError(t, err)
	assert.Equal(t, doc, string(out))
}

func TestLaunchArgs_UnmarshalEdgeCases(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		want    []server.Arg
		wantErr bool
	}{
		{"Null", `null`, []server.Arg{}, false},
		{"Empty", `{}`, []server.Arg{}, false},
		{"NullValue", `{"-a":null}`, []server.Arg{{Key: "-a", Value: ""}}, false},
		{"DuplicateKeyLastWins", `{"-a":"1","-a":"2"}`, []server.Arg{{Key: "-a", Value: "2"}}, false},
		{"Array", `["-a"]`, nil, true},
		{"NumberValue", `{"-maxplayers":20}`, []server.Arg{{Key: "-maxplayers", Value: "20"}}, false},
		{"FloatValue", `{"-scale":1.50}`, []server.Arg{{Key: "-scale", Value: "1.50"}}, false},
		{"BoolValue", `{"-batchmode":true}`, []server.Arg{{Key: "-batchmode", Value: "true"}}, false},
		{"ArrayValue", `{"-a":["x"]}`, nil, true},
		{"ObjectValue", `{"-a":{"x":"y"}}`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a server.LaunchArgs
			err := json.Unmarshal([]byte(tt.doc), &a)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.Pairs())
		})
	}
}

func TestLaunchArgs_String(t *testing.T) {
	var empty server.LaunchArgs
	assert.Equal(t, "", empty.String())

	a := server.NewLaunchArgs(server.Arg{Key: "-a", Value: "1"}, server.Arg{Key: "-b", Value: "2"})
	assert.Equal(t, "-a 1 -b 2", a.String())
}
