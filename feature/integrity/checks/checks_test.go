package checks

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"server-launcher/core/server"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(name string, port uint16, include bool) *server.Entry {
	e := server.NewEntry()
	e.Name = name
	e.Port = port
	e.IncludeInLaunchAll = include
	return e
}

func TestCheckExecutable(t *testing.T) {
	dir := t.TempDir()
	name := "LocalAdmin"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}

	res := CheckExecutable(name, []string{dir})
	assert.Error(t, res.Err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"), 0o755))
	res = CheckExecutable(name, []string{dir})
	require.NoError(t, res.Err)
	assert.Equal(t, filepath.Join(dir, name), res.Path)
}

func TestCheckPorts(t *testing.T) {
	cfg := server.NewConfiguration()
	cfg.AddServer(entry("A", 7778, true))
	cfg.AddServer(entry("B", 7777, true))
	cfg.AddServer(entry("C", 7778, true))
	cfg.AddServer(entry("D", 7777, true))
	cfg.AddServer(entry("E", 7779, true))
	cfg.AddServer(entry("F", 7779, false))

	conflicts := CheckPorts(cfg)

	assert.Equal(t, []PortConflict{
		{Port: 7777, Servers: []string{"B", "D"}},
		{Port: 7778, Servers: []string{"A", "C"}},
	}, conflicts)
}

func TestCheckPorts_None(t *testing.T) {
	cfg := server.NewConfiguration()
	cfg.AddServer(entry("A", 7777, true))
	cfg.AddServer(entry("B", 7777, false))

	assert.Empty(t, CheckPorts(cfg))
}

func TestCheckDataPaths(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	cfg := server.NewConfiguration()
	cfg.GlobalSettings.SetDataPath(root)

	inherits := entry("Inherits", 7777, true)
	missing := entry("Missing", 7778, true)
	missing.Settings.SetDataPath(filepath.Join(root, "nope"))
	notDir := entry("NotDir", 7779, true)
	notDir.Settings.SetDataPath(file)
	cfg.AddServer(inherits)
	cfg.AddServer(missing)
	cfg.AddServer(notDir)

	issues, err := CheckDataPaths(cfg)
	require.NoError(t, err)
	require.Len(t, issues, 2)
	assert.Equal(t, "Missing", issues[0].Server)
	assert.Equal(t, "does not exist", issues[0].Reason)
	assert.Equal(t, "NotDir", issues[1].Server)
	assert.Equal(t, "not a directory", issues[1].Reason)
}

func TestCheckDataPaths_NoneSet(t *testing.T) {
	cfg := server.NewConfiguration()
	cfg.AddServer(entry("A", 7777, true))

	issues, err := CheckDataPaths(cfg)
	require.NoError(t, err)
	assert.Empty(t, issues)
}
