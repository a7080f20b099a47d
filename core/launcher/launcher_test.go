package launcher_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"server-launcher/core/launcher"
	"server-launcher/core/launcher/mocks"
	"server-launcher/core/server"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeExecutable creates an empty file that Locate will accept.
func fakeExecutable(t *testing.T) (dir, name string) {
	t.Helper()
	dir = t.TempDir()
	name = "LocalAdmin"
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o755))
	return dir, name
}

func newLauncher(t *testing.T, spawner launcher.Spawner, out *bytes.Buffer) *launcher.Launcher {
	t.Helper()
	dir, name := fakeExecutable(t)
	opts := launcher.Options{SearchDirs: []string{dir}}
	if out != nil {
		opts.Out = out
	}
	return launcher.New(launcher.Config{StartDelayMS: 0, NewWindow: true}, name, spawner, zap.NewNop(), opts)
}

func entry(name string, port uint16, include bool) *server.Entry {
	e := server.NewEntry()
	e.Name = name
	e.Port = port
	e.IncludeInLaunchAll = include
	return e
}

func TestExecutableName(t *testing.T) {
	tests := []struct {
		goos    string
		want    string
		wantErr bool
	}{
		{"windows", "LocalAdmin.exe", false},
		{"linux", "LocalAdmin", false},
		{"darwin", "LocalAdmin", false},
		{"js", "", true},
		{"plan9", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			got, err := launcher.ExecutableName(tt.goos)
			if tt.wantErr {
				assert.ErrorIs(t, err, launcher.ErrUnsupportedPlatform)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveExecutable_Override(t *testing.T) {
	got, err := launcher.ResolveExecutable(launcher.Config{Executable: "/opt/scp/LocalAdmin"}, "plan9")
	require.NoError(t, err)
	assert.Equal(t, "/opt/scp/LocalAdmin", got)
}

func TestLocate(t *testing.T) {
	dir, name := fakeExecutable(t)

	t.Run("InSearchDir", func(t *testing.T) {
		got, err := launcher.Locate(name, "", dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, name), got)
	})

	t.Run("ExplicitPath", func(t *testing.T) {
		got, err := launcher.Locate(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, name), got)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := launcher.Locate("definitely-not-a-real-launcher-binary", t.TempDir())
		assert.ErrorIs(t, err, launcher.ErrExecutableNotFound)
	})

	t.Run("MissingPath", func(t *testing.T) {
		_, err := launcher.Locate(filepath.Join(dir, "nope", name))
		assert.ErrorIs(t, err, launcher.ErrExecutableNotFound)
	})
}

func TestLaunchAll_OrderAndFilter(t *testing.T) {
	spawner := new(mocks.Spawner)
	var out bytes.Buffer
	l := newLauncher(t, spawner, &out)

	cfg := server.NewConfiguration()
	cfg.GlobalSettings.LaunchArgs.Set("-a", "1")
	a := entry("A", 7777, true)
	b := entry("B", 7778, false)
	c := entry("C", 7779, true)
	c.Settings.LaunchArgs.Set("-a", "2")
	cfg.AddServer(a)
	cfg.AddServer(b)
	cfg.AddServer(c)

	var started []string
	spawner.On("Spawn", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			started = append(started, args.Get(1).(launcher.Command).Args[0])
		}).
		Return(100, nil)

	report, err := l.LaunchAll(context.Background(), cfg)
	require.NoError(t, err)

	assert.True(t, report.OK())
	assert.NotEmpty(t, report.LaunchID)
	assert.Equal(t, []string{"7777", "7779"}, started)
	require.Len(t, report.Started, 2)
	assert.Equal(t, []string{"7779", "-a", "2"}, report.Started[1].Args)
	assert.Equal(t, 100, report.Started[0].PID)
	assert.Equal(t, "Starting A on port 7777\nStarting C on port 7779\n", out.String())
	spawner.AssertNumberOfCalls(t, "Spawn", 2)
}

func TestLaunchAll_NothingToStart(t *testing.T) {
	spawner := new(mocks.Spawner)
	l := newLauncher(t, spawner, nil)

	cfg := server.NewConfiguration()
	cfg.AddServer(entry("A", 7777, false))
	cfg.AddServer(entry("B", 7778, false))

	report, err := l.LaunchAll(context.Background(), cfg)
	assert.ErrorIs(t, err, launcher.ErrNothingToStart)
	assert.Empty(t, report.Started)
	spawner.AssertNotCalled(t, "Spawn", mock.Anything, mock.Anything)
}

func TestLaunchSelected_FailureDoesNotStopBatch(t *testing.T) {
	spawner := new(mocks.Spawner)
	l := newLauncher(t, spawner, nil)

	cfg := server.NewConfiguration()
	a := entry("A", 7777, true)
	b := entry("B", 7778, true)
	cfg.AddServer(a)
	cfg.AddServer(b)

	boom := errors.New("exec format error")
	spawner.On("Spawn", mock.Anything, mock.MatchedBy(func(c launcher.Command) bool { return c.Args[0] == "7777" })).Return(0, boom)
	spawner.On("Spawn", mock.Anything, mock.MatchedBy(func(c launcher.Command) bool { return c.Args[0] == "7778" })).Return(42, nil)

	report, err := l.LaunchSelected(context.Background(), cfg, []*server.Entry{a, b})
	require.NoError(t, err)

	assert.False(t, report.OK())
	require.Len(t, report.Failed, 1)
	assert.Same(t, a, report.Failed[0].Entry)
	assert.ErrorIs(t, report.Failed[0].Err, boom)
	require.Len(t, report.Started, 1)
	assert.Same(t, b, report.Started[0].Entry)
}

func TestLaunch_MissingExecutable(t *testing.T) {
	spawner := new(mocks.Spawner)
	l := launcher.New(launcher.Config{}, "definitely-not-a-real-launcher-binary", spawner, zap.NewNop(),
		launcher.Options{SearchDirs: []string{t.TempDir()}})

	cfg := server.NewConfiguration()
	e := entry("A", 7777, true)
	cfg.AddServer(e)

	err := l.Launch(context.Background(), cfg, e)
	assert.ErrorIs(t, err, launcher.ErrExecutableNotFound)
	spawner.AssertNotCalled(t, "Spawn", mock.Anything, mock.Anything)
}

func TestLaunch_CommandCarriesDataPath(t *testing.T) {
	spawner := new(mocks.Spawner)
	l := newLauncher(t, spawner, nil)

	dataDir := t.TempDir()
	cfg := server.NewConfiguration()
	cfg.GlobalSettings.SetDataPath(dataDir)
	e := entry("A", 7777, true)
	cfg.AddServer(e)

	spawner.On("Spawn", mock.Anything, mock.MatchedBy(func(c launcher.Command) bool {
		return assert.ObjectsAreEqual([]string{"7777", "-appdatapath", dataDir}, c.Args) && c.NewWindow
	})).Return(7, nil)

	require.NoError(t, l.Launch(context.Background(), cfg, e))
	spawner.AssertExpectations(t)
}

func TestLaunchSelected_ContextCancelled(t *testing.T) {
	spawner := new(mocks.Spawner)
	l := newLauncher(t, spawner, nil)

	cfg := server.NewConfiguration()
	a, b := entry("A", 7777, true), entry("B", 7778, true)
	cfg.AddServer(a)
	cfg.AddServer(b)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	spawner.On("Spawn", mock.Anything, mock.MatchedBy(func(c launcher.Command) bool {
		return c.Args[0] == "7777"
	})).Return(1, nil).Once()

	report, err := l.LaunchSelected(ctx, cfg, []*server.Entry{a, b})
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, report.Started, 1)
	assert.Same(t, a, report.Started[0].Entry)
	spawner.AssertNumberOfCalls(t, "Spawn", 1)
}

func TestLaunchSelected_DelayOnlyBetweenSpawns(t *testing.T) {
	dir, name := fakeExecutable(t)
	spawner := new(mocks.Spawner)
	spawner.On("Spawn", mock.Anything, mock.Anything).Return(1, nil)
	l := launcher.New(launcher.Config{StartDelayMS: 60_000}, name, spawner, zap.NewNop(), launcher.Options{SearchDirs: []string{dir}})

	cfg := server.NewConfiguration()
	e := entry("A", 7777, true)
	cfg.AddServer(e)

	done := make(chan error, 1)
	go func() {
		_, err := l.LaunchSelected(context.Background(), cfg, []*server.Entry{e})
		done <- err
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("a single start waited for the inter-spawn delay")
	}
	spawner.AssertNumberOfCalls(t, "Spawn", 1)
}

func TestExecSpawner_Spawn(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a POSIX shell")
	}
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}

	pid, err := launcher.ExecSpawner{}.Spawn(context.Background(), launcher.Command{
		Path: sh,
		Args: []string{"-c", "exit 0"},
	})
	require.NoError(t, err)
	assert.Greater(t, pid, 0)
}

func TestExecSpawner_SpawnFailure(t *testing.T) {
	_, err := launcher.ExecSpawner{}.Spawn(context.Background(), launcher.Command{
		Path: filepath.Join(t.TempDir(), "missing"),
	})
	assert.Error(t, err)
}
