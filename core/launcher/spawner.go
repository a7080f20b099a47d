package launcher

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// Command describes one process to start.
type Command struct {
	Path      string
	Args      []string
	Dir       string
	NewWindow bool
}

// Spawner starts processes without waiting for them.
type Spawner interface {
	// Spawn starts cmd and returns its process id.
	Spawn(ctx context.Context, cmd Command) (int, error)
}

// ExecSpawner starts real OS processes, detached from the launcher.
type ExecSpawner struct{}

// Spawn starts the process in its own session or console. Output is not captured.
func (ExecSpawner) Spawn(_ context.Context, c Command) (int, error) {
	// The child must outlive the launcher, so it is not bound to ctx.
	cmd := exec.Command(c.Path, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdin = nil
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	configureDetached(cmd, c.NewWindow)

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("failed to start %s: %w", c.Path, err)
	}
	pid := cmd.Process.Pid

	// Reap asynchronously; the result is not reported anywhere.
	go func() {
		_ = cmd.Wait()
	}()

	return pid, nil
}
