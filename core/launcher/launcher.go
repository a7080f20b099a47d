package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"server-launcher/core/logger"
	"server-launcher/core/resolver"
	"server-launcher/core/server"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNothingToStart is returned when a batch has no servers in it.
var ErrNothingToStart = errors.New("no servers to start")

// Outcome is the result of starting one server.
type Outcome struct {
	Entry *server.Entry
	Args  []string
	PID   int
	Err   error
}

// Report summarises a start action.
type Report struct {
	// LaunchID is shared by every process started in the same action.
	LaunchID string
	Started  []Outcome
	Failed   []Outcome
}

// OK reports whether every requested server was started.
func (r Report) OK() bool {
	return len(r.Failed) == 0
}

// Launcher starts server processes for configured entries.
type Launcher struct {
	spawner    Spawner
	executable string
	searchDirs []string
	workDir    string
	delay      time.Duration
	newWindow  bool
	logger     *zap.Logger
	out        io.Writer
}

// Options configures a Launcher beyond its executable and spawner.
type Options struct {
	// SearchDirs are checked for a bare executable name before PATH.
	SearchDirs []string
	// WorkDir is the working directory of started servers; empty keeps the launcher's.
	WorkDir string
	// Out receives one progress line per started server.
	Out io.Writer
}

// New creates a launcher for the given executable name or path.
func New(cfg Config, executable string, spawner Spawner, logg *zap.Logger, opts Options) *Launcher {
	if logg == nil {
		logg = zap.NewNop()
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	delay := time.Duration(cfg.StartDelayMS) * time.Millisecond
	if delay < 0 {
		delay = 0
	}
	return &Launcher{
		spawner:    spawner,
		executable: executable,
		searchDirs: opts.SearchDirs,
		workDir:    opts.WorkDir,
		delay:      delay,
		newWindow:  cfg.NewWindow,
		logger:     logg,
		out:        out,
	}
}

// Executable returns the executable name or path servers are started with.
func (l *Launcher) Executable() string {
	return l.executable
}

// Command builds the command that would start e.
func (l *Launcher) Command(cfg *server.Configuration, e *server.Entry) (Command, error) {
	res, err := resolver.ResolveEntry(cfg, e)
	if err != nil {
		return Command{}, err
	}
	path, err := Locate(l.executable, l.searchDirs...)
	if err != nil {
		return Command{}, err
	}
	return Command{
		Path:      path,
		Args:      BuildArgs(e.Port, res),
		Dir:       l.workDir,
		NewWindow: l.newWindow,
	}, nil
}

// Launch starts a single server and returns immediately.
func (l *Launcher) Launch(ctx context.Context, cfg *server.Configuration, e *server.Entry) error {
	report, err := l.LaunchSelected(ctx, cfg, []*server.Entry{e})
	if err != nil {
		return err
	}
	if !report.OK() {
		return report.Failed[0].Err
	}
	return nil
}

// LaunchAll starts every entry flagged for the start-all batch, in stored order.
func (l *Launcher) LaunchAll(ctx context.Context, cfg *server.Configuration) (Report, error) {
	return l.LaunchSelected(ctx, cfg, cfg.LaunchAllSet())
}

// LaunchSelected starts the given entries in order. A failure to start one server
// is recorded in the report and does not stop the others.
func (l *Launcher) LaunchSelected(ctx context.Context, cfg *server.Configuration, entries []*server.Entry) (Report, error) {
	report := Report{LaunchID: uuid.NewString()}
	if len(entries) == 0 {
		return report, ErrNothingToStart
	}

	logg := logger.WithLaunchID(l.logger, report.LaunchID)
	for i, e := range entries {
		if i > 0 {
			if err := l.wait(ctx); err != nil {
				return report, err
			}
		}

		outcome := l.start(ctx, logg, cfg, e)
		if outcome.Err != nil {
			report.Failed = append(report.Failed, outcome)
			continue
		}
		report.Started = append(report.Started, outcome)
	}

	logg.Info("Start action finished",
		zap.Int("started", len(report.Started)),
		zap.Int("failed", len(report.Failed)),
	)
	return report, nil
}

func (l *Launcher) start(ctx context.Context, logg *zap.Logger, cfg *server.Configuration, e *server.Entry) Outcome {
	logg = logger.WithServer(logg, e)
	outcome := Outcome{Entry: e}

	cmd, err := l.Command(cfg, e)
	if err != nil {
		logg.Error("Failed to prepare server command", zap.Error(err))
		outcome.Err = err
		return outcome
	}
	outcome.Args = cmd.Args

	fmt.Fprintf(l.out, "Starting %s on port %d\n", e.Name, e.Port)
	pid, err := l.spawner.Spawn(ctx, cmd)
	if err != nil {
		logg.Error("Failed to start server", zap.String("executable", cmd.Path), zap.Error(err))
		outcome.Err = err
		return outcome
	}
	outcome.PID = pid

	logg.Info("Server started",
		zap.Int("pid", pid),
		zap.String("executable", cmd.Path),
		zap.Strings("args", cmd.Args),
	)
	return outcome
}

func (l *Launcher) wait(ctx context.Context) error {
	if l.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(l.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
