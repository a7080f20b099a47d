package menu

import (
	"context"
	"errors"
	"fmt"

	"server-launcher/core/launcher"
	"server-launcher/core/server"
	"server-launcher/feature/servers"

	"go.uber.org/zap"
)

// Starter starts server processes. It is implemented by *launcher.Launcher.
type Starter interface {
	LaunchAll(ctx context.Context, cfg *server.Configuration) (launcher.Report, error)
	LaunchSelected(ctx context.Context, cfg *server.Configuration, entries []*server.Entry) (launcher.Report, error)
}

// Session is one run of the interactive menu.
type Session struct {
	svc     *servers.Service
	starter Starter
	prompt  *Prompter
	logger  *zap.Logger
	version string
	done    bool
}

// NewSession creates a menu session over an already loaded service.
func NewSession(svc *servers.Service, starter Starter, prompt *Prompter, logger *zap.Logger, version string) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		svc:     svc,
		starter: starter,
		prompt:  prompt,
		logger:  logger,
		version: version,
	}
}

// Run shows the main menu until the operator exits or a start action succeeds
// for every server it covered. Closed input ends the session without an error;
// failing to save the configuration ends it with one.
func (s *Session) Run(ctx context.Context) error {
	for !s.done {
		if err := ctx.Err(); err != nil {
			return err
		}

		clearScreen(s.prompt.Out())
		s.prompt.Printf("%s\n\n", s.prompt.Styles().Title.Render(fmt.Sprintf("Server Launcher v%s", s.version)))

		labels := make([]string, len(MainActions))
		for i, a := range MainActions {
			labels[i] = a.String()
		}
		idx, err := s.prompt.Select("What would you like to do?", labels)
		if err != nil {
			return s.finish(err)
		}

		if err := s.dispatch(ctx, MainActions[idx]); err != nil {
			return s.finish(err)
		}
	}
	return nil
}

func (s *Session) finish(err error) error {
	if errors.Is(err, ErrInputClosed) {
		s.logger.Debug("Input closed, leaving menu")
		return nil
	}
	return err
}

func (s *Session) dispatch(ctx context.Context, action Action) error {
	s.logger.Debug("Menu action selected", zap.Stringer("action", action))
	switch action {
	case ActionStartAll:
		return s.startAll(ctx)
	case ActionStartSpecific:
		return s.startSpecific(ctx)
	case ActionEditServers:
		return s.editServers()
	case ActionEditGlobal:
		return s.editGlobal()
	case ActionExit:
		s.done = true
	}
	return nil
}

func (s *Session) startAll(ctx context.Context) error {
	report, err := s.starter.LaunchAll(ctx, s.svc.Configuration())
	if errors.Is(err, launcher.ErrNothingToStart) {
		s.prompt.Error("No servers are set to be included in the launch all command.")
		return s.pause()
	}
	if err != nil {
		return err
	}
	return s.finishStart(report)
}

func (s *Session) startSpecific(ctx context.Context) error {
	entries := s.svc.Servers()
	if len(entries) == 0 {
		s.prompt.Error("There are no servers to start.")
		return s.pause()
	}

	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.Label()
	}
	picked, err := s.prompt.MultiSelect("Which servers would you like to start?", labels)
	if err != nil {
		return err
	}
	if len(picked) == 0 {
		return nil
	}

	selected := make([]*server.Entry, len(picked))
	for i, idx := range picked {
		selected[i] = entries[idx]
	}
	report, err := s.starter.LaunchSelected(ctx, s.svc.Configuration(), selected)
	if err != nil && !errors.Is(err, launcher.ErrNothingToStart) {
		return err
	}
	return s.finishStart(report)
}

func (s *Session) finishStart(report launcher.Report) error {
	if report.OK() {
		s.prompt.Success(fmt.Sprintf("Started %d server(s).", len(report.Started)))
		s.done = true
		return nil
	}
	for _, o := range report.Failed {
		s.prompt.Error(fmt.Sprintf("Failed to start %s: %v", o.Entry.Label(), o.Err))
	}
	return s.pause()
}

func (s *Session) pause() error {
	_, err := s.prompt.Ask("Press enter to continue...", true)
	return err
}

// handle reports validation failures to the operator and passes anything else on.
func (s *Session) handle(err error) error {
	if err == nil {
		return nil
	}
	if isInputError(err) {
		s.prompt.Error(err.Error())
		return nil
	}
	return err
}

func isInputError(err error) bool {
	for _, target := range []error{
		server.ErrArgExists,
		server.ErrArgNotFound,
		server.ErrBlankArgKey,
		server.ErrServerNotFound,
		server.ErrAmbiguousName,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
