package integrity

import (
	"context"

	"server-launcher/core/server"
	"server-launcher/feature/integrity/checks"

	"go.uber.org/zap"
)

// Source provides the configuration to check. It is implemented by *servers.Service.
type Source interface {
	Configuration() *server.Configuration
}

// Report collects the results of every check.
type Report struct {
	Executable    checks.ExecutableResult
	PortConflicts []checks.PortConflict
	DataPaths     []checks.DataPathIssue
}

// OK reports whether the launcher can start servers. Port conflicts and data
// path issues are warnings and do not affect the result.
func (r Report) OK() bool {
	return r.Executable.Err == nil
}

// Warnings counts the non-fatal findings.
func (r Report) Warnings() int {
	return len(r.PortConflicts) + len(r.DataPaths)
}

// Service handles integrity checks.
type Service struct {
	source     Source
	executable string
	searchDirs []string
	logger     *zap.Logger
}

// NewService creates a new integrity service.
func NewService(source Source, executable string, searchDirs []string, logger *zap.Logger) *Service {
	return &Service{
		source:     source,
		executable: executable,
		searchDirs: searchDirs,
		logger:     logger,
	}
}

// CheckExecutable reports where the server executable was found.
func (s *Service) CheckExecutable() checks.ExecutableResult {
	return checks.CheckExecutable(s.executable, s.searchDirs)
}

// CheckPorts returns ports shared by start-all servers.
func (s *Service) CheckPorts() []checks.PortConflict {
	return checks.CheckPorts(s.source.Configuration())
}

// CheckDataPaths returns effective data paths that are not usable directories.
func (s *Service) CheckDataPaths() ([]checks.DataPathIssue, error) {
	return checks.CheckDataPaths(s.source.Configuration())
}

// RunAll runs every check and logs the findings.
func (s *Service) RunAll(ctx context.Context) (Report, error) {
	var report Report
	if err := ctx.Err(); err != nil {
		return report, err
	}

	report.Executable = s.CheckExecutable()
	if report.Executable.Err != nil {
		s.logger.Error("Server executable not found", zap.String("executable", s.executable), zap.Error(report.Executable.Err))
	} else {
		s.logger.Info("Server executable found", zap.String("path", report.Executable.Path))
	}

	report.PortConflicts = s.CheckPorts()
	for _, c := range report.PortConflicts {
		s.logger.Warn("Port shared by start-all servers", zap.Uint16("port", c.Port), zap.Strings("servers", c.Servers))
	}

	issues, err := s.CheckDataPaths()
	if err != nil {
		return report, err
	}
	report.DataPaths = issues
	for _, i := range issues {
		s.logger.Warn("App data path is not usable",
			zap.String("server", i.Server),
			zap.String("path", i.Path),
			zap.String("reason", i.Reason),
		)
	}

	return report, nil
}
