package checks

import (
	"os"

	"server-launcher/core/resolver"
	"server-launcher/core/server"
)

// DataPathIssue is an effective data path that is not an existing directory.
type DataPathIssue struct {
	Server string
	Path   string
	Reason string
}

// CheckDataPaths resolves the data path of every server and reports the ones
// that do not exist or are not directories. Servers without a data path are skipped.
func CheckDataPaths(cfg *server.Configuration) ([]DataPathIssue, error) {
	var issues []DataPathIssue
	for _, e := range cfg.Servers {
		res, err := resolver.ResolveEntry(cfg, e)
		if err != nil {
			return nil, err
		}
		if res.DataPath == nil {
			continue
		}

		info, err := os.Stat(*res.DataPath)
		switch {
		case os.IsNotExist(err):
			issues = append(issues, DataPathIssue{Server: e.Name, Path: *res.DataPath, Reason: "does not exist"})
		case err != nil:
			issues = append(issues, DataPathIssue{Server: e.Name, Path: *res.DataPath, Reason: err.Error()})
		case !info.IsDir():
			issues = append(issues, DataPathIssue{Server: e.Name, Path: *res.DataPath, Reason: "not a directory"})
		}
	}
	return issues, nil
}
