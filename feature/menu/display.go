package menu

import (
	"io"

	"server-launcher/core/resolver"
	"server-launcher/core/server"
	"server-launcher/core/utils"

	"github.com/jedib0t/go-pretty/v6/table"
)

const (
	defaultLabel = "Default"
	noneLabel    = "None"
)

// ServerInfoTable renders one entry's own settings.
func ServerInfoTable(e *server.Entry, own resolver.Result) table.Writer {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Option", "Value"})
	tw.AppendRows([]table.Row{
		{"Name", e.Name},
		{"Port", e.Port},
		{"Include In Launch All", e.IncludeInLaunchAll},
		{"App Data Path", utils.ToString(own.DataPath, defaultLabel)},
		{"Launch Args", argsOrNone(own.Args)},
	})
	tw.SetStyle(table.StyleLight)
	return tw
}

// ServerListTable renders every entry with its effective arguments.
func ServerListTable(cfg *server.Configuration) (table.Writer, error) {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"#", "Name", "Port", "Launch All", "Effective Args", "App Data Path"})
	for i, e := range cfg.Servers {
		res, err := resolver.ResolveEntry(cfg, e)
		if err != nil {
			return nil, err
		}
		tw.AppendRow(table.Row{
			i + 1,
			e.Name,
			e.Port,
			e.IncludeInLaunchAll,
			argsOrNone(res.Args),
			utils.ToString(res.DataPath, defaultLabel),
		})
	}
	tw.SetStyle(table.StyleLight)
	return tw, nil
}

// WriteTable renders tw to w followed by a newline.
func WriteTable(w io.Writer, tw table.Writer) {
	_, _ = io.WriteString(w, tw.Render()+"\n")
}

func argsOrNone(args string) string {
	if args == "" {
		return noneLabel
	}
	return args
}
