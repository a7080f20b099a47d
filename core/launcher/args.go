package launcher

import (
	"strconv"

	"server-launcher/core/resolver"
)

// DataPathFlag precedes the data path override on the server command line.
const DataPathFlag = "-appdatapath"

// BuildArgs returns the argv passed to the server executable:
// the port, each merged key and non-empty value, and optionally the data path flag.
// Pairs become separate tokens so values containing spaces survive intact;
// resolver.Result.Args is the joined form and is only used for display.
func BuildArgs(port uint16, res resolver.Result) []string {
	args := []string{strconv.FormatUint(uint64(port), 10)}
	for _, p := range res.Pairs {
		args = append(args, p.Key)
		if p.Value != "" {
			args = append(args, p.Value)
		}
	}
	if res.DataPath != nil {
		args = append(args, DataPathFlag, *res.DataPath)
	}
	return args
}
