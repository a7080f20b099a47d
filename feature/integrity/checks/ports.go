package checks

import (
	"slices"

	"server-launcher/core/server"
)

// PortConflict lists the start-all servers sharing one port.
type PortConflict struct {
	Port    uint16
	Servers []string
}

// CheckPorts returns ports used by more than one server in the start-all batch,
// sorted by port. Servers outside the batch may share ports freely.
func CheckPorts(cfg *server.Configuration) []PortConflict {
	byPort := make(map[uint16][]string)
	for _, e := range cfg.LaunchAllSet() {
		byPort[e.Port] = append(byPort[e.Port], e.Name)
	}

	var conflicts []PortConflict
	for port, names := range byPort {
		if len(names) > 1 {
			conflicts = append(conflicts, PortConflict{Port: port, Servers: names})
		}
	}
	slices.SortFunc(conflicts, func(a, b PortConflict) int {
		return int(a.Port) - int(b.Port)
	})
	return conflicts
}
