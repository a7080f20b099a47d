package menu

// Action is a choice on the main menu.
type Action int

const (
	ActionStartAll Action = iota
	ActionStartSpecific
	ActionEditServers
	ActionEditGlobal
	ActionExit
)

// MainActions lists the main menu choices in display order.
var MainActions = []Action{
	ActionStartAll,
	ActionStartSpecific,
	ActionEditServers,
	ActionEditGlobal,
	ActionExit,
}

func (a Action) String() string {
	switch a {
	case ActionStartAll:
		return "Start All Servers"
	case ActionStartSpecific:
		return "Start Specific Servers"
	case ActionEditServers:
		return "Edit/Add Servers"
	case ActionEditGlobal:
		return "Edit Global Settings"
	case ActionExit:
		return "Exit"
	default:
		return "Unknown"
	}
}
