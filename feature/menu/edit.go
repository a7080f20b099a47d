package menu

import (
	"fmt"

	"server-launcher/core/resolver"
	"server-launcher/core/server"
	"server-launcher/core/utils"
)

const (
	addServerLabel = "Add New Server"
	addArgLabel    = "Add New Launch Argument"
	backLabel      = "Back"
)

func (s *Session) editServers() error {
	for {
		entries := s.svc.Servers()
		labels := make([]string, 0, len(entries)+2)
		for _, e := range entries {
			labels = append(labels, e.Label())
		}
		labels = append(labels, addServerLabel, backLabel)

		idx, err := s.prompt.Select("Which server would you like to edit?", labels)
		if err != nil {
			return err
		}
		switch {
		case idx < len(entries):
			if err := s.editServer(entries[idx]); err != nil {
				return err
			}
		case labels[idx] == addServerLabel:
			if err := s.addServer(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (s *Session) addServer() error {
	e := server.NewEntry()

	name, err := s.prompt.Ask("What is the name of the server?", false)
	if err != nil {
		return err
	}
	e.Name = name

	if e.Port, err = s.prompt.AskPort("What port should the server use?", server.DefaultPort); err != nil {
		return err
	}
	if e.IncludeInLaunchAll, err = s.prompt.Confirm("Include this server when starting all servers?", true); err != nil {
		return err
	}

	for {
		more, err := s.prompt.Confirm("Would you like to add a launch argument?", false)
		if err != nil {
			return err
		}
		if !more {
			break
		}
		key, value, err := s.askArg()
		if err != nil {
			return err
		}
		if err := e.Settings.LaunchArgs.Add(key, value); err != nil {
			s.prompt.Error(err.Error())
		}
	}

	custom, err := s.prompt.Confirm("Would you like to set a custom app data path?", false)
	if err != nil {
		return err
	}
	if custom {
		p, err := s.prompt.Ask("What app data path should the server use?", true)
		if err != nil {
			return err
		}
		e.Settings.SetDataPath(p)
	}

	if err := s.showServer(e, false); err != nil {
		return err
	}
	ok, err := s.prompt.Confirm("Is this correct?", true)
	if err != nil || !ok {
		return err
	}
	if err := s.svc.AddServer(e); err != nil {
		return err
	}
	s.prompt.Success(fmt.Sprintf("Added %s.", e.Label()))
	return nil
}

func (s *Session) editServer(e *server.Entry) error {
	for {
		if err := s.showServer(e, true); err != nil {
			return err
		}

		options := []string{
			"Edit Name",
			"Edit Port",
			"Toggle Include In Launch All",
			"Edit App Data Path",
			"Edit Launch Args",
			"Delete Server",
			backLabel,
		}
		idx, err := s.prompt.Select("What would you like to change?", options)
		if err != nil {
			return err
		}

		switch idx {
		case 0:
			name, err := s.prompt.Ask("What is the new name of the server?", true)
			if err != nil {
				return err
			}
			if err := s.handle(s.svc.RenameServer(e, name)); err != nil {
				return err
			}
		case 1:
			port, err := s.prompt.AskPort("What is the new port of the server?", e.Port)
			if err != nil {
				return err
			}
			if err := s.handle(s.svc.SetPort(e, port)); err != nil {
				return err
			}
		case 2:
			_, err := s.svc.ToggleLaunchAll(e)
			if err := s.handle(err); err != nil {
				return err
			}
		case 3:
			if err := s.editDataPath(e); err != nil {
				return err
			}
		case 4:
			if err := s.editLaunchArgs(e); err != nil {
				return err
			}
		case 5:
			ok, err := s.prompt.Confirm(fmt.Sprintf("Delete %s?", e.Label()), false)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			if err := s.handle(s.svc.DeleteServer(e)); err != nil {
				return err
			}
			return nil
		default:
			return nil
		}
	}
}

// showServer prints e's own settings. Entries not yet added are resolved directly.
func (s *Session) showServer(e *server.Entry, stored bool) error {
	var (
		res resolver.Result
		err error
	)
	if stored {
		res, err = s.svc.ResolveOwn(e)
	} else {
		res, err = resolver.Resolve(server.Settings{}, &e.Settings, false)
	}
	if err != nil {
		return err
	}
	WriteTable(s.prompt.Out(), ServerInfoTable(e, res))
	return nil
}

func (s *Session) editGlobal() error {
	for {
		own, err := s.svc.ResolveOwn(nil)
		if err != nil {
			return err
		}
		options := []string{
			fmt.Sprintf("App Data Path: %s", utils.ToString(own.DataPath, defaultLabel)),
			fmt.Sprintf("Launch Args: %s", argsOrNone(own.Args)),
			backLabel,
		}
		idx, err := s.prompt.Select("Which global setting would you like to edit?", options)
		if err != nil {
			return err
		}
		switch idx {
		case 0:
			err = s.editDataPath(nil)
		case 1:
			err = s.editLaunchArgs(nil)
		default:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) editDataPath(target *server.Entry) error {
	own, err := s.svc.ResolveOwn(target)
	if err != nil {
		return s.handle(err)
	}
	s.prompt.Printf("Current app data path: %s\n", s.prompt.Styles().Value.Render(utils.ToString(own.DataPath, defaultLabel)))

	p, err := s.prompt.Ask("What is the new app data path? (empty to unset)", true)
	if err != nil {
		return err
	}
	return s.handle(s.svc.SetDataPath(target, p))
}

func (s *Session) editLaunchArgs(target *server.Entry) error {
	for {
		pairs := s.svc.Configuration().SettingsFor(target).LaunchArgs.Pairs()
		labels := make([]string, 0, len(pairs)+2)
		for _, p := range pairs {
			labels = append(labels, fmt.Sprintf("%s %s", p.Key, p.Value))
		}
		labels = append(labels, addArgLabel, backLabel)

		idx, err := s.prompt.Select("Which launch argument would you like to edit?", labels)
		if err != nil {
			return err
		}
		switch {
		case idx < len(pairs):
			err = s.editLaunchArg(target, pairs[idx].Key)
		case labels[idx] == addArgLabel:
			var key, value string
			key, value, err = s.askArg()
			if err == nil {
				err = s.handle(s.svc.AddArg(target, key, value))
			}
		default:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) editLaunchArg(target *server.Entry, key string) error {
	for {
		value, _ := s.svc.Configuration().SettingsFor(target).LaunchArgs.Get(key)
		s.prompt.Printf("%s %s\n", s.prompt.Styles().Title.Render(key), s.prompt.Styles().Value.Render(value))

		idx, err := s.prompt.Select("What would you like to change?", []string{"Edit Value", "Edit Key", "Delete", backLabel})
		if err != nil {
			return err
		}
		switch idx {
		case 0:
			v, err := s.prompt.Ask("What is the new value?", true)
			if err != nil {
				return err
			}
			if err := s.handle(s.svc.SetArgValue(target, key, v)); err != nil {
				return err
			}
		case 1:
			k, err := s.prompt.Ask("What is the new key?", false)
			if err != nil {
				return err
			}
			renameErr := s.svc.RenameArg(target, key, k)
			if err := s.handle(renameErr); err != nil {
				return err
			}
			if renameErr == nil {
				key = k
			}
		case 2:
			return s.handle(s.svc.DeleteArg(target, key))
		default:
			return nil
		}
	}
}

func (s *Session) askArg() (string, string, error) {
	key, err := s.prompt.Ask("What is the launch argument?", false)
	if err != nil {
		return "", "", err
	}
	value, err := s.prompt.Ask("What is the value of the launch argument? (empty for none)", true)
	if err != nil {
		return "", "", err
	}
	return key, value, nil
}
