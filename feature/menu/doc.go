// Package menu implements the interactive console of the launcher.
//
// A Session shows the main menu (start all, start specific, edit servers, edit
// global settings, exit) and walks the operator through nested editing screens.
// Input is read a line at a time through a Prompter, so sessions can be driven
// by any io.Reader. Edits go through servers.Service and are saved immediately;
// starting goes through a Starter, normally *launcher.Launcher.
package menu
