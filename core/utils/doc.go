// Package utils provides small conversion helpers shared by the command line and the
// interactive menu, such as port parsing and yes/no answers.
package utils
