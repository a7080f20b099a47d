package main

import "server-launcher/cmd"

func main() {
	cmd.Execute()
}
