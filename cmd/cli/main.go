package main

import "cineverse/cmd/cli/command"

func main() {
	command.Execute()
}
