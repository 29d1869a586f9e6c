package main

import "biodata-api/cmd/biodatactl/commands"

func main() {
	commands.Execute()
}
