package main

import "github.com/gradgoals/gradgoals/internal/commands"

func main() {
	commands.Execute()
}
