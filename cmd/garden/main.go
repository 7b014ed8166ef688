package main

import "github.com/MrSnakeDoc/garden/cmd/garden/cmd"

func main() {
	cmd.Execute()
}
