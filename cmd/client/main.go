package main

import "todolist/cmd/client/cmd"

func main() {
	cmd.Execute()
}
