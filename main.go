package main

import "github.com/nording/deskbot/cmd"

func main() {
	cmd.Execute()
}
