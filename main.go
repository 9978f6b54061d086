package main

import "groupahpdss/cmd/cli"

func main() {
	cmd.Execute()
}
