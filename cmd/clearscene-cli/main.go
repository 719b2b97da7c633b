package main

import "clearscene/cmd/clearscene-cli/cmd"

func main() {
	cmd.Execute()
}
