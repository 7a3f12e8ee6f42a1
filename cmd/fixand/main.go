package main

import "fixand/cmd/fixand/cmd"

func main() {
	cmd.Execute()
}
