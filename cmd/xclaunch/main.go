package main

import "xclaunch/cmd/xclaunch/cmd"

func main() {
	cmd.Execute()
}
