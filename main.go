package main

import "lb-status/cmd"

func main() {
	cmd.Execute()
}
