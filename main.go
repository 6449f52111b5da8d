package main

import "portinfo/cmd"

func main() {
	cmd.Execute()
}
