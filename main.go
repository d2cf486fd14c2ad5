package main

import "prowl/cmd"

func main() {
	cmd.Execute()
}
