package main

import "gosaf/cmd"

func main() {
	cmd.Execute()
}
