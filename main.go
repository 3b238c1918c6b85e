package main

import "github.com/mhartig/tsheet/cmd"

func main() {
	cmd.Execute()
}
