package main

import "github.com/liuxd6825/elemx/cmd"

func main() {
	cmd.Execute()
}
