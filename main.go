package main

import "github.com/katalvlaran/junctionbox/cmd"

func main() {
	cmd.Execute()
}
