package main

import "github.com/moonwhale/whalecalc/cmd"

func main() {
	cmd.Execute()
}
