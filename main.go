package main

import "github.com/codegauge/codegauge/internal/cmd"

func main() {
	cmd.Execute()
}
