package main

import (
	"github.com/blocklens/blocksummary/cmd"
)

func main() {
	cmd.Execute()
}
