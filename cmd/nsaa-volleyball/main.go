package main

import (
	"github.com/pfrederiksen/nsaa-volleyball/internal/cli"
)

func main() {
	cli.Execute()
}
