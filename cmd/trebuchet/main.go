package main

import (
	"github.com/khalid-nowaf/trebuchet/pkg/cli"
)

func main() {
	cli.Main()
}
