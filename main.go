package main

import (
	"os"

	"github.com/deepdish/chicagotrail/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
