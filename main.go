package main

import (
	"github.com/ngyewch/release-announcer/cmd"
)

func main() {
	cmd.Execute()
}
