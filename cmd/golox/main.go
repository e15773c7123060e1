package main

import (
	"os"

	"golox/cmd/golox/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
