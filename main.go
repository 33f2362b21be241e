package main

import (
	"os"

	"github.com/goloxlang/golox/cmd"
)

func main() {
	app := cmd.NewLoxApp()
	os.Exit(app.Main(os.Args[1:]))
}
