package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/sarchlab/cellar/api"
	"github.com/sarchlab/cellar/terminal"
	"github.com/tebeka/atexit"
)

//go:embed echo.bf
var program string

func main() {
	keys := terminal.NewScript(terminal.Keys("Hello, tape!\n")...)

	driver := api.DriverBuilder{}.
		WithTerminal(keys).
		WithOutput(os.Stdout).
		WithComments(true).
		Build("Driver")

	if err := driver.Load(program); err != nil {
		atexit.Fatalf("loading echo.bf: %v", err)
	}

	if _, err := driver.Run(); err != nil {
		atexit.Fatalf("running echo.bf: %v", err)
	}

	fmt.Printf("\n%d keys left unread\n", keys.Remaining())
	atexit.Exit(0)
}
