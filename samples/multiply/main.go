package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/sarchlab/cellar/api"
	"github.com/tebeka/atexit"
)

//go:embed multiply.bf
var program string

func main() {
	driver := api.DriverBuilder{}.
		WithOutput(os.Stdout).
		WithDiagnostics(os.Stdout).
		WithComments(true).
		WithDumpColumns(4).
		Build("Driver")

	if err := driver.Load(program); err != nil {
		atexit.Fatalf("loading multiply.bf: %v", err)
	}

	outcome, err := driver.Run()
	if err != nil {
		atexit.Fatalf("running multiply.bf: %v", err)
	}

	fmt.Printf("6 x 7 = %d (%s)\n", outcome.Code, outcome.Kind)
	atexit.Exit(0)
}
