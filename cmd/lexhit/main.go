package main

import (
	"fmt"
	"io"
	"os"

	logging "github.com/ipfs/go-log/v2"

	"github.com/revelaction/lexhit/config"
	"github.com/revelaction/lexhit/file"
)

var log = logging.Logger("lexhit")

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	// .env values become defaults of the flags bound to environment
	// variables, so they are loaded before parsing.
	if err := config.LoadEnv(file.EnvFile); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}

	if err := newApp(ui).Run(os.Args); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "lexhit: %v\n", err)
}
