package main

import (
	"fmt"
	"io"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

var dataFlags = []cli.Flag{
	&cli.StringSliceFlag{
		Name:    "data",
		Aliases: []string{"d"},
		Usage:   "account `FILE` with one username,disc,nitro,badge,status record per line; repeat to append more files",
		EnvVars: []string{"ACCTREE_DATA"},
	},
	&cli.StringFlag{
		Name:    "log-level",
		Usage:   "log verbosity level (error, warn, info, debug)",
		Value:   "warn",
		EnvVars: []string{"ACCTREE_LOG_LEVEL"},
	},
}

func run(args []string, stdout, stderr io.Writer) error {

	app := cli.App{
		Name:      "acctree",
		Usage:     "load account files into a username/discriminator directory and inspect it",
		Version:   versioninfo.Short(),
		Flags:     dataFlags,
		Writer:    stdout,
		ErrWriter: stderr,
	}
	app.Commands = []*cli.Command{
		cmdDump,
		cmdPrint,
		cmdTree,
		cmdLookup,
		cmdRemove,
	}
	return app.Run(args)
}
