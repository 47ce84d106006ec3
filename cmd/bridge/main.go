// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Command bridge indexes GRANDPA justifications, serves them as witness
// data and runs the light client verification computations.
package main

import (
	"os"

	"github.com/ChainSafe/grandpa-bridge/internal/log"
	"github.com/urfave/cli"
)

var logger log.LeveledLogger = log.NewFromGlobal(log.AddContext("pkg", "cmd"))

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "bridge"
	app.Usage = "GRANDPA finality light client bridge"
	app.Version = "0.1.0"
	app.Flags = GlobalFlags
	app.Commands = []cli.Command{
		indexCommand,
		serveCommand,
		justificationCommand,
		rotateCommand,
		exportConfigCommand,
	}
	return app
}

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
