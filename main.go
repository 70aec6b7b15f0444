// chatgpt-conversation-extractor - Extract, filter, and archive ChatGPT
// conversations from OpenAI data exports.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	"github.com/0xsalt/chatgpt-conversation-extractor/internal/cli"
	"github.com/0xsalt/chatgpt-conversation-extractor/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run keeps os.Exit out of the call chain so deferred cleanup in the
// interactive session always executes.
func run(argv []string) int {
	args, err := cli.ParseArgs(argv)
	if err != nil {
		cli.Report(err)
		return cli.ExitCodeFor(err)
	}

	if args.Help {
		fmt.Print(cli.Usage)
		return cli.ExitSuccess
	}
	if args.Version {
		fmt.Println(cli.VersionString())
		return cli.ExitSuccess
	}

	cfg, err := config.Load()
	if err != nil {
		cli.Report(&cli.FileError{Err: err})
		return cli.ExitError
	}

	outcome, err := cli.Run(args, cfg)
	if err != nil {
		cli.Report(err)
		return cli.ExitCodeFor(err)
	}

	fmt.Println(outcome.Message)
	return cli.ExitSuccess
}
