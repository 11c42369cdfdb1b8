package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	failed := 0
	for _, arg := range args {
		_, err := readArg(cfg.MainConfig, arg)
		if err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%v\n", err)
			continue
		}
		if !cfg.Quiet {
			fmt.Fprintf(cc.Out, "ok %s\n", arg)
		}
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
