package main

import (
	"bytes"
	"fmt"

	"github.com/SamuelMarks/serde-json-extensions/encode"
	"github.com/SamuelMarks/serde-json-extensions/ir"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %d", cli.ErrUsage, len(args))
	}
	a, err := readArg(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	b, err := readArg(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	if a.Equal(b) {
		return nil
	}

	at, err := renderForDiff(a)
	if err != nil {
		return err
	}
	bt, err := renderForDiff(b)
	if err != nil {
		return err
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(at, bt, true)
	diffs = dmp.DiffCleanupSemantic(diffs)
	if _, err := cc.Out.Write([]byte(dmp.DiffPrettyText(diffs))); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

// renderForDiff renders without color so the diff markup is the only
// markup in the output.
func renderForDiff(node *ir.Node) (string, error) {
	var buf bytes.Buffer
	if err := encode.Encode(node, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
