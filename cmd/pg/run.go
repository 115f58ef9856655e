package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/qooxzuub/pdfgraph/encode"
	"github.com/qooxzuub/pdfgraph/obj"
	"github.com/qooxzuub/pdfgraph/objdiff"
)

func loadArg(arg string) (*obj.Handle, error) {
	var d []byte
	var err error
	if arg == "-" {
		d, err = io.ReadAll(os.Stdin)
	} else {
		d, err = os.ReadFile(arg)
	}
	if err != nil {
		return nil, err
	}
	h := &obj.Handle{}
	if err := json.Unmarshal(d, h); err != nil {
		return nil, fmt.Errorf("%s: %w", arg, err)
	}
	return h, nil
}

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	opts := cfg.encodeOpts(cc.Out)
	for _, arg := range args {
		h, err := loadArg(arg)
		if err != nil {
			return err
		}
		if err := encode.Encode(h, cc.Out, opts...); err != nil {
			return err
		}
		fmt.Fprintln(cc.Out)
	}
	return nil
}

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff takes exactly two files", cli.ErrUsage)
	}
	from, err := loadArg(args[0])
	if err != nil {
		return err
	}
	to, err := loadArg(args[1])
	if err != nil {
		return err
	}
	ops, err := objdiff.Diff(from, to)
	if err != nil {
		return err
	}
	opts := cfg.encodeOpts(cc.Out)
	for _, op := range ops {
		if op.Type == objdiff.OpKeep {
			continue
		}
		fmt.Fprintf(cc.Out, "%s:", op.Type)
		if op.From != nil {
			fmt.Fprint(cc.Out, " ")
			if err := encode.Encode(op.From, cc.Out, opts...); err != nil {
				return err
			}
		}
		if op.To != nil {
			fmt.Fprint(cc.Out, " -> ")
			if err := encode.Encode(op.To, cc.Out, opts...); err != nil {
				return err
			}
		}
		fmt.Fprintln(cc.Out)
	}
	return nil
}
