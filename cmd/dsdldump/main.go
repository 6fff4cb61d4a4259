// Command dsdldump decodes a fragment stream against a registered DSDL
// type and prints the result, or the format-error log line if the input is
// malformed. It exists to give the Composite Object Contract a runnable
// edge without pulling in any real transport: DSDL code generation and
// transport are out of scope for this module.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/flyiscool/uavdsdl/dsdl"
	"github.com/flyiscool/uavdsdl/model"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "dsdldump",
		Usage: "decode a DSDL fragment stream against a registered type",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "type",
				Usage:    "full DSDL type name, e.g. uavcan.node.Heartbeat",
				Required: true,
			},
			&cli.UintFlag{Name: "major", Usage: "major version", Value: 1},
			&cli.UintFlag{Name: "minor", Usage: "minor version", Value: 0},
			&cli.StringFlag{
				Name:  "file",
				Usage: "path to the encoded fragment; defaults to stdin",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	descriptor := &model.Descriptor{
		FullName:     c.String("type"),
		MajorVersion: uint8(c.Uint("major")),
		MinorVersion: uint8(c.Uint("minor")),
	}

	ctor, ok := dsdl.ClassOf(descriptor)
	if !ok {
		return fmt.Errorf("dsdldump: no type registered for %s", descriptor.Name())
	}

	data, err := readInput(c.String("file"))
	if err != nil {
		return fmt.Errorf("dsdldump: read input: %w", err)
	}

	msg := ctor()
	if !dsdl.DecodeDynamic(msg, data) {
		// DecodeDynamic has already logged the structured FormatError
		// line; nothing further to report here.
		fmt.Println("decode failed: malformed input for", descriptor.Name())
		return nil
	}

	out, err := json.MarshalIndent(msg, "", "  ")
	if err != nil {
		return fmt.Errorf("dsdldump: marshal result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
