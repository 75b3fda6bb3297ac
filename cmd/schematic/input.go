package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"
)

const maxLine = 16 << 20

type input struct {
	name  string
	lines []string
}

// readInputs reads each file named in args, or cc.In when there are none.
// "-" names stdin.
func readInputs(cc *cli.Context, args []string) ([]input, error) {
	if len(args) == 0 {
		lines, err := readLines(cc.In)
		if err != nil {
			return nil, err
		}
		return []input{{name: "-", lines: lines}}, nil
	}
	res := make([]input, 0, len(args))
	for _, file := range args {
		lines, err := readFile(file)
		if err != nil {
			return nil, err
		}
		res = append(res, input{name: file, lines: lines})
	}
	return res, nil
}

func readFile(file string) ([]string, error) {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	lines, err := readLines(f)
	if err != nil {
		return nil, fmt.Errorf("error processing %s: %w", file, err)
	}
	return lines, nil
}

// readLines splits r into lines without their terminators.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	return lines, nil
}
