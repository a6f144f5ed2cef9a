package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"n64disasm/mipsdisasm"
)

func readWords(file string, offset, length int64) ([]uint32, error) {
	data, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, err
	}

	if offset < 0 || offset > int64(len(data)) {
		return nil, fmt.Errorf("offset %d out of range for %s", offset, file)
	}
	end := offset + length
	if length <= 0 || end > int64(len(data)) {
		end = int64(len(data))
	}
	data = data[offset:end]

	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = binary.BigEndian.Uint32(data[i*4:])
	}
	return words, nil
}

func parseHexOrDec(s string) (int64, error) {
	return strconv.ParseInt(s, 0, 64)
}

// loadSymbolFile reads "name=0xADDR" lines into ctx as pre-seeded data
// symbols, the same flat key=value shape bbcdisasm's AddVar flag takes.
func loadSymbolFile(path string, ctx *mipsdisasm.Context) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid symbol line %q", line)
		}
		addr, err := parseHexOrDec(strings.TrimSpace(parts[1]))
		if err != nil {
			return fmt.Errorf("invalid address in %q: %w", line, err)
		}
		ctx.AddSymbol(uint32(addr), strings.TrimSpace(parts[0]))
	}
	return scanner.Err()
}

func main() {
	app := cli.NewApp()
	app.Name = "mipsdisasm"
	app.Usage = "Decode and disassemble raw MIPS/RSP instruction streams from N64 binaries"
	app.Action = func(c *cli.Context) error {
		cli.ShowAppHelp(c)
		return nil
	}
	app.Commands = []*cli.Command{
		{
			Name:      "decode",
			Usage:     "Decode a file's words one at a time, with no cross-instruction analysis",
			ArgsUsage: "file [offset] [length]",
			Action:    decodeCmd,
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "comment",
					Usage: "prefix each line with /* offset word */",
				},
			},
		},
		{
			Name:      "disasm",
			Aliases:   []string{"d"},
			Usage:     "Analyze and disassemble a function-sized chunk of a file",
			ArgsUsage: "file [offset] [length]",
			Action:    disasmCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "name",
					Value: "func",
					Usage: "function name to emit in the glabel",
				},
				&cli.Int64Flag{
					Name:  "vram",
					Value: -1,
					Usage: "load address of the first word, or -1 if unknown",
				},
				&cli.StringFlag{
					Name:  "symtab",
					Usage: "path to a name=0xADDR symbol file to pre-seed the context",
				},
				&cli.BoolFlag{
					Name:  "disassemble-unknown",
					Usage: "allow unimplemented instructions to be disassembled instead of falling back to .word",
				},
			},
		},
		{
			Name:      "symtab",
			Usage:     "Load a symbol file and print the entries sorted by address",
			ArgsUsage: "symtabfile",
			Action:    symtabCmd,
		},
	}
	app.Run(os.Args)
}
