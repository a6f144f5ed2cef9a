package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/urfave/cli/v2"

	"n64disasm/mipsdisasm"
)

func fileArgs(c *cli.Context) (file string, offset, length int64, err error) {
	args := c.Args()
	if args.Len() < 1 {
		return "", 0, 0, fmt.Errorf("insufficient arguments")
	}
	file = args.First()

	if args.Len() >= 2 {
		if offset, err = parseHexOrDec(args.Get(1)); err != nil {
			return "", 0, 0, fmt.Errorf("could not parse offset: %w", err)
		}
	}
	if args.Len() >= 3 {
		if length, err = parseHexOrDec(args.Get(2)); err != nil {
			return "", 0, 0, fmt.Errorf("could not parse length: %w", err)
		}
	}
	return file, offset, length, nil
}

func decodeCmd(c *cli.Context) error {
	file, offset, length, err := fileArgs(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	words, err := readWords(file, offset, length)
	if err != nil {
		return cli.Exit(err, 1)
	}

	for i, word := range words {
		instr := mipsdisasm.Decode(word)
		line := instr.UniqueId.String()
		if !instr.IsImplemented() {
			line = "invalid"
		}
		if c.Bool("comment") {
			fmt.Printf("/* %06X %08X */  %s\n", offset+int64(i*4), word, line)
		} else {
			fmt.Println(line)
		}
	}
	return nil
}

func disasmCmd(c *cli.Context) error {
	file, offset, length, err := fileArgs(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	words, err := readWords(file, offset, length)
	if err != nil {
		return cli.Exit(err, 1)
	}

	ctx := mipsdisasm.NewContext()
	if symtab := c.String("symtab"); symtab != "" {
		if err := loadSymbolFile(symtab, ctx); err != nil {
			return cli.Exit(fmt.Sprintf("could not load symtab: %s", err), 1)
		}
	}

	instrs := make([]mipsdisasm.Instruction, len(words))
	for i, w := range words {
		instrs[i] = mipsdisasm.Decode(w)
	}

	fn := mipsdisasm.NewFunction(c.String("name"), c.Int64("vram"), offset, instrs)

	analysisCfg := mipsdisasm.DefaultAnalysisConfig()
	analysisCfg.DisassembleUnknownInstructions = c.Bool("disassemble-unknown")

	mipsdisasm.Analyze(fn, ctx, analysisCfg)
	mipsdisasm.RemoveTrailingNops(fn)

	emitCfg := mipsdisasm.DefaultEmitConfig()
	fmt.Print(mipsdisasm.Disassemble(fn, ctx, analysisCfg, emitCfg, -1))
	return nil
}

func symtabCmd(c *cli.Context) error {
	args := c.Args()
	if args.Len() < 1 {
		return cli.Exit("Insufficient arguments", 1)
	}

	ctx := mipsdisasm.NewContext()
	if err := loadSymbolFile(args.First(), ctx); err != nil {
		return cli.Exit(err, 1)
	}

	entries := ctx.AllSymbols()
	sort.Slice(entries, func(i, j int) bool { return entries[i].Vram < entries[j].Vram })
	for _, sym := range entries {
		fmt.Fprintf(os.Stdout, "%08X  %s\n", sym.Vram, sym.GetName())
	}
	return nil
}
