package mipsdisasm

// AnalysisConfig governs the abstract-interpretation pass in analyzer.go.
// Fields are set directly by CLI flags, the same way the teacher's
// Disassembler struct exposes its own public knobs.
type AnalysisConfig struct {
	// DisassembleUnknownInstructions, when false, makes analysis (and
	// disassembly) bail out to a raw .word dump for any function containing
	// an instruction the decoder didn't recognize.
	DisassembleUnknownInstructions bool

	// AddNewSymbols registers a guessed "D_<hex>" data symbol the first time
	// a %hi/%lo pair resolves to an address with no existing symbol.
	AddNewSymbols bool

	// RemovePointers enables RemovePointers/BlankOutDifferences, used when
	// diffing two builds of the same function against relocation noise.
	RemovePointers bool

	// IgnoreBranches makes RemovePointers also blank out every branch
	// instruction's operands.
	IgnoreBranches bool

	// NewStuffSuffix, when non-empty, is appended to a freshly-added data
	// symbol's name whenever the resolved address falls at or after the
	// owning function's vram (mirrors parent.newStuffSuffix).
	NewStuffSuffix string
}

// DefaultAnalysisConfig matches the original tool's defaults: unknown
// instructions abort analysis into a data dump, new symbols are added, and
// pointer removal is off until a diff is requested.
func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		DisassembleUnknownInstructions: false,
		AddNewSymbols:                  true,
		RemovePointers:                 false,
		IgnoreBranches:                 false,
	}
}

// EmitConfig governs text rendering in emitter.go.
type EmitConfig struct {
	// AsmComment, when true, prefixes each line with a
	// /* fileOffset vram rawWord */ comment.
	AsmComment bool

	// AsmCommentOffsetWidth is the zero-padded hex digit count used for the
	// file-offset field inside the comment (the teacher's disassembler
	// defaults this to 6).
	AsmCommentOffsetWidth int

	// FunctionAsmCount appends "# <index>" to a function's glabel line when
	// Index is non-negative.
	FunctionAsmCount bool

	// LineEnds is the line terminator appended after each instruction line.
	LineEnds string

	// OpcodeLjust is the left-justify width applied to a rendered mnemonic
	// before its operands.
	OpcodeLjust int
}

// DefaultEmitConfig mirrors the GAS-compatible formatting the original tool
// always produces.
func DefaultEmitConfig() EmitConfig {
	return EmitConfig{
		AsmComment:             true,
		AsmCommentOffsetWidth:  6,
		FunctionAsmCount:       false,
		LineEnds:               "\n",
		OpcodeLjust:            11,
	}
}
