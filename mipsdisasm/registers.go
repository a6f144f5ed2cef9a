package mipsdisasm

// O32 ABI general purpose register names, indexed by the 5-bit register number.
var gprNames = [32]string{
	"$zero", "$at", "$v0", "$v1",
	"$a0", "$a1", "$a2", "$a3",
	"$t0", "$t1", "$t2", "$t3", "$t4", "$t5", "$t6", "$t7",
	"$s0", "$s1", "$s2", "$s3", "$s4", "$s5", "$s6", "$s7",
	"$t8", "$t9",
	"$k0", "$k1",
	"$gp", "$sp", "$fp", "$ra",
}

// COP0 registers use their conventional names where one exists and fall back
// to a numeric form otherwise.
var cop0Names = [32]string{
	"Index", "Random", "EntryLo0", "EntryLo1",
	"Context", "PageMask", "Wired", "$7",
	"BadVAddr", "Count", "EntryHi", "Compare",
	"Status", "Cause", "EPC", "PRId",
	"Config", "LLAddr", "WatchLo", "WatchHi",
	"XContext", "$21", "$22", "$23",
	"$24", "$25", "$26", "$27",
	"TagLo", "TagHi", "ErrorEPC", "$31",
}

var floatNames = [32]string{
	"$f0", "$f1", "$f2", "$f3", "$f4", "$f5", "$f6", "$f7",
	"$f8", "$f9", "$f10", "$f11", "$f12", "$f13", "$f14", "$f15",
	"$f16", "$f17", "$f18", "$f19", "$f20", "$f21", "$f22", "$f23",
	"$f24", "$f25", "$f26", "$f27", "$f28", "$f29", "$f30", "$f31",
}

// RSP vector registers share the $v0..$v31 namespace (distinct from the GPR
// $v0/$v1 mnemonics, which never appear in a COP2 operand position).
var vectorNames = [32]string{
	"$v0", "$v1", "$v2", "$v3", "$v4", "$v5", "$v6", "$v7",
	"$v8", "$v9", "$v10", "$v11", "$v12", "$v13", "$v14", "$v15",
	"$v16", "$v17", "$v18", "$v19", "$v20", "$v21", "$v22", "$v23",
	"$v24", "$v25", "$v26", "$v27", "$v28", "$v29", "$v30", "$v31",
}

// floatCompareConds are the 16 IEEE-754 comparison predicates selectable by
// the low 4 bits of a C.cond.fmt instruction's function field.
var floatCompareConds = [16]string{
	"f", "un", "eq", "ueq", "olt", "ult", "ole", "ule",
	"sf", "ngle", "seq", "ngl", "lt", "nge", "le", "ngt",
}

func gprName(reg uint8) string {
	return gprNames[reg&0x1F]
}

func cop0RegName(reg uint8) string {
	return cop0Names[reg&0x1F]
}

func floatRegName(reg uint8) string {
	return floatNames[reg&0x1F]
}

func vectorRegName(reg uint8) string {
	return vectorNames[reg&0x1F]
}
