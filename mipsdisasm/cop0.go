package mipsdisasm

// COP0 format-field (bits 25-21) dispatch, grounded on
// backend/mips/instructions/MipsInstructionCoprocessor0.py's
// Cop0Opcodes_ByFormat table.
const (
	cop0fmtMFC0 uint8 = 0b00_000
	cop0fmtDMFC0 uint8 = 0b00_001
	cop0fmtCFC0 uint8 = 0b00_010
	cop0fmtMTC0 uint8 = 0b00_100
	cop0fmtDMTC0 uint8 = 0b00_101
	cop0fmtCTC0 uint8 = 0b00_110
	cop0fmtBC   uint8 = 0b01_000
)

var cop0ByFormat = map[uint8]UniqueId{
	cop0fmtMFC0: MFC0, cop0fmtDMFC0: DMFC0, cop0fmtCFC0: CFC0,
	cop0fmtMTC0: MTC0, cop0fmtDMTC0: DMTC0, cop0fmtCTC0: CTC0,
}

// Cop0Opcodes_ByFunction: selected when fmt doesn't match the move table and
// isn't the branch format.
const (
	cop0fnTLBR  uint8 = 0b000_001
	cop0fnTLBWI uint8 = 0b000_010
	cop0fnTLBWR uint8 = 0b000_110
	cop0fnTLBP  uint8 = 0b001_000
	cop0fnERET  uint8 = 0b011_000
)

var cop0ByFunction = map[uint8]UniqueId{
	cop0fnTLBR: TLBR, cop0fnTLBWI: TLBWI, cop0fnTLBWR: TLBWR, cop0fnTLBP: TLBP, cop0fnERET: ERET,
}

func decodeCop0(i Instruction) UniqueId {
	if id, ok := cop0ByFormat[i.Fmt]; ok {
		return id
	}
	if i.Fmt == cop0fmtBC {
		switch {
		case i.Tf && i.Nd:
			return BC0TL
		case i.Tf:
			return BC0T
		case i.Nd:
			return BC0FL
		default:
			return BC0F
		}
	}
	if id, ok := cop0ByFunction[i.Function]; ok {
		return id
	}
	return INVALID
}

func blankOutCop0(i *Instruction) {
	if _, ok := cop0ByFormat[i.Fmt]; ok {
		i.Rt, i.Rd, i.Sa, i.Function = 0, 0, 0, 0
		return
	}
	if i.Fmt == cop0fmtBC {
		i.Rd, i.Sa, i.Function = 0, 0, 0
		return
	}
	if _, ok := cop0ByFunction[i.Function]; ok {
		i.Rt, i.Rd, i.Sa = 0, 0, 0
	}
}
