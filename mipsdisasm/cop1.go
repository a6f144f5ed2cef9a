package mipsdisasm

// COP1 format-field values.
const (
	cop1fmtMFC1  uint8 = 0b00_000
	cop1fmtDMFC1 uint8 = 0b00_001
	cop1fmtCFC1  uint8 = 0b00_010
	cop1fmtMTC1  uint8 = 0b00_100
	cop1fmtDMTC1 uint8 = 0b00_101
	cop1fmtCTC1  uint8 = 0b00_110
	cop1fmtBC    uint8 = 0b01_000
	cop1fmtS     uint8 = 0b10_000
	cop1fmtD     uint8 = 0b10_001
	cop1fmtW     uint8 = 0b10_100
	cop1fmtL     uint8 = 0b10_101
)

var cop1MoveByFormat = map[uint8]UniqueId{
	cop1fmtMFC1: MFC1, cop1fmtDMFC1: DMFC1, cop1fmtCFC1: CFC1,
	cop1fmtMTC1: MTC1, cop1fmtDMTC1: DMTC1, cop1fmtCTC1: CTC1,
}

// Float arithmetic function-field table, shared across S/D/W/L formats; not
// every entry is legal for every format but the decoder does not police that
// (spec §1: the decoder is total, never fails).
const (
	fnFloatADD       uint8 = 0b000_000
	fnFloatSUB       uint8 = 0b000_001
	fnFloatMUL       uint8 = 0b000_010
	fnFloatDIV       uint8 = 0b000_011
	fnFloatSQRT      uint8 = 0b000_100
	fnFloatABS       uint8 = 0b000_101
	fnFloatMOV       uint8 = 0b000_110
	fnFloatNEG       uint8 = 0b000_111
	fnFloatROUND_L   uint8 = 0b001_000
	fnFloatTRUNC_L   uint8 = 0b001_001
	fnFloatCEIL_L    uint8 = 0b001_010
	fnFloatFLOOR_L   uint8 = 0b001_011
	fnFloatROUND_W   uint8 = 0b001_100
	fnFloatTRUNC_W   uint8 = 0b001_101
	fnFloatCEIL_W    uint8 = 0b001_110
	fnFloatFLOOR_W   uint8 = 0b001_111
	fnFloatCVT_S     uint8 = 0b100_000
	fnFloatCVT_D     uint8 = 0b100_001
	fnFloatCVT_W     uint8 = 0b100_100
	fnFloatCVT_L     uint8 = 0b100_101
)

var cop1ArithByFunction = map[uint8]UniqueId{
	fnFloatADD: ADD_FMT, fnFloatSUB: SUB_FMT, fnFloatMUL: MUL_FMT, fnFloatDIV: DIV_FMT,
	fnFloatSQRT: SQRT_FMT, fnFloatABS: ABS_FMT, fnFloatMOV: MOV_FMT, fnFloatNEG: NEG_FMT,
	fnFloatROUND_L: ROUND_L_FMT, fnFloatTRUNC_L: TRUNC_L_FMT, fnFloatCEIL_L: CEIL_L_FMT, fnFloatFLOOR_L: FLOOR_L_FMT,
	fnFloatROUND_W: ROUND_W_FMT, fnFloatTRUNC_W: TRUNC_W_FMT, fnFloatCEIL_W: CEIL_W_FMT, fnFloatFLOOR_W: FLOOR_W_FMT,
	fnFloatCVT_S: CVT_S_FMT, fnFloatCVT_D: CVT_D_FMT, fnFloatCVT_W: CVT_W_FMT, fnFloatCVT_L: CVT_L_FMT,
}

// isCompareFunction reports whether the function field's top two bits select
// the C.cond.fmt family (0b11_cccc).
func isCompareFunction(fn uint8) bool {
	return fn&0b110000 == 0b110000
}

func decodeCop1(i Instruction) UniqueId {
	if id, ok := cop1MoveByFormat[i.Fmt]; ok {
		return id
	}
	if i.Fmt == cop1fmtBC {
		switch {
		case i.Tf && i.Nd:
			return BC1TL
		case i.Tf:
			return BC1T
		case i.Nd:
			return BC1FL
		default:
			return BC1F
		}
	}
	switch i.Fmt {
	case cop1fmtS, cop1fmtD, cop1fmtW, cop1fmtL:
		if isCompareFunction(i.Function) {
			return C_COND_FMT
		}
		if id, ok := cop1ArithByFunction[i.Function]; ok {
			return id
		}
	}
	return INVALID
}

func blankOutCop1(i *Instruction) {
	if _, ok := cop1MoveByFormat[i.Fmt]; ok {
		i.Rt, i.Fs, i.Fd = 0, 0, 0
		return
	}
	if i.Fmt == cop1fmtBC {
		i.Fs, i.Fd, i.Function = 0, 0, 0
		return
	}
	switch i.Fmt {
	case cop1fmtS, cop1fmtD, cop1fmtW, cop1fmtL:
		i.Ft, i.Fs, i.Fd = 0, 0, 0
	}
}
