package mipsdisasm

// COP2 (RSP) format-field values. The vector unit reuses the same move/branch
// shapes as COP0/COP1; everything else escapes to the vector function table
// keyed by the 6-bit function field.
const (
	cop2fmtMFC2 uint8 = 0b00_000
	cop2fmtCFC2 uint8 = 0b00_010
	cop2fmtMTC2 uint8 = 0b00_100
	cop2fmtCTC2 uint8 = 0b00_110
	cop2fmtBC   uint8 = 0b01_000
)

var cop2MoveByFormat = map[uint8]UniqueId{
	cop2fmtMFC2: MFC2, cop2fmtCFC2: CFC2, cop2fmtMTC2: MTC2, cop2fmtCTC2: CTC2,
}

// RSP vector opcodes, keyed by the 6-bit function field of a COP2 vector
// instruction (bits 5-0, same position as the SPECIAL function field).
var vectorOpTable = map[uint8]UniqueId{
	0b000000: VMULF, 0b000001: VMULU,
	0b000100: VMUDL, 0b000101: VMUDM, 0b000110: VMUDN, 0b000111: VMUDH,
	0b001000: VMACF, 0b001001: VMACU,
	0b001100: VMADL, 0b001101: VMADM, 0b001110: VMADN, 0b001111: VMADH,
	0b010000: VADD, 0b010001: VSUB, 0b010011: VABS,
	0b010100: VADDC, 0b010101: VSUBC,
	0b011101: VSAR,
	0b100000: VAND, 0b100001: VNAND, 0b100010: VOR, 0b100011: VNOR,
	0b100100: VXOR, 0b100101: VNXOR,
	0b101000: VLT, 0b101001: VEQ, 0b101010: VNE, 0b101011: VGE,
	0b110000: VRCP, 0b110001: VRCPL, 0b110010: VRCPH, 0b110011: VMOV,
	0b110100: VRSQ, 0b110101: VRSQL, 0b110110: VRSQH, 0b110111: VNOP,
}

func decodeCop2(i Instruction) UniqueId {
	if id, ok := cop2MoveByFormat[i.Fmt]; ok {
		return id
	}
	if i.Fmt == cop2fmtBC {
		switch {
		case i.Tf && i.Nd:
			return BC2TL
		case i.Tf:
			return BC2T
		case i.Nd:
			return BC2FL
		default:
			return BC2F
		}
	}
	// Vector unit instructions always set the top bit of the format field
	// (the RSP's COP2 "vector" escape), with the real opcode in Function.
	if i.Fmt&0b10000 != 0 {
		if id, ok := vectorOpTable[i.Function]; ok {
			return id
		}
	}
	return INVALID
}

func blankOutCop2(i *Instruction) {
	if _, ok := cop2MoveByFormat[i.Fmt]; ok {
		i.Rt, i.Fs, i.Fd = 0, 0, 0
		return
	}
	if i.Fmt == cop2fmtBC {
		i.Fs, i.Fd, i.Function = 0, 0, 0
		return
	}
	if _, ok := vectorOpTable[i.Function]; ok {
		i.Ft, i.Fs, i.Fd, i.VecElem = 0, 0, 0, 0
	}
}
