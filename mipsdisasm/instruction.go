package mipsdisasm

// Instruction is an immutable (except for BlankOut) decoding of a single
// 32-bit big-endian MIPS/RSP word. Every field is extracted eagerly at
// decode time; callers never need to re-derive a field from Raw.
type Instruction struct {
	Raw uint32

	UniqueId UniqueId

	Opcode   uint8 // bits 31-26
	Rs       uint8 // bits 25-21
	Rt       uint8 // bits 20-16
	Rd       uint8 // bits 15-11
	Sa       uint8 // bits 10-6
	Function uint8 // bits 5-0

	Immediate  uint16 // bits 15-0, raw bit pattern; SignedImmediate() sign-extends
	InstrIndex uint32 // bits 25-0, the J-type jump target field

	// Coprocessor aliases over the same bit positions as Rs/Rt/Rd/Sa.
	Fmt  uint8 // bits 25-21 (format field for COPz)
	Ft   uint8 // bits 20-16
	Fs   uint8 // bits 15-11
	Fd   uint8 // bits 10-6
	Tf   bool  // bit 16, branch-on-true vs branch-on-false for BCzx
	Nd   bool  // bit 17, "likely" (annul delay slot) for BCzx
	Cond uint8 // bits 3-0, C.cond.fmt comparison predicate

	// Vector-unit aliases (COP2/RSP).
	VecOp     uint8 // bits 10-6; the LWC2/SWC2 element-transfer sub-op is selected from Rd, not from this field
	VecElem   uint8 // bits 10-7, broadcast/element select for VU ops
	VecOffset uint8 // bits 6-0, scaled offset for vector loads/stores
}

// decodeFields splits the raw word into its positional fields. It never
// inspects UniqueId and is shared by every dispatch path.
func decodeFields(word uint32) Instruction {
	return Instruction{
		Raw:        word,
		Opcode:     uint8((word >> 26) & 0x3F),
		Rs:         uint8((word >> 21) & 0x1F),
		Rt:         uint8((word >> 16) & 0x1F),
		Rd:         uint8((word >> 11) & 0x1F),
		Sa:         uint8((word >> 6) & 0x1F),
		Function:   uint8(word & 0x3F),
		Immediate:  uint16(word & 0xFFFF),
		InstrIndex: word & 0x3FFFFFF,
		Fmt:        uint8((word >> 21) & 0x1F),
		Ft:         uint8((word >> 16) & 0x1F),
		Fs:         uint8((word >> 11) & 0x1F),
		Fd:         uint8((word >> 6) & 0x1F),
		Tf:         (word>>16)&1 != 0,
		Nd:         (word>>17)&1 != 0,
		Cond:       uint8(word & 0xF),
		VecOp:      uint8((word >> 6) & 0x1F),
		VecElem:    uint8((word >> 7) & 0xF),
		VecOffset:  uint8(word & 0x7F),
	}
}

// SignedImmediate sign-extends the 16-bit immediate field.
func (i Instruction) SignedImmediate() int32 {
	return int32(int16(i.Immediate))
}

// IsImplemented reports whether the decoder recognized this word.
func (i Instruction) IsImplemented() bool {
	return i.UniqueId != INVALID
}

var branchIds = map[UniqueId]bool{
	BEQ: true, BNE: true, BLEZ: true, BGTZ: true,
	BEQL: true, BNEL: true, BLEZL: true, BGTZL: true,
	BLTZ: true, BGEZ: true, BLTZL: true, BGEZL: true,
	BLTZAL: true, BGEZAL: true, BLTZALL: true, BGEZALL: true,
	BC0F: true, BC0T: true, BC0FL: true, BC0TL: true,
	BC1F: true, BC1T: true, BC1FL: true, BC1TL: true,
	BC2F: true, BC2T: true, BC2FL: true, BC2TL: true,
}

var branchLikelyIds = map[UniqueId]bool{
	BEQL: true, BNEL: true, BLEZL: true, BGTZL: true,
	BLTZL: true, BGEZL: true, BLTZALL: true, BGEZALL: true,
	BC0FL: true, BC0TL: true, BC1FL: true, BC1TL: true, BC2FL: true, BC2TL: true,
}

// IsBranch is true for every conditional-branch variant, across the integer
// unit and all three coprocessors, per spec §4.1.
func (i Instruction) IsBranch() bool {
	return branchIds[i.UniqueId]
}

// IsBranchLikely is the subset of IsBranch whose delay slot is annulled when
// the branch is not taken.
func (i Instruction) IsBranchLikely() bool {
	return branchLikelyIds[i.UniqueId]
}

// IsJType is true only for the two unconditional jump-and-link-free/linked
// instructions that carry the 26-bit instr_index field.
func (i Instruction) IsJType() bool {
	return i.UniqueId == J || i.UniqueId == JAL
}

var iTypeIds = map[UniqueId]bool{
	ADDI: true, ADDIU: true, SLTI: true, SLTIU: true,
	ANDI: true, ORI: true, XORI: true, LUI: true,
	LB: true, LH: true, LWL: true, LW: true, LBU: true, LHU: true, LWR: true, LD: true,
	SB: true, SH: true, SWL: true, SW: true, SWR: true, SD: true,
	CACHE: true, LL: true, SC: true,
	LWC1: true, SWC1: true, LDC1: true, SDC1: true,
}

// IsIType covers loads/stores, immediate ALU ops and LUI; branches carry a
// PC-relative word offset rather than an address component and are
// deliberately excluded (spec §4.1).
func (i Instruction) IsIType() bool {
	return iTypeIds[i.UniqueId]
}

var floatIds = map[UniqueId]bool{
	MFC1: true, DMFC1: true, CFC1: true, MTC1: true, DMTC1: true, CTC1: true,
	BC1F: true, BC1T: true, BC1FL: true, BC1TL: true,
	ADD_FMT: true, SUB_FMT: true, MUL_FMT: true, DIV_FMT: true, SQRT_FMT: true,
	ABS_FMT: true, MOV_FMT: true, NEG_FMT: true,
	ROUND_L_FMT: true, TRUNC_L_FMT: true, CEIL_L_FMT: true, FLOOR_L_FMT: true,
	ROUND_W_FMT: true, TRUNC_W_FMT: true, CEIL_W_FMT: true, FLOOR_W_FMT: true,
	CVT_S_FMT: true, CVT_D_FMT: true, CVT_W_FMT: true, CVT_L_FMT: true,
	C_COND_FMT: true,
	LWC1:       true, SWC1: true, LDC1: true, SDC1: true,
}

// IsFloat is true whenever the instruction operates on the $f register file.
func (i Instruction) IsFloat() bool {
	return floatIds[i.UniqueId]
}

// IsDoubleFloat reports whether a float instruction's operand width is
// double precision, based on the decoded Fmt field (10000=S, 10001=D).
func (i Instruction) IsDoubleFloat() bool {
	if !i.IsFloat() {
		return false
	}
	switch i.UniqueId {
	case LDC1, SDC1:
		return true
	case LWC1, SWC1:
		return false
	}
	return i.Fmt == cop1fmtD
}

var rtModifiers = map[UniqueId]bool{
	LB: true, LH: true, LWL: true, LW: true, LBU: true, LHU: true, LWR: true, LD: true, LL: true,
	LUI: true, ADDI: true, ADDIU: true, SLTI: true, SLTIU: true, ANDI: true, ORI: true, XORI: true,
	MFC0: true, DMFC0: true, CFC0: true,
	MFC1: true, DMFC1: true, CFC1: true,
	MFC2: true, CFC2: true,
}

// ModifiesRt is true for loads, LUI, immediate ALU ops and coprocessor moves
// into the general register file. Branches never modify Rt even though some
// encode a register in that field (spec §4.1).
func (i Instruction) ModifiesRt() bool {
	if i.IsBranch() {
		return false
	}
	return rtModifiers[i.UniqueId]
}

var rdNonModifiers = map[UniqueId]bool{
	JR: true, TGE: true, TGEU: true, TLT: true, TLTU: true, TEQ: true, TNE: true,
	SYSCALL: true, BREAK: true, SYNC: true, MTHI: true, MTLO: true,
}

// ModifiesRd is true for SPECIAL register-register results, excluding jumps
// and traps which carry a register field without writing it.
func (i Instruction) ModifiesRd() bool {
	switch i.UniqueId {
	case SLL, SRL, SRA, SLLV, SRLV, SRAV, JALR, MOVZ, MOVN,
		MFHI, MFLO, ADD, ADDU, SUB, SUBU, AND, OR, XOR, NOR, SLT, SLTU:
		return true
	}
	return false
}

// SameOpcode reports whether two instructions share the same concrete
// variant, ignoring operand values. Used by diffing and by BlankOut's
// idempotency guarantee.
func (i Instruction) SameOpcode(other Instruction) bool {
	return i.UniqueId == other.UniqueId
}

// SameOpcodeButDifferentArguments reports whether two instructions are the
// same variant but decode to different operands.
func (i Instruction) SameOpcodeButDifferentArguments(other Instruction) bool {
	if i.UniqueId != other.UniqueId {
		return false
	}
	return i.Raw != other.Raw
}

// BlankOut zeroes the operand-carrying fields for the instruction's shape
// while preserving the opcode identity, so SameOpcode(before, after) holds.
// It is idempotent: blanking an already-blanked instruction is a no-op.
func (i *Instruction) BlankOut() {
	switch {
	case i.IsJType():
		i.InstrIndex = 0
	case i.IsBranch():
		i.Rs, i.Rt, i.Immediate = 0, 0, 0
	case i.UniqueId == INVALID:
		// Preserve raw fields for data-emission fallback.
	default:
		blankOutByFormat(i)
	}
}

func blankOutByFormat(i *Instruction) {
	switch i.Opcode {
	case opSPECIAL:
		i.Rs, i.Rt, i.Rd, i.Sa = 0, 0, 0, 0
	case opREGIMM:
		i.Rs, i.Immediate = 0, 0
	case opCOP0:
		blankOutCop0(i)
	case opCOP1:
		blankOutCop1(i)
	case opCOP2:
		blankOutCop2(i)
	default:
		// Plain I-type: zero rs/rt/immediate.
		i.Rs, i.Rt, i.Immediate = 0, 0, 0
	}
}
