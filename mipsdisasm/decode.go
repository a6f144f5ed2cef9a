package mipsdisasm

// Primary opcode field values (bits 31-26).
const (
	opSPECIAL uint8 = 0x00
	opREGIMM  uint8 = 0x01
	opJ       uint8 = 0x02
	opJAL     uint8 = 0x03
	opBEQ     uint8 = 0x04
	opBNE     uint8 = 0x05
	opBLEZ    uint8 = 0x06
	opBGTZ    uint8 = 0x07
	opADDI    uint8 = 0x08
	opADDIU   uint8 = 0x09
	opSLTI    uint8 = 0x0A
	opSLTIU   uint8 = 0x0B
	opANDI    uint8 = 0x0C
	opORI     uint8 = 0x0D
	opXORI    uint8 = 0x0E
	opLUI     uint8 = 0x0F
	opCOP0    uint8 = 0x10
	opCOP1    uint8 = 0x11
	opCOP2    uint8 = 0x12
	opBEQL    uint8 = 0x14
	opBNEL    uint8 = 0x15
	opBLEZL   uint8 = 0x16
	opBGTZL   uint8 = 0x17
	opLB      uint8 = 0x20
	opLH      uint8 = 0x21
	opLWL     uint8 = 0x22
	opLW      uint8 = 0x23
	opLBU     uint8 = 0x24
	opLHU     uint8 = 0x25
	opLWR     uint8 = 0x26
	opSB      uint8 = 0x28
	opSH      uint8 = 0x29
	opSWL     uint8 = 0x2A
	opSW      uint8 = 0x2B
	opSWR     uint8 = 0x2E
	opCACHE   uint8 = 0x2F
	opLL      uint8 = 0x30
	opLWC1    uint8 = 0x31
	opLWC2    uint8 = 0x32
	opLD      uint8 = 0x37
	opSC      uint8 = 0x38
	opSWC1    uint8 = 0x39
	opSWC2    uint8 = 0x3A
	opSD      uint8 = 0x3F
)

// Decode is a total function from a 32-bit big-endian instruction word to its
// typed Instruction record. It never fails: unrecognized encodings come back
// with UniqueId == INVALID and IsImplemented() == false, with their raw
// fields intact for data-emission fallback (spec §4.1, §7).
func Decode(word uint32) Instruction {
	instr := decodeFields(word)

	switch instr.Opcode {
	case opSPECIAL:
		instr.UniqueId = decodeSpecial(instr)
	case opREGIMM:
		instr.UniqueId = decodeRegimm(instr)
	case opJ:
		instr.UniqueId = J
	case opJAL:
		instr.UniqueId = JAL
	case opBEQ:
		instr.UniqueId = BEQ
	case opBNE:
		instr.UniqueId = BNE
	case opBLEZ:
		instr.UniqueId = BLEZ
	case opBGTZ:
		instr.UniqueId = BGTZ
	case opADDI:
		instr.UniqueId = ADDI
	case opADDIU:
		instr.UniqueId = ADDIU
	case opSLTI:
		instr.UniqueId = SLTI
	case opSLTIU:
		instr.UniqueId = SLTIU
	case opANDI:
		instr.UniqueId = ANDI
	case opORI:
		instr.UniqueId = ORI
	case opXORI:
		instr.UniqueId = XORI
	case opLUI:
		instr.UniqueId = LUI
	case opCOP0:
		instr.UniqueId = decodeCop0(instr)
	case opCOP1:
		instr.UniqueId = decodeCop1(instr)
	case opCOP2:
		instr.UniqueId = decodeCop2(instr)
	case opBEQL:
		instr.UniqueId = BEQL
	case opBNEL:
		instr.UniqueId = BNEL
	case opBLEZL:
		instr.UniqueId = BLEZL
	case opBGTZL:
		instr.UniqueId = BGTZL
	case opLB:
		instr.UniqueId = LB
	case opLH:
		instr.UniqueId = LH
	case opLWL:
		instr.UniqueId = LWL
	case opLW:
		instr.UniqueId = LW
	case opLBU:
		instr.UniqueId = LBU
	case opLHU:
		instr.UniqueId = LHU
	case opLWR:
		instr.UniqueId = LWR
	case opSB:
		instr.UniqueId = SB
	case opSH:
		instr.UniqueId = SH
	case opSWL:
		instr.UniqueId = SWL
	case opSW:
		instr.UniqueId = SW
	case opSWR:
		instr.UniqueId = SWR
	case opCACHE:
		instr.UniqueId = CACHE
	case opLL:
		instr.UniqueId = LL
	case opLWC1:
		instr.UniqueId = LWC1
	case opLWC2:
		instr.UniqueId = decodeVecLoad(instr)
	case opLD:
		instr.UniqueId = LD
	case opSC:
		instr.UniqueId = SC
	case opSWC1:
		instr.UniqueId = SWC1
	case opSWC2:
		instr.UniqueId = decodeVecStore(instr)
	case opSD:
		instr.UniqueId = SD
	default:
		instr.UniqueId = INVALID
	}

	if instr.UniqueId == SLL && word == 0 {
		instr.UniqueId = NOP
	}

	return instr
}

// SPECIAL (function-field) dispatch, selected when Opcode == opSPECIAL.
const (
	fnSLL     uint8 = 0x00
	fnSRL     uint8 = 0x02
	fnSRA     uint8 = 0x03
	fnSLLV    uint8 = 0x04
	fnSRLV    uint8 = 0x06
	fnSRAV    uint8 = 0x07
	fnJR      uint8 = 0x08
	fnJALR    uint8 = 0x09
	fnMOVZ    uint8 = 0x0A
	fnMOVN    uint8 = 0x0B
	fnSYSCALL uint8 = 0x0C
	fnBREAK   uint8 = 0x0D
	fnSYNC    uint8 = 0x0F
	fnMFHI    uint8 = 0x10
	fnMTHI    uint8 = 0x11
	fnMFLO    uint8 = 0x12
	fnMTLO    uint8 = 0x13
	fnMULT    uint8 = 0x18
	fnMULTU   uint8 = 0x19
	fnDIV     uint8 = 0x1A
	fnDIVU    uint8 = 0x1B
	fnADD     uint8 = 0x20
	fnADDU    uint8 = 0x21
	fnSUB     uint8 = 0x22
	fnSUBU    uint8 = 0x23
	fnAND     uint8 = 0x24
	fnOR      uint8 = 0x25
	fnXOR     uint8 = 0x26
	fnNOR     uint8 = 0x27
	fnSLT     uint8 = 0x2A
	fnSLTU    uint8 = 0x2B
	fnTGE     uint8 = 0x30
	fnTGEU    uint8 = 0x31
	fnTLT     uint8 = 0x32
	fnTLTU    uint8 = 0x33
	fnTEQ     uint8 = 0x34
	fnTNE     uint8 = 0x36
)

var specialTable = map[uint8]UniqueId{
	fnSLL: SLL, fnSRL: SRL, fnSRA: SRA, fnSLLV: SLLV, fnSRLV: SRLV, fnSRAV: SRAV,
	fnJR: JR, fnJALR: JALR, fnMOVZ: MOVZ, fnMOVN: MOVN,
	fnSYSCALL: SYSCALL, fnBREAK: BREAK, fnSYNC: SYNC,
	fnMFHI: MFHI, fnMTHI: MTHI, fnMFLO: MFLO, fnMTLO: MTLO,
	fnMULT: MULT, fnMULTU: MULTU, fnDIV: DIV, fnDIVU: DIVU,
	fnADD: ADD, fnADDU: ADDU, fnSUB: SUB, fnSUBU: SUBU,
	fnAND: AND, fnOR: OR, fnXOR: XOR, fnNOR: NOR,
	fnSLT: SLT, fnSLTU: SLTU,
	fnTGE: TGE, fnTGEU: TGEU, fnTLT: TLT, fnTLTU: TLTU, fnTEQ: TEQ, fnTNE: TNE,
}

func decodeSpecial(i Instruction) UniqueId {
	if id, ok := specialTable[i.Function]; ok {
		return id
	}
	return INVALID
}

// REGIMM (rt-field) dispatch, selected when Opcode == opREGIMM.
const (
	rtBLTZ    uint8 = 0x00
	rtBGEZ    uint8 = 0x01
	rtBLTZL   uint8 = 0x02
	rtBGEZL   uint8 = 0x03
	rtBLTZAL  uint8 = 0x10
	rtBGEZAL  uint8 = 0x11
	rtBLTZALL uint8 = 0x12
	rtBGEZALL uint8 = 0x13
)

var regimmTable = map[uint8]UniqueId{
	rtBLTZ: BLTZ, rtBGEZ: BGEZ, rtBLTZL: BLTZL, rtBGEZL: BGEZL,
	rtBLTZAL: BLTZAL, rtBGEZAL: BGEZAL, rtBLTZALL: BLTZALL, rtBGEZALL: BGEZALL,
}

func decodeRegimm(i Instruction) UniqueId {
	if id, ok := regimmTable[i.Rt]; ok {
		return id
	}
	return INVALID
}

// vecLoadTable/vecStoreTable select the RSP element-transfer op keyed by the
// 5-bit field that would be Rd on a general-purpose LWC2/SWC2.
var vecLoadTable = map[uint8]UniqueId{
	0x00: LBV, 0x01: LSV, 0x02: LLV, 0x03: LDV, 0x04: LQV, 0x05: LRV,
	0x06: LPV, 0x07: LUV, 0x08: LHV, 0x09: LFV, 0x0A: LWV, 0x0B: LTV,
}

var vecStoreTable = map[uint8]UniqueId{
	0x00: SBV, 0x01: SSV, 0x02: SLV, 0x03: SDV, 0x04: SQV, 0x05: SRV,
	0x06: SPV, 0x07: SUV, 0x08: SHV, 0x09: SFV, 0x0A: SWV, 0x0B: STV,
}

func decodeVecLoad(i Instruction) UniqueId {
	if id, ok := vecLoadTable[i.Rd]; ok {
		return id
	}
	return INVALID
}

func decodeVecStore(i Instruction) UniqueId {
	if id, ok := vecStoreTable[i.Rd]; ok {
		return id
	}
	return INVALID
}
