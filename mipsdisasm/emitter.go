package mipsdisasm

import (
	"fmt"
	"strings"
)

// Disassemble renders an analyzed Function as GAS-compatible text, or falls
// back to a raw .word dump when unimplemented instructions were found and
// DisassembleUnknownInstructions is off. Grounded on
// MipsFunction.py::disassemble/disassembleAsData.
func Disassemble(f *Function, ctx *Context, analysisCfg AnalysisConfig, cfg EmitConfig, index int) string {
	if !analysisCfg.DisassembleUnknownInstructions && f.HasUnimplementedInstrs {
		return DisassembleAsData(f, ctx, cfg)
	}

	var out strings.Builder

	fmt.Fprintf(&out, "glabel %s", f.Name)
	if cfg.FunctionAsmCount && index >= 0 {
		fmt.Fprintf(&out, " # %d", index)
	}
	out.WriteString("\n")

	wasLastInstABranch := false

	instructionOffset := 0
	auxOffset := f.OffsetBase
	for _, instr := range f.Instructions {
		offsetHex := fmt.Sprintf("%0*X", cfg.AsmCommentOffsetWidth, auxOffset)
		vramHex := ""
		if f.VramBase >= 0 {
			vramHex = fmt.Sprintf("%08X", uint32(f.VramBase)+uint32(instructionOffset))
		}
		instrHex := fmt.Sprintf("%08X", instr.Raw)

		var immOverride string
		hasOverride := false

		switch {
		case instr.IsBranch():
			diff := int(instr.SignedImmediate())
			branch := instructionOffset + diff*4 + 4
			label := ctx.GetGenericLabel(uint32(f.VramBase) + uint32(branch))
			if f.VramBase >= 0 && label != "" {
				immOverride, hasOverride = label, true
			} else if l, ok := f.LocalLabels[int(f.OffsetBase)+branch]; ok {
				immOverride, hasOverride = l, true
			}

		case instr.IsIType():
			if !f.PointersRemoved {
				if address, ok := f.PointersPerInstruction[instructionOffset]; ok {
					if symbol := ctx.GetGenericSymbol(address, true); symbol != nil {
						if instr.UniqueId == LUI {
							immOverride = fmt.Sprintf("%%hi(%s)", symbol.GetName())
						} else {
							immOverride = fmt.Sprintf("%%lo(%s)", symbol.GetName())
						}
						hasOverride = true
					}
				} else if constant, ok := f.ConstantsPerInstruction[instructionOffset]; ok {
					if symbol := ctx.GetConstant(constant); symbol != nil {
						if instr.UniqueId == LUI {
							immOverride = fmt.Sprintf("%%hi(%s)", symbol.GetName())
						} else {
							immOverride = fmt.Sprintf("%%lo(%s)", symbol.GetName())
						}
						hasOverride = true
					}
				}
			}
		}

		ljust := cfg.OpcodeLjust
		if wasLastInstABranch {
			ljust--
		}

		line := renderInstruction(instr, ljust, immOverride, hasOverride)

		comment := ""
		if cfg.AsmComment {
			comment = fmt.Sprintf("/* %s %s %s */  ", offsetHex, vramHex, instrHex)
		}
		if wasLastInstABranch {
			comment += " "
		}
		line = comment + line

		label := ""
		currentVram := uint32(f.VramBase) + uint32(instructionOffset)
		if labelAux := ctx.GetGenericLabel(currentVram); f.VramBase >= 0 && labelAux != "" {
			if ctx.GetFunction(currentVram) != nil {
				// Skip over functions to avoid duplication.
			} else if ctx.IsJumpTable(currentVram) {
				label = "glabel " + labelAux + "\n"
			} else {
				label = labelAux + ":\n"
			}
		} else if l, ok := f.LocalLabels[int(auxOffset)]; ok {
			label = l + ":\n"
		} else if fakeLabel, ok := ctx.IsFakeFunction(currentVram); ok {
			label = fakeLabel + ":\n"
		}

		out.WriteString(label)
		out.WriteString(line)
		out.WriteString(cfg.LineEnds)

		wasLastInstABranch = instr.IsBranch() || instr.IsJType() || instr.UniqueId == JR || instr.UniqueId == JALR

		instructionOffset += 4
		auxOffset += 4
	}

	return out.String()
}

// DisassembleAsData renders f as a sequence of raw .word directives, used
// when the function contains instructions the decoder did not recognize.
func DisassembleAsData(f *Function, ctx *Context, cfg EmitConfig) string {
	var out strings.Builder

	instructionOffset := 0
	auxOffset := f.OffsetBase
	for _, instr := range f.Instructions {
		offsetHex := fmt.Sprintf("%0*X", cfg.AsmCommentOffsetWidth, auxOffset)
		vramHex := ""
		label := ""

		if f.VramBase >= 0 {
			currentVram := uint32(f.VramBase) + uint32(instructionOffset)
			vramHex = fmt.Sprintf("%08X", currentVram)

			auxLabel := ctx.GetGenericLabel(currentVram)
			if auxLabel == "" {
				if sym := ctx.GetGenericSymbol(currentVram, false); sym != nil {
					auxLabel = sym.GetName()
				}
			}
			if auxLabel != "" {
				label = fmt.Sprintf("\nglabel %s\n", auxLabel)
			}

			if sym := ctx.GetGenericSymbol(currentVram, false); sym != nil {
				sym.IsDefined = true
			}
		}

		instrHex := fmt.Sprintf("%08X", instr.Raw)
		line := fmt.Sprintf(".word  0x%s", instrHex)

		comment := ""
		if cfg.AsmComment {
			comment = fmt.Sprintf("/* %s %s %s */  ", offsetHex, vramHex, instrHex)
		}
		line = comment + line

		out.WriteString(label)
		out.WriteString(line)
		out.WriteString(cfg.LineEnds)

		instructionOffset += 4
		auxOffset += 4
	}

	return out.String()
}

// renderInstruction formats a single instruction's mnemonic and operands.
// immOverride, when hasOverride is true, replaces the rendered immediate or
// branch target text.
func renderInstruction(i Instruction, ljust int, immOverride string, hasOverride bool) string {
	mnemonic := mnemonicFor(i)
	operands := operandsFor(i, immOverride, hasOverride)

	if operands == "" {
		return mnemonic
	}
	return fmt.Sprintf("%-*s %s", ljust, mnemonic, operands)
}

func mnemonicFor(i Instruction) string {
	name := i.UniqueId.String()
	if !i.IsFloat() {
		return name
	}
	switch i.UniqueId {
	case MFC1, DMFC1, CFC1, MTC1, DMTC1, CTC1,
		BC1F, BC1T, BC1FL, BC1TL, LWC1, SWC1, LDC1, SDC1:
		return name
	case C_COND_FMT:
		return fmt.Sprintf("c.%s.%s", floatCompareConds[i.Cond&0xF], floatFmtSuffix(i.Fmt))
	default:
		return fmt.Sprintf("%s.%s", name, floatFmtSuffix(i.Fmt))
	}
}

func floatFmtSuffix(fmtField uint8) string {
	switch fmtField {
	case cop1fmtD:
		return "d"
	case cop1fmtW:
		return "w"
	case cop1fmtL:
		return "l"
	default:
		return "s"
	}
}

func operandsFor(i Instruction, immOverride string, hasOverride bool) string {
	imm := func() string {
		if hasOverride {
			return immOverride
		}
		return fmt.Sprintf("0x%X", i.Immediate)
	}

	switch {
	case i.UniqueId == NOP:
		return ""
	case i.IsJType():
		return fmt.Sprintf("0x%X", i.InstrIndex<<2)
	case i.IsBranch():
		return branchOperands(i, imm())
	case i.UniqueId == LUI:
		return fmt.Sprintf("%s, %s", gprName(i.Rt), imm())
	case i.IsIType():
		return iTypeOperands(i, imm())
	default:
		return specialOperands(i)
	}
}

func branchOperands(i Instruction, target string) string {
	switch i.UniqueId {
	case BLTZ, BGEZ, BLTZL, BGEZL, BLTZAL, BGEZAL, BLTZALL, BGEZALL:
		return fmt.Sprintf("%s, %s", gprName(i.Rs), target)
	case BC0F, BC0T, BC0FL, BC0TL, BC1F, BC1T, BC1FL, BC1TL, BC2F, BC2T, BC2FL, BC2TL:
		return target
	default:
		return fmt.Sprintf("%s, %s, %s", gprName(i.Rs), gprName(i.Rt), target)
	}
}

func iTypeOperands(i Instruction, imm string) string {
	switch i.UniqueId {
	case LB, LH, LWL, LW, LBU, LHU, LWR, LD, LL, SB, SH, SWL, SW, SWR, SD, SC, CACHE:
		return fmt.Sprintf("%s, %s(%s)", gprName(i.Rt), imm, gprName(i.Rs))
	case LWC1, SWC1, LDC1, SDC1:
		return fmt.Sprintf("%s, %s(%s)", floatRegName(i.Ft), imm, gprName(i.Rs))
	default:
		return fmt.Sprintf("%s, %s, %s", gprName(i.Rt), gprName(i.Rs), imm)
	}
}

func specialOperands(i Instruction) string {
	if i.IsFloat() {
		return floatOperands(i)
	}
	if _, ok := cop0ByFormat[i.Fmt]; ok && i.Opcode == opCOP0 {
		return fmt.Sprintf("%s, %s", gprName(i.Rt), cop0RegName(i.Fs))
	}
	if _, ok := cop2MoveByFormat[i.Fmt]; ok && i.Opcode == opCOP2 {
		return fmt.Sprintf("%s, %s", gprName(i.Rt), vectorRegName(i.Fs))
	}
	if i.Opcode == opCOP2 {
		return vectorOperands(i)
	}

	switch i.UniqueId {
	case JR:
		return gprName(i.Rs)
	case JALR:
		if i.Rd == 31 {
			return gprName(i.Rs)
		}
		return fmt.Sprintf("%s, %s", gprName(i.Rd), gprName(i.Rs))
	case SLL, SRL, SRA:
		return fmt.Sprintf("%s, %s, 0x%X", gprName(i.Rd), gprName(i.Rt), i.Sa)
	case SLLV, SRLV, SRAV:
		return fmt.Sprintf("%s, %s, %s", gprName(i.Rd), gprName(i.Rt), gprName(i.Rs))
	case MOVZ, MOVN:
		return fmt.Sprintf("%s, %s, %s", gprName(i.Rd), gprName(i.Rs), gprName(i.Rt))
	case SYSCALL, BREAK, SYNC:
		return ""
	case MFHI, MFLO:
		return gprName(i.Rd)
	case MTHI, MTLO:
		return gprName(i.Rs)
	case MULT, MULTU, DIV, DIVU:
		return fmt.Sprintf("%s, %s", gprName(i.Rs), gprName(i.Rt))
	case TGE, TGEU, TLT, TLTU, TEQ, TNE:
		return fmt.Sprintf("%s, %s", gprName(i.Rs), gprName(i.Rt))
	case ADD, ADDU, SUB, SUBU, AND, OR, XOR, NOR, SLT, SLTU:
		return fmt.Sprintf("%s, %s, %s", gprName(i.Rd), gprName(i.Rs), gprName(i.Rt))
	case TLBR, TLBWI, TLBWR, TLBP, ERET:
		return ""
	}

	if id, ok := vecLoadTable[i.Rd]; ok && i.UniqueId == id {
		return fmt.Sprintf("%s[%d], 0x%X(%s)", vectorRegName(i.Rt), i.VecElem, i.VecOffset, gprName(i.Sa))
	}
	if id, ok := vecStoreTable[i.Rd]; ok && i.UniqueId == id {
		return fmt.Sprintf("%s[%d], 0x%X(%s)", vectorRegName(i.Rt), i.VecElem, i.VecOffset, gprName(i.Sa))
	}

	return ""
}

func vectorOperands(i Instruction) string {
	return fmt.Sprintf("%s, %s, %s[%d]", vectorRegName(i.Fd), vectorRegName(i.Fs), vectorRegName(i.Ft), i.VecElem)
}

func floatOperands(i Instruction) string {
	switch i.UniqueId {
	case MFC1, MTC1:
		return fmt.Sprintf("%s, %s", gprName(i.Rt), floatRegName(i.Fs))
	case DMFC1, DMTC1:
		return fmt.Sprintf("%s, %s", gprName(i.Rt), floatRegName(i.Fs))
	case CFC1, CTC1:
		return fmt.Sprintf("%s, %s", gprName(i.Rt), floatRegName(i.Fs))
	case LWC1, SWC1, LDC1, SDC1:
		return "" // handled by iTypeOperands
	case C_COND_FMT:
		return fmt.Sprintf("%s, %s", floatRegName(i.Fs), floatRegName(i.Ft))
	case ABS_FMT, MOV_FMT, NEG_FMT, SQRT_FMT,
		ROUND_L_FMT, TRUNC_L_FMT, CEIL_L_FMT, FLOOR_L_FMT,
		ROUND_W_FMT, TRUNC_W_FMT, CEIL_W_FMT, FLOOR_W_FMT,
		CVT_S_FMT, CVT_D_FMT, CVT_W_FMT, CVT_L_FMT:
		return fmt.Sprintf("%s, %s", floatRegName(i.Fd), floatRegName(i.Fs))
	default:
		return fmt.Sprintf("%s, %s, %s", floatRegName(i.Fd), floatRegName(i.Fs), floatRegName(i.Ft))
	}
}
