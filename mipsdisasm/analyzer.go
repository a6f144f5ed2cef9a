package mipsdisasm

import "fmt"

func labelFor(addr uint32) string {
	return fmt.Sprintf(".L%05X", addr&0xFFFFF)
}

// isUnconditionalBranch reports whether instr is the "b label" pseudo-op,
// i.e. BEQ $zero, $zero, offset. The decoder never produces a dedicated
// unique id for the assembler pseudo-instruction "b", so identity is
// recovered from its operand shape instead.
func isUnconditionalBranch(instr Instruction) bool {
	return instr.UniqueId == BEQ && instr.Rs == 0 && instr.Rt == 0
}

// Analyze performs the forward single-pass abstract interpretation over f's
// instructions, registering symbols and labels into ctx as it goes. Grounded
// on MipsFunction.py's analyze()/_processSymbol.
func Analyze(f *Function, ctx *Context, cfg AnalysisConfig) {
	if !cfg.DisassembleUnknownInstructions && f.HasUnimplementedInstrs {
		if f.VramBase > -1 {
			offset := 0
			for range f.Instructions {
				currentVram := uint32(f.VramBase) + uint32(offset)
				if sym := ctx.GetGenericSymbol(currentVram, false); sym != nil {
					sym.IsDefined = true
				}
				offset += 4
			}
		}
		return
	}

	var trackedRegisters, trackedRegistersAll [32]int
	var trackedRegistersSet, trackedRegistersAllSet [32]bool
	var registersValues [32]uint32
	var registersValuesSet [32]bool

	instructionOffset := 0
	for idx, instr := range f.Instructions {
		isLui := false

		if !cfg.DisassembleUnknownInstructions && !instr.IsImplemented() {
			f.HasUnimplementedInstrs = true
			return
		}

		switch {
		case instr.IsBranch():
			diff := int(instr.SignedImmediate())
			branch := instructionOffset + diff*4 + 4

			var label string
			if f.VramBase >= 0 {
				f.addReferencedVRam(uint32(f.VramBase) + uint32(branch))
				if auxLabel := ctx.GetGenericLabel(uint32(f.VramBase) + uint32(branch)); auxLabel != "" {
					label = auxLabel
				} else {
					label = labelFor(uint32(f.VramBase) + uint32(branch))
				}
			} else {
				label = labelFor(uint32(f.OffsetBase) + uint32(branch))
			}

			f.LocalLabels[int(f.OffsetBase)+branch] = label
			if f.VramBase >= 0 {
				ctx.AddBranchLabel(uint32(f.VramBase)+uint32(branch), label)
			}
			f.BranchInstructions = append(f.BranchInstructions, instructionOffset)

		case instr.IsJType():
			target := 0x80000000 | (instr.InstrIndex << 2)
			if instr.UniqueId == J {
				ctx.AddFakeFunction(target, fmt.Sprintf("fakefunc_%08X", target))
			} else {
				ctx.AddFunction("", target, fmt.Sprintf("func_%08X", target))
			}
			f.PointersPerInstruction[instructionOffset] = target

		case instr.IsIType():
			isLui = instr.UniqueId == LUI
			if isLui {
				// Small upper halves are assumed to be plain small-integer
				// loads rather than %hi halves (spec.md section 4.3 rule 3):
				// the gate only suppresses pointer-forming and
				// trackedRegisters; trackedRegistersAll is still populated
				// unconditionally.
				if instr.Immediate >= 0x4000 {
					if idx > 0 && f.Instructions[idx-1].IsBranch() {
						lastInstr := f.Instructions[idx-1]
						diff := int(lastInstr.SignedImmediate())
						branch := instructionOffset + diff*4
						if branch > 0 {
							targetIdx := branch / 4
							if targetIdx < len(f.Instructions) {
								targetInstr := f.Instructions[targetIdx]
								if targetInstr.UniqueId == JR && gprName(targetInstr.Rs) == "$ra" && targetIdx+1 < len(f.Instructions) {
									targetIdx++
									targetInstr = f.Instructions[targetIdx]
								}
								if targetInstr.IsIType() && targetInstr.Rs == instr.Rt {
									switch targetInstr.UniqueId {
									case LUI, ANDI, ORI, XORI, CACHE:
									default:
										processSymbol(f, ctx, cfg, instr, instructionOffset, targetInstr, targetIdx*4)
									}
								}

								if !(lastInstr.IsBranchLikely() || isUnconditionalBranch(lastInstr)) {
									trackedRegisters[instr.Rt] = idx
									trackedRegistersSet[instr.Rt] = true
								}
							}
						}
					} else {
						trackedRegisters[instr.Rt] = idx
						trackedRegistersSet[instr.Rt] = true
					}
				}
				trackedRegistersAll[instr.Rt] = idx
				trackedRegistersAllSet[instr.Rt] = true
			} else if instr.UniqueId == ORI {
				rs := instr.Rs
				if trackedRegistersAllSet[rs] {
					luiIdx := trackedRegistersAll[rs]
					luiInstr := f.Instructions[luiIdx]
					upperHalf := uint32(luiInstr.Immediate) << 16
					lowerHalf := uint32(instr.Immediate)
					constant := upperHalf | lowerHalf
					f.addReferencedConstant(constant)
					f.ConstantsPerInstruction[instructionOffset] = constant
					f.ConstantsPerInstruction[luiIdx*4] = constant
					registersValues[instr.Rt] = constant
					registersValuesSet[instr.Rt] = true
				}
			} else {
				switch instr.UniqueId {
				case ANDI, XORI, CACHE:
				default:
					rs := instr.Rs
					if trackedRegistersSet[rs] {
						luiIdx := trackedRegisters[rs]
						luiInstr := f.Instructions[luiIdx]
						address := processSymbol(f, ctx, cfg, luiInstr, luiIdx*4, instr, instructionOffset)
						registersValues[instr.Rt] = address
						registersValuesSet[instr.Rt] = true
					}
				}
			}

		case instr.UniqueId == JR:
			rs := instr.Rs
			if gprName(rs) != "$ra" {
				if registersValuesSet[rs] {
					address := registersValues[rs]
					f.addReferencedVRam(address)
					ctx.AddJumpTable(address, fmt.Sprintf("jtbl_%08X", address))
				}
			}
		}

		if !instr.IsFloat() {
			if !isLui && instr.ModifiesRt() {
				rt := instr.Rt
				trackedRegistersSet[rt] = false
				trackedRegistersAllSet[rt] = false
			}

			if instr.ModifiesRd() {
				if instr.UniqueId == ADDU {
					if instr.Rd != instr.Rs && instr.Rd != instr.Rt {
						rd := instr.Rd
						trackedRegistersSet[rd] = false
						trackedRegistersAllSet[rd] = false
					}
				} else {
					rd := instr.Rd
					trackedRegistersSet[rd] = false
					trackedRegistersAllSet[rd] = false
				}
			}
		} else {
			switch instr.UniqueId {
			case MTC1, DMTC1, CTC1:
				rt := instr.Rt
				trackedRegistersSet[rt] = false
				trackedRegistersAllSet[rt] = false
			}
		}

		// Look-ahead symbol finder.
		if idx > 0 {
			lastInstr := f.Instructions[idx-1]
			if lastInstr.IsBranch() {
				diff := int(lastInstr.SignedImmediate())
				branch := instructionOffset + diff*4
				targetIdx := branch / 4
				if branch > 0 && targetIdx < len(f.Instructions) {
					targetInstr := f.Instructions[targetIdx]
					if targetInstr.IsIType() {
						switch targetInstr.UniqueId {
						case LUI, ANDI, ORI, XORI, CACHE:
						default:
							rs := targetInstr.Rs
							if trackedRegistersSet[rs] {
								luiIdx := trackedRegisters[rs]
								luiInstr := f.Instructions[luiIdx]
								processSymbol(f, ctx, cfg, luiInstr, luiIdx*4, targetInstr, targetIdx*4)
							}
						}
					}
				}
			}
		}

		instructionOffset += 4
	}
}

// processSymbol resolves and registers the %hi/%lo pair formed by luiInstr
// and lowerInstr, returning the resolved address.
func processSymbol(f *Function, ctx *Context, cfg AnalysisConfig, luiInstr Instruction, luiOffset int, lowerInstr Instruction, lowerOffset int) uint32 {
	upperHalf := uint32(luiInstr.Immediate) << 16
	lowerHalf := uint32(lowerInstr.SignedImmediate())
	address := upperHalf + lowerHalf
	f.addReferencedVRam(address)

	if ctx.GetGenericSymbol(address, false) == nil {
		if cfg.AddNewSymbols {
			sym := &ContextSymbol{Vram: address, Name: fmt.Sprintf("D_%08X", address), VromAddress: -1, Size: -1, Autogenerated: true}
			if lowerInstr.IsFloat() {
				if lowerInstr.IsDoubleFloat() {
					sym.Type = "f64"
				} else {
					sym.Type = "f32"
				}
			}
			if cfg.NewStuffSuffix != "" && f.VramBase >= 0 && address >= uint32(f.VramBase) {
				sym.Name += "_" + cfg.NewStuffSuffix
			}
			ctx.symbols[address] = sym
		}
	}

	if _, ok := f.PointersPerInstruction[lowerOffset]; !ok {
		f.PointersPerInstruction[lowerOffset] = address
	}
	if _, ok := f.PointersPerInstruction[luiOffset]; !ok {
		f.PointersPerInstruction[luiOffset] = address
	}

	return address
}

// CountDiffOpcodes counts instruction pairs (by index) whose UniqueId differ.
func CountDiffOpcodes(a, b *Function) int {
	n := len(a.Instructions)
	if len(b.Instructions) < n {
		n = len(b.Instructions)
	}
	result := 0
	for i := 0; i < n; i++ {
		if !a.Instructions[i].SameOpcode(b.Instructions[i]) {
			result++
		}
	}
	return result
}

// CountSameOpcodeButDifferentArguments counts instruction pairs sharing a
// UniqueId but decoding to different raw words.
func CountSameOpcodeButDifferentArguments(a, b *Function) int {
	n := len(a.Instructions)
	if len(b.Instructions) < n {
		n = len(b.Instructions)
	}
	result := 0
	for i := 0; i < n; i++ {
		if a.Instructions[i].SameOpcodeButDifferentArguments(b.Instructions[i]) {
			result++
		}
	}
	return result
}

// BlankOutDifferences blanks out instruction pairs whose opcodes match but
// arguments differ, in both functions. Returns whether anything changed.
func BlankOutDifferences(a, b *Function, cfg AnalysisConfig) bool {
	if !cfg.RemovePointers {
		return false
	}

	n := len(a.Instructions)
	if len(b.Instructions) < n {
		n = len(b.Instructions)
	}

	updated := false
	for i := 0; i < n; i++ {
		if a.Instructions[i].SameOpcodeButDifferentArguments(b.Instructions[i]) {
			a.Instructions[i].BlankOut()
			b.Instructions[i].BlankOut()
			updated = true
		}
	}
	return updated
}

// RemovePointers blanks out every instruction recorded in
// PointersPerInstruction (and, if IgnoreBranches, every branch instruction),
// marking f.PointersRemoved.
func RemovePointers(f *Function, cfg AnalysisConfig) bool {
	if !cfg.RemovePointers {
		return false
	}

	updated := len(f.PointersPerInstruction) > 0
	for offset := range f.PointersPerInstruction {
		idx := offset / 4
		if idx >= 0 && idx < len(f.Instructions) {
			f.Instructions[idx].BlankOut()
		}
	}

	if cfg.IgnoreBranches {
		updated = updated || len(f.BranchInstructions) > 0
		for _, offset := range f.BranchInstructions {
			idx := offset / 4
			if idx >= 0 && idx < len(f.Instructions) {
				f.Instructions[idx].BlankOut()
			}
		}
	}

	f.PointersRemoved = true
	return updated
}

// RemoveTrailingNops drops trailing NOPs, restoring exactly one when the
// function ends in "JR $ra; NOP*" (the canonical delay slot).
func RemoveTrailingNops(f *Function) bool {
	n := len(f.Instructions)
	firstNop := n

	for i := n - 1; i >= 0; i-- {
		instr := f.Instructions[i]
		if instr.UniqueId != NOP {
			if instr.UniqueId == JR && gprName(instr.Rs) == "$ra" {
				firstNop++
			}
			break
		}
		firstNop = i
	}

	if firstNop < n {
		f.Instructions = f.Instructions[:firstNop]
		return true
	}
	return false
}
