package mipsdisasm

// Function is the unit the Analyzer consumes and the Emitter renders: a
// contiguous run of instructions along with everything discovered about it,
// grounded on MipsFunction.py's constructor fields.
type Function struct {
	Name       string
	VramBase   int64 // -1 if unknown
	OffsetBase int64 // file offset of the first instruction

	Instructions []Instruction

	// LocalLabels maps a file offset (OffsetBase plus the instruction's byte
	// offset, a multiple of 4) to the label text rendered just before that
	// instruction, e.g. ".L12350".
	LocalLabels map[int]string

	// PointersPerInstruction maps an instruction-index byte offset to the
	// vram address of the %hi/%lo pointer resolved for it.
	PointersPerInstruction map[int]uint32

	// ConstantsPerInstruction maps an instruction-index byte offset to a
	// non-pointer constant value resolved for it (an ORI paired with a
	// preceding LUI; both offsets are recorded).
	ConstantsPerInstruction map[int]uint32

	BranchInstructions []int // byte offsets of every branch/branch-likely instruction

	ReferencedVRams     map[uint32]struct{}
	ReferencedConstants map[uint32]struct{}

	HasUnimplementedInstrs bool
	PointersRemoved        bool
}

// NewFunction constructs a Function over instrs, starting analysis bookkeeping
// from scratch.
func NewFunction(name string, vramBase, offsetBase int64, instrs []Instruction) *Function {
	f := &Function{
		Name:                    name,
		VramBase:                vramBase,
		OffsetBase:              offsetBase,
		Instructions:            instrs,
		LocalLabels:             make(map[int]string),
		PointersPerInstruction:  make(map[int]uint32),
		ConstantsPerInstruction: make(map[int]uint32),
		ReferencedVRams:         make(map[uint32]struct{}),
		ReferencedConstants:     make(map[uint32]struct{}),
	}
	for _, instr := range instrs {
		if !instr.IsImplemented() {
			f.HasUnimplementedInstrs = true
			break
		}
	}
	return f
}

// SizeBytes returns the byte length of the function, 4 bytes per instruction.
func (f *Function) SizeBytes() int {
	return len(f.Instructions) * 4
}

// InstrAt returns the instruction whose byte offset from OffsetBase is
// offset, and whether that offset is in range.
func (f *Function) InstrAt(offset int) (Instruction, bool) {
	idx := offset / 4
	if offset < 0 || offset%4 != 0 || idx >= len(f.Instructions) {
		return Instruction{}, false
	}
	return f.Instructions[idx], true
}

// VramOf returns the vram address of the instruction at byte offset, or 0 if
// VramBase is unknown (-1).
func (f *Function) VramOf(offset int) uint32 {
	if f.VramBase < 0 {
		return 0
	}
	return uint32(f.VramBase + int64(offset))
}

// addReferencedVRam records addr as referenced by this function and returns
// it, a small helper the analyzer calls every time it resolves a pointer.
func (f *Function) addReferencedVRam(addr uint32) uint32 {
	f.ReferencedVRams[addr] = struct{}{}
	return addr
}

func (f *Function) addReferencedConstant(value uint32) uint32 {
	f.ReferencedConstants[value] = struct{}{}
	return value
}
