package mipsdisasm

import "testing"

func decodeAll(words []uint32) []Instruction {
	out := make([]Instruction, len(words))
	for i, w := range words {
		out[i] = Decode(w)
	}
	return out
}

// Scenario 1: LUI/ADDIU pair. spec.md's literal example words use a LUI
// immediate of 0x0, which falls below the analyzer's immediate >= 0x4000
// pointer-forming gate (spec.md section 4.3 rule 3, restored faithfully
// from MipsFunction.py's analyze()); see DESIGN.md's Open Question notes
// for that conflict. This fixture instead uses an immediate that clears
// the gate so the test exercises the pairing behavior the scenario
// describes.
func TestAnalyzeLuiAddiuPair(t *testing.T) {
	words := []uint32{0x3C014000, 0x24210010} // lui $1, 0x4000 ; addiu $1, $1, 0x10
	fn := NewFunction("test", 0x80000000, 0, decodeAll(words))
	ctx := NewContext()
	cfg := DefaultAnalysisConfig()

	Analyze(fn, ctx, cfg)

	if fn.PointersPerInstruction[0] != 0x40000010 {
		t.Errorf("PointersPerInstruction[0] = 0x%X, want 0x40000010", fn.PointersPerInstruction[0])
	}
	if fn.PointersPerInstruction[4] != 0x40000010 {
		t.Errorf("PointersPerInstruction[4] = 0x%X, want 0x40000010", fn.PointersPerInstruction[4])
	}

	sym := ctx.GetGenericSymbol(0x40000010, false)
	if sym == nil || sym.Name != "D_40000010" {
		t.Fatalf("expected symbol D_40000010 at 0x40000010, got %+v", sym)
	}
}

// Scenario 2: LUI/LW pair across an unconditional branch; the look-ahead
// through the branch pairs the LUI with the LW at the branch target and both
// offsets resolve to the same address. As in TestAnalyzeLuiAddiuPair, the LUI immediate is
// bumped above spec.md's literal 0x0080 to clear the pointer-forming gate.
func TestAnalyzeLuiLwAcrossBranch(t *testing.T) {
	words := []uint32{
		0x3C084080, // lui $t0, 0x4080
		0x10000002, // b (beq $zero,$zero) +2 instructions
		0x00000000, // nop (delay slot)
		0x00000000, // nop
		0x8D080020, // lw $t0, 0x20($t0)
	}
	fn := NewFunction("test", 0x80000000, 0, decodeAll(words))
	ctx := NewContext()
	cfg := DefaultAnalysisConfig()

	Analyze(fn, ctx, cfg)

	// Resolved address is the LUI's upper half (0x4080<<16) plus the LW's
	// signed immediate (0x20), independent of the function's vram base.
	addr, ok := fn.PointersPerInstruction[16] // the LW's byte offset
	if !ok || addr != 0x40800020 {
		t.Errorf("expected LW at offset 16 paired to 0x40800020, got %X (ok=%v)", addr, ok)
	}
	if addr, ok := fn.PointersPerInstruction[0]; !ok || addr != 0x40800020 {
		t.Errorf("expected LUI at offset 0 paired to 0x40800020, got %X (ok=%v)", addr, ok)
	}
}

// Scenario 1b: a genuine small-integer LUI (below the gate) must NOT be
// reported as pointer-forming — the false positive the gate exists to
// suppress (spec.md section 1 Non-goals).
func TestAnalyzeLuiAddiuBelowGateIsNotPointer(t *testing.T) {
	words := []uint32{0x3C010002, 0x24210003} // lui $1, 0x2 ; addiu $1, $1, 0x3
	fn := NewFunction("test", 0x80000000, 0, decodeAll(words))
	ctx := NewContext()
	cfg := DefaultAnalysisConfig()

	Analyze(fn, ctx, cfg)

	if _, ok := fn.PointersPerInstruction[0]; ok {
		t.Error("expected a sub-0x4000 LUI to not be paired as a pointer")
	}
	if _, ok := fn.PointersPerInstruction[4]; ok {
		t.Error("expected the following ADDIU to not be paired as a pointer")
	}
}

// Scenario 3: ORI constant formation.
func TestAnalyzeOriConstant(t *testing.T) {
	words := []uint32{0x3C013F80, 0x34210000} // lui $1, 0x3F80 ; ori $1, $1, 0x0
	fn := NewFunction("test", 0x80000000, 0, decodeAll(words))
	ctx := NewContext()
	cfg := DefaultAnalysisConfig()

	Analyze(fn, ctx, cfg)

	if fn.ConstantsPerInstruction[0] != 0x3F800000 {
		t.Errorf("ConstantsPerInstruction[0] = 0x%X, want 0x3F800000", fn.ConstantsPerInstruction[0])
	}
	if fn.ConstantsPerInstruction[4] != 0x3F800000 {
		t.Errorf("ConstantsPerInstruction[4] = 0x%X, want 0x3F800000", fn.ConstantsPerInstruction[4])
	}
	if _, ok := fn.ReferencedConstants[0x3F800000]; !ok {
		t.Error("expected 0x3F800000 in ReferencedConstants")
	}
}

// Scenario 4: jump table discovery via JR on a register loaded from LUI/ADDIU.
func TestAnalyzeJumpTable(t *testing.T) {
	words := []uint32{
		0x3C088001, // lui $t0, 0x8001
		0x25080000, // addiu $t0, $t0, 0x0
		0x01000008, // jr $t0
		0x00000000, // nop
	}
	fn := NewFunction("test", 0x80000000, 0, decodeAll(words))
	ctx := NewContext()
	cfg := DefaultAnalysisConfig()

	Analyze(fn, ctx, cfg)

	if !ctx.IsJumpTable(0x80010000) {
		t.Error("expected 0x80010000 to be registered as a jump table")
	}
	if _, ok := fn.ReferencedVRams[0x80010000]; !ok {
		t.Error("expected 0x80010000 in ReferencedVRams")
	}
}

// Scenario 5: trailing-nop trim, preserving one delay-slot nop after JR $ra.
func TestRemoveTrailingNops(t *testing.T) {
	words := []uint32{
		0x03E00008, // jr $ra
		0x00000000, // nop
		0x00000000, // nop
		0x00000000, // nop
	}
	fn := NewFunction("test", 0x80000000, 0, decodeAll(words))

	if !RemoveTrailingNops(fn) {
		t.Fatal("expected RemoveTrailingNops to report a change")
	}
	if len(fn.Instructions) != 2 {
		t.Fatalf("len(Instructions) = %d, want 2", len(fn.Instructions))
	}
	last := fn.Instructions[len(fn.Instructions)-1]
	if last.UniqueId != NOP {
		t.Errorf("last instruction = %v, want NOP", last.UniqueId)
	}
}

// Scenario 6: a branch-likely must not leave its LUI tracked, so a later
// (non-branch-target) ADDIU on the same register must not get paired.
func TestAnalyzeBranchLikelySuppressesTracking(t *testing.T) {
	words := []uint32{
		0x50000001, // beql $zero, $zero, +1 (branch likely; its own target is the 1st nop below)
		0x3C088000, // lui $t0, 0x8000  (immediately follows the branch-likely)
		0x00000000, // nop
		0x00000000, // nop
		0x25080010, // addiu $t0, $t0, 0x10 (should NOT be paired: tracking was suppressed)
	}
	fn := NewFunction("test", 0x80000000, 0, decodeAll(words))
	ctx := NewContext()
	cfg := DefaultAnalysisConfig()

	Analyze(fn, ctx, cfg)

	if _, ok := fn.PointersPerInstruction[16]; ok {
		t.Error("expected the LUI following a branch-likely to not be paired with the later ADDIU")
	}
}
