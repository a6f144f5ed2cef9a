package mipsdisasm

import "testing"

func TestCapabilityPredicates(t *testing.T) {
	lui := Decode(0x3C010000)
	if !lui.ModifiesRt() {
		t.Error("ModifiesRt(LUI) = false, want true")
	}

	beq := Decode(uint32(opBEQ) << 26)
	if beq.ModifiesRt() {
		t.Error("ModifiesRt(BEQ) = true, want false")
	}
	if !beq.IsBranch() {
		t.Error("IsBranch(BEQ) = false, want true")
	}
	if beq.IsJType() || beq.IsIType() {
		t.Error("BEQ must be neither J-type nor I-type")
	}

	addu := Decode(uint32(0)<<26 | 0x21)
	if !addu.ModifiesRd() {
		t.Error("ModifiesRd(ADDU) = false, want true")
	}

	jr := Decode(uint32(0)<<26 | uint32(fnJR))
	if jr.ModifiesRd() {
		t.Error("ModifiesRd(JR) = true, want false")
	}
}

func TestIsBranchLikelyImpliesBranch(t *testing.T) {
	for id := range branchLikelyIds {
		if !branchIds[id] {
			t.Errorf("%v is branch-likely but not branch", id)
		}
	}
}

func TestSignedImmediate(t *testing.T) {
	instr := Decode(0x8C01FFFF) // lw $1, -1($0)
	if instr.SignedImmediate() != -1 {
		t.Errorf("SignedImmediate() = %d, want -1", instr.SignedImmediate())
	}
}

func TestBlankOutIsIdempotentAndPreservesOpcode(t *testing.T) {
	words := []uint32{
		0x3C010000,                                          // lui
		uint32(opBEQ)<<26 | 3<<21 | 4<<16 | 0x10,            // beq
		uint32(opJ)<<26 | 0x400,                             // j
		uint32(0)<<26 | 3<<21 | 4<<16 | 2<<11 | 0x21,        // addu
		uint32(opCOP0)<<26 | uint32(cop0fmtMFC0)<<21 | 4<<16 | 12<<11,
	}

	for _, w := range words {
		before := Decode(w)
		after := before
		after.BlankOut()
		if !before.SameOpcode(after) {
			t.Errorf("word 0x%08X: BlankOut changed opcode identity: %v -> %v", w, before.UniqueId, after.UniqueId)
		}

		twice := after
		twice.BlankOut()
		if twice != after {
			t.Errorf("word 0x%08X: BlankOut is not idempotent", w)
		}
	}
}

func TestSameOpcodeButDifferentArguments(t *testing.T) {
	a := Decode(0x3C010000)
	b := Decode(0x3C020000)
	if !a.SameOpcodeButDifferentArguments(b) {
		t.Error("two LUIs with different rt should report SameOpcodeButDifferentArguments")
	}

	c := Decode(0x3C010000)
	if a.SameOpcodeButDifferentArguments(c) {
		t.Error("identical words should not report SameOpcodeButDifferentArguments")
	}
}
