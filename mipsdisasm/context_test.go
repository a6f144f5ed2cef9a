package mipsdisasm

import "testing"

func TestAddFunctionUpsertKeepsExistingName(t *testing.T) {
	ctx := NewContext()
	ctx.AddFunction("real_name", 0x80001000, "func_80001000")

	sym := ctx.AddFunction("", 0x80001000, "func_80001000")
	if sym.Name != "real_name" {
		t.Errorf("Name = %q, want %q", sym.Name, "real_name")
	}
}

func TestAddFunctionAutogeneratedNameCanBeReplaced(t *testing.T) {
	ctx := NewContext()
	ctx.AddFunction("", 0x80001000, "func_80001000")

	sym := ctx.AddFunction("better_name", 0x80001000, "func_80001000")
	if sym.Name != "better_name" {
		t.Errorf("Name = %q, want %q", sym.Name, "better_name")
	}
}

func TestGetGenericSymbolExactMatch(t *testing.T) {
	ctx := NewContext()
	ctx.AddSymbol(0x80002000, "D_80002000")

	sym := ctx.GetGenericSymbol(0x80002000, false)
	if sym == nil || sym.Name != "D_80002000" {
		t.Fatalf("GetGenericSymbol exact match failed: %+v", sym)
	}

	if ctx.GetGenericSymbol(0x80002004, false) != nil {
		t.Error("expected no exact match at 0x80002004")
	}
}

func TestGetGenericSymbolPlusOffset(t *testing.T) {
	ctx := NewContext()
	sym := ctx.AddSymbol(0x80002000, "D_80002000")
	sym.Size = 0x10

	got := ctx.GetGenericSymbol(0x80002008, true)
	if got == nil || got.Vram != 0x80002000 {
		t.Fatalf("expected plus-offset match at base 0x80002000, got %+v", got)
	}

	if ctx.GetGenericSymbol(0x80002020, true) != nil {
		t.Error("expected no match past the symbol's declared size")
	}
}

func TestRelocSymbolNamePlusOffset(t *testing.T) {
	entry := RelocEntry{SymbolName: "foo", Addend: 4}
	if got := entry.NamePlusOffset(0); got != "foo+0x4" {
		t.Errorf("NamePlusOffset = %q, want foo+0x4", got)
	}

	zero := RelocEntry{SymbolName: "bar", Addend: 0}
	if got := zero.NamePlusOffset(0); got != "bar" {
		t.Errorf("NamePlusOffset = %q, want bar", got)
	}

	neg := RelocEntry{SymbolName: "baz", Addend: -8}
	if got := neg.NamePlusOffset(0); got != "baz-0x8" {
		t.Errorf("NamePlusOffset = %q, want baz-0x8", got)
	}
}

func TestAddJumpTableAndIsJumpTable(t *testing.T) {
	ctx := NewContext()
	if ctx.IsJumpTable(0x80003000) {
		t.Fatal("fresh context should have no jump tables")
	}
	ctx.AddJumpTable(0x80003000, "jtbl_80003000")
	if !ctx.IsJumpTable(0x80003000) {
		t.Error("expected 0x80003000 to be registered as a jump table")
	}
}

func TestAddFakeFunction(t *testing.T) {
	ctx := NewContext()
	ctx.AddFakeFunction(0x80004000, "fakefunc_80004000")

	name, ok := ctx.IsFakeFunction(0x80004000)
	if !ok || name != "fakefunc_80004000" {
		t.Errorf("IsFakeFunction = (%q, %v), want (fakefunc_80004000, true)", name, ok)
	}
}

func TestNameFuncOverridesName(t *testing.T) {
	sym := &ContextSymbol{Name: "stale"}
	sym.NameFunc = func() string { return "resolved" }
	if sym.GetName() != "resolved" {
		t.Errorf("GetName() = %q, want resolved", sym.GetName())
	}
}
