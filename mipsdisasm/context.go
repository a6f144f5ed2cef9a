package mipsdisasm

import "fmt"

// SectionType tags which ELF-ish section a symbol or relocation belongs to,
// mirroring spimdisasm's FileSectionType without pulling in full ELF linking.
type SectionType int

const (
	SectionUnknown SectionType = iota
	SectionText
	SectionData
	SectionRodata
	SectionBss
)

// ContextSymbol is a named, vram-addressed entry in the shared Context. Name
// resolution is lazy: if NameFunc is set it overrides Name at render time,
// the same pattern as MipsSymbolBase.py's setNameGetCallback.
type ContextSymbol struct {
	Vram uint32
	Name string

	// NameFunc, when set, overrides Name. Used for symbols whose final
	// display name depends on analysis that completes after the symbol is
	// first registered (e.g. a jump table discovered mid-function).
	NameFunc func() string

	Type          string // "f32", "f64", "byte", "short", "word", ... ("" = untyped)
	Section       SectionType
	IsDefined     bool
	VromAddress   int64 // -1 if unknown
	Size          int64 // -1 if unknown
	Autogenerated bool
}

// GetName resolves the symbol's display name, preferring NameFunc when set.
func (s *ContextSymbol) GetName() string {
	if s.NameFunc != nil {
		return s.NameFunc()
	}
	return s.Name
}

// SetNameIfUnset assigns Name only if it is still empty, so an
// explicitly-provided name is never clobbered by a later autogenerated guess.
func (s *ContextSymbol) SetNameIfUnset(name string) {
	if s.Name == "" {
		s.Name = name
	}
}

func (s *ContextSymbol) isByte() bool  { return s.Type == "byte" }
func (s *ContextSymbol) isShort() bool { return s.Type == "short" }

// Covers reports whether addr falls within [Vram, Vram+Size).
func (s *ContextSymbol) Covers(addr uint32) bool {
	if s.Size <= 0 {
		return addr == s.Vram
	}
	return addr >= s.Vram && uint64(addr) < uint64(s.Vram)+uint64(s.Size)
}

// RelocEntry is a pre-populated linker relocation, read but never resolved by
// this core (spec §1 Non-goals: "linker-level relocation resolution beyond
// reading pre-populated entries").
type RelocEntry struct {
	SymbolName string
	Addend     int32
}

// Context is the shared, mutable symbol registry the Analyzer writes to and
// the Emitter reads from. All mutations are monotonic: upserts only, nothing
// is ever removed during analysis (spec §3 Invariants).
type Context struct {
	symbols      map[uint32]*ContextSymbol
	branchLabels map[uint32]*ContextSymbol
	jumpTables   map[uint32]*ContextSymbol
	fakeFuncs    map[uint32]*ContextSymbol
	functions    map[uint32]*ContextSymbol

	// relocs is keyed by section then by file offset.
	relocs map[SectionType]map[int64]RelocEntry

	// constants is keyed by the literal 32-bit value.
	constants map[uint32]*ContextSymbol
}

// NewContext returns an empty, ready-to-use Context.
func NewContext() *Context {
	return &Context{
		symbols:      make(map[uint32]*ContextSymbol),
		branchLabels: make(map[uint32]*ContextSymbol),
		jumpTables:   make(map[uint32]*ContextSymbol),
		fakeFuncs:    make(map[uint32]*ContextSymbol),
		functions:    make(map[uint32]*ContextSymbol),
		relocs:       make(map[SectionType]map[int64]RelocEntry),
		constants:    make(map[uint32]*ContextSymbol),
	}
}

// GetGenericSymbol looks up a symbol by exact address, or (with
// tryPlusOffset) the largest-keyed symbol at or below addr whose declared
// size covers it.
func (c *Context) GetGenericSymbol(addr uint32, tryPlusOffset bool) *ContextSymbol {
	if sym, ok := c.symbols[addr]; ok {
		return sym
	}
	if !tryPlusOffset {
		return nil
	}
	var best *ContextSymbol
	for vram, sym := range c.symbols {
		if vram <= addr && sym.Covers(addr) {
			if best == nil || vram > best.Vram {
				best = sym
			}
		}
	}
	return best
}

// GetGenericLabel looks up a branch label by exact vram address.
func (c *Context) GetGenericLabel(addr uint32) string {
	if sym, ok := c.branchLabels[addr]; ok {
		return sym.GetName()
	}
	return ""
}

// GetFunction returns the function symbol registered at addr, if any.
func (c *Context) GetFunction(addr uint32) *ContextSymbol {
	return c.functions[addr]
}

func upsert(table map[uint32]*ContextSymbol, addr uint32, name string) *ContextSymbol {
	if existing, ok := table[addr]; ok {
		if !existing.Autogenerated && existing.Name != "" {
			// A non-autogenerated name already present wins (spec §4.2).
			return existing
		}
		existing.Name = name
		return existing
	}
	sym := &ContextSymbol{Vram: addr, Name: name, VromAddress: -1, Size: -1}
	table[addr] = sym
	return sym
}

// AddFunction upserts a real-function symbol at addr. When name is empty,
// fallbackName (e.g. "func_80012340") is used and the entry is marked
// autogenerated so a later, better name can still win.
func (c *Context) AddFunction(name string, addr uint32, fallbackName string) *ContextSymbol {
	finalName, auto := name, false
	if finalName == "" {
		finalName, auto = fallbackName, true
	}
	sym := upsert(c.functions, addr, finalName)
	if sym.Name == finalName {
		sym.Autogenerated = auto
	}
	return sym
}

// AddFakeFunction upserts a label believed to be a tail-call/intra-procedural
// jump target rather than a real call (spec glossary: "fake function").
func (c *Context) AddFakeFunction(addr uint32, fallbackName string) *ContextSymbol {
	sym := upsert(c.fakeFuncs, addr, fallbackName)
	sym.Autogenerated = true
	return sym
}

// AddBranchLabel upserts an intra-function branch target label.
func (c *Context) AddBranchLabel(addr uint32, label string) *ContextSymbol {
	sym := upsert(c.branchLabels, addr, label)
	sym.Autogenerated = true
	return sym
}

// AddJumpTable upserts a jump-table symbol discovered via a computed JR.
func (c *Context) AddJumpTable(addr uint32, fallbackName string) *ContextSymbol {
	sym := upsert(c.jumpTables, addr, fallbackName)
	sym.Autogenerated = true
	return sym
}

// IsJumpTable reports whether addr has been registered as a jump table.
func (c *Context) IsJumpTable(addr uint32) bool {
	_, ok := c.jumpTables[addr]
	return ok
}

// IsFakeFunction reports whether addr has been registered as a fake function
// and returns its label when so.
func (c *Context) IsFakeFunction(addr uint32) (string, bool) {
	sym, ok := c.fakeFuncs[addr]
	if !ok {
		return "", false
	}
	return sym.GetName(), true
}

// AddSymbol upserts a plain data symbol, e.g. the analyzer's "D_<hex>" guess.
func (c *Context) AddSymbol(addr uint32, name string) *ContextSymbol {
	return upsert(c.symbols, addr, name)
}

// AllSymbols returns every generic data symbol currently registered, in no
// particular order.
func (c *Context) AllSymbols() []*ContextSymbol {
	out := make([]*ContextSymbol, 0, len(c.symbols))
	for _, sym := range c.symbols {
		out = append(out, sym)
	}
	return out
}

// GetConstant performs an exact lookup in the named-constants table.
func (c *Context) GetConstant(value uint32) *ContextSymbol {
	return c.constants[value]
}

// AddConstant upserts a named constant keyed by its literal 32-bit value.
func (c *Context) AddConstant(value uint32, fallbackName string) *ContextSymbol {
	if sym, ok := c.constants[value]; ok {
		return sym
	}
	sym := &ContextSymbol{Vram: value, Name: fallbackName, VromAddress: -1, Size: -1, Autogenerated: true}
	c.constants[value] = sym
	return sym
}

// AddReloc registers a pre-populated relocation entry for a (section, file
// offset) pair. The core never resolves relocations beyond this lookup.
func (c *Context) AddReloc(section SectionType, fileOffset int64, entry RelocEntry) {
	if fileOffset < 0 {
		panic("reloc file offset is negative")
	}
	m, ok := c.relocs[section]
	if !ok {
		m = make(map[int64]RelocEntry)
		c.relocs[section] = m
	}
	m[fileOffset] = entry
}

// GetRelocSymbol returns the relocation entry recorded at (fileOffset,
// section), if any.
func (c *Context) GetRelocSymbol(fileOffset int64, section SectionType) (RelocEntry, bool) {
	m, ok := c.relocs[section]
	if !ok {
		return RelocEntry{}, false
	}
	e, ok := m[fileOffset]
	return e, ok
}

// NamePlusOffset renders a relocation's symbol name together with its addend
// folded against an already-read word value, matching
// ContextSymbol.getNamePlusOffset's GAS-friendly `sym+N` / `sym-N` form.
func (e RelocEntry) NamePlusOffset(word uint32) string {
	addend := e.Addend + int32(word)
	switch {
	case addend == 0:
		return e.SymbolName
	case addend > 0:
		return fmt.Sprintf("%s+0x%X", e.SymbolName, addend)
	default:
		return fmt.Sprintf("%s-0x%X", e.SymbolName, -addend)
	}
}
