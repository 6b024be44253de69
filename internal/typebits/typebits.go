// Package typebits implements the three orthogonal bitsets that make up
// a declaration's Type (§3.2): Base, Store, and Attr. Each bit carries
// the DialectSet in which it is legal plus its canonical English and
// C/C++ spellings, mirroring the teacher's NodeMapping catalogue
// (internal/core/contracts.go's NodeMapping, providers/*/provider.go's
// BuildMappings) where every universal concept is paired with the
// dialects/languages that support it and a canonical rendering.
package typebits

import "github.com/paul-j-lucas/cdecl-sub004/internal/dialect"

// Base identifies the underlying kind of a Type.
type Base uint64

const (
	BaseNone Base = 0
	BaseVoid Base = 1 << iota
	BaseBool
	BaseChar
	BaseWChar
	BaseChar8
	BaseChar16
	BaseChar32
	BaseShort
	BaseInt
	BaseLong
	BaseLongLong
	BaseSigned
	BaseUnsigned
	BaseFloat
	BaseDouble
	BaseComplex
	BaseImaginary
	BaseBitInt
	BaseAuto
	BaseEnum
	BaseClass
	BaseStruct
	BaseUnion
	BaseTypedef
	BaseAccum  // Embedded C _Accum
	BaseFract  // Embedded C _Fract
	BaseSat    // Embedded C _Sat
)

// Store covers storage duration, linkage, and function-like qualifiers.
type Store uint64

const (
	StoreNone Store = 0
	StoreExtern Store = 1 << iota
	StoreStatic
	StoreRegister
	StoreThreadLocal
	StoreTypedef
	StoreMutable
	StoreAuto // storage-class auto, distinct from BaseAuto (type deduction)
	StoreInline
	StoreVirtual
	StoreExplicit
	StorePure
	StoreFinal
	StoreOverride
	StoreConst
	StoreVolatile
	StoreRestrict
	StoreConstexpr
	StoreConsteval
	StoreConstinit
	StoreNoexcept
	StoreThrow
	StoreFriend
	StoreDefault
	StoreDelete
	StoreRefQualifier  // &
	StoreRvalueRefQual // &&
	StoreShared        // UPC
	StoreRelaxed       // UPC
	StoreStrict        // UPC
)

// Attr covers C23 / C++11 attributes.
type Attr uint32

const (
	AttrNone Attr = 0
	AttrCarriesDependency Attr = 1 << iota
	AttrDeprecated
	AttrMaybeUnused
	AttrNodiscard
	AttrNoreturn
	AttrNoUniqueAddress
	AttrReproducible
	AttrUnsequenced
)

// Type is the triple (Base, Store, Attr) that appears on every AST node
// (§3.2).
type Type struct {
	Base Base
	Store Store
	Attr Attr

	// BitIntWidth holds N for _BitInt(N); meaningful only when Base has
	// BaseBitInt set.
	BitIntWidth uint32
}

// bitInfo pairs one bit with its legality and canonical spellings.
type bitInfo struct {
	dialects dialect.Set
	cSpelling string
	englishSpelling string
}

var baseInfo = map[Base]bitInfo{
	BaseVoid:     {dialect.AllDialects, "void", "void"},
	BaseBool:     {sinceDialects(dialect.C99), "bool", "bool"}, // _Bool before C23; bool keyword C23+/C++
	BaseChar:     {dialect.AllDialects, "char", "char"},
	BaseWChar:    {sinceDialects(dialect.C95), "wchar_t", "wide char"},
	BaseChar8:    {dialect.Of(dialect.C23, dialect.Cpp20, dialect.Cpp23), "char8_t", "8-bit char"},
	BaseChar16:   {dialect.Of(dialect.C11, dialect.C17, dialect.C23, dialect.Cpp11, dialect.Cpp14, dialect.Cpp17, dialect.Cpp20, dialect.Cpp23), "char16_t", "16-bit char"},
	BaseChar32:   {dialect.Of(dialect.C11, dialect.C17, dialect.C23, dialect.Cpp11, dialect.Cpp14, dialect.Cpp17, dialect.Cpp20, dialect.Cpp23), "char32_t", "32-bit char"},
	BaseShort:    {dialect.AllDialects, "short", "short"},
	BaseInt:      {dialect.AllDialects, "int", "int"},
	BaseLong:     {dialect.AllDialects, "long", "long"},
	BaseLongLong: {sinceDialects(dialect.C99), "long long", "long long"},
	BaseSigned:   {dialect.AllDialects, "signed", "signed"},
	BaseUnsigned: {dialect.AllDialects, "unsigned", "unsigned"},
	BaseFloat:    {dialect.AllDialects, "float", "float"},
	BaseDouble:   {dialect.AllDialects, "double", "double"},
	BaseComplex:  {sinceDialects(dialect.C99), "_Complex", "complex"},
	BaseImaginary: {sinceDialects(dialect.C99), "_Imaginary", "imaginary"},
	BaseBitInt:   {dialect.Of(dialect.C23), "_BitInt", "bit-precise int"},
	BaseAuto:     {dialect.Of(dialect.Cpp11, dialect.Cpp14, dialect.Cpp17, dialect.Cpp20, dialect.Cpp23), "auto", "auto"},
	BaseEnum:     {dialect.AllDialects, "enum", "enum"},
	BaseClass:    {cppOnly(), "class", "class"},
	BaseStruct:   {dialect.AllDialects, "struct", "struct"},
	BaseUnion:    {dialect.AllDialects, "union", "union"},
	BaseTypedef:  {dialect.AllDialects, "typedef", "typedef"},
	BaseAccum:    {dialect.Of(dialect.C99, dialect.C11, dialect.C17, dialect.C23), "_Accum", "accum"},
	BaseFract:    {dialect.Of(dialect.C99, dialect.C11, dialect.C17, dialect.C23), "_Fract", "fract"},
	BaseSat:      {dialect.Of(dialect.C99, dialect.C11, dialect.C17, dialect.C23), "_Sat", "saturating"},
}

var storeInfo = map[Store]bitInfo{
	StoreExtern:        {dialect.AllDialects, "extern", "extern"},
	StoreStatic:        {dialect.AllDialects, "static", "static"},
	StoreRegister:      {dialect.AllDialects, "register", "register"},
	StoreThreadLocal:   {dialect.Of(dialect.C11, dialect.C17, dialect.C23, dialect.Cpp11, dialect.Cpp14, dialect.Cpp17, dialect.Cpp20, dialect.Cpp23), "thread_local", "thread-local"},
	StoreTypedef:       {dialect.AllDialects, "typedef", "typedef"},
	StoreMutable:       {cppOnly(), "mutable", "mutable"},
	StoreAuto:          {dialect.AllDialects, "auto", "auto"},
	StoreInline:        {dialect.Of(dialect.C99, dialect.C11, dialect.C17, dialect.C23, dialect.Cpp98, dialect.Cpp03, dialect.Cpp11, dialect.Cpp14, dialect.Cpp17, dialect.Cpp20, dialect.Cpp23), "inline", "inline"},
	StoreVirtual:       {cppOnly(), "virtual", "virtual"},
	StoreExplicit:      {cppOnly(), "explicit", "explicit"},
	StorePure:          {cppOnly(), "pure", "pure"},
	StoreFinal:         {dialect.Of(dialect.Cpp11, dialect.Cpp14, dialect.Cpp17, dialect.Cpp20, dialect.Cpp23), "final", "final"},
	StoreOverride:      {dialect.Of(dialect.Cpp11, dialect.Cpp14, dialect.Cpp17, dialect.Cpp20, dialect.Cpp23), "override", "override"},
	StoreConst:         {dialect.AllDialects, "const", "const"},
	StoreVolatile:      {dialect.AllDialects, "volatile", "volatile"},
	StoreRestrict:      {dialect.Of(dialect.C99, dialect.C11, dialect.C17, dialect.C23), "restrict", "restricted"},
	StoreConstexpr:     {dialect.Of(dialect.Cpp11, dialect.Cpp14, dialect.Cpp17, dialect.Cpp20, dialect.Cpp23), "constexpr", "constexpr"},
	StoreConsteval:     {dialect.Of(dialect.Cpp20, dialect.Cpp23), "consteval", "consteval"},
	StoreConstinit:     {dialect.Of(dialect.Cpp20, dialect.Cpp23), "constinit", "constinit"},
	StoreNoexcept:      {dialect.Of(dialect.Cpp11, dialect.Cpp14, dialect.Cpp17, dialect.Cpp20, dialect.Cpp23), "noexcept", "non-throwing"},
	StoreThrow:         {cppOnly(), "throw", "throw"},
	StoreFriend:        {cppOnly(), "friend", "friend"},
	StoreDefault:       {dialect.Of(dialect.Cpp11, dialect.Cpp14, dialect.Cpp17, dialect.Cpp20, dialect.Cpp23), "default", "defaulted"},
	StoreDelete:        {dialect.Of(dialect.Cpp11, dialect.Cpp14, dialect.Cpp17, dialect.Cpp20, dialect.Cpp23), "delete", "deleted"},
	StoreRefQualifier:  {dialect.Of(dialect.Cpp11, dialect.Cpp14, dialect.Cpp17, dialect.Cpp20, dialect.Cpp23), "&", "reference-qualified"},
	StoreRvalueRefQual: {dialect.Of(dialect.Cpp11, dialect.Cpp14, dialect.Cpp17, dialect.Cpp20, dialect.Cpp23), "&&", "rvalue-reference-qualified"},
	StoreShared:        {dialect.None, "shared", "shared"},  // UPC extension, no standard dialect
	StoreRelaxed:       {dialect.None, "relaxed", "relaxed"},
	StoreStrict:        {dialect.None, "strict", "strict"},
}

var attrInfo = map[Attr]bitInfo{
	AttrCarriesDependency: {dialect.Of(dialect.Cpp11, dialect.Cpp14, dialect.Cpp17, dialect.Cpp20, dialect.Cpp23), "carries_dependency", "carries-dependency"},
	AttrDeprecated:        {dialect.Of(dialect.C23, dialect.Cpp14, dialect.Cpp17, dialect.Cpp20, dialect.Cpp23), "deprecated", "deprecated"},
	AttrMaybeUnused:       {dialect.Of(dialect.C23, dialect.Cpp17, dialect.Cpp20, dialect.Cpp23), "maybe_unused", "maybe-unused"},
	AttrNodiscard:         {dialect.Of(dialect.C23, dialect.Cpp17, dialect.Cpp20, dialect.Cpp23), "nodiscard", "no-discard"},
	AttrNoreturn:          {dialect.Of(dialect.C11, dialect.C17, dialect.C23, dialect.Cpp11, dialect.Cpp14, dialect.Cpp17, dialect.Cpp20, dialect.Cpp23), "noreturn", "no-return"},
	AttrNoUniqueAddress:   {dialect.Of(dialect.Cpp20, dialect.Cpp23), "no_unique_address", "no-unique-address"},
	AttrReproducible:      {dialect.Of(dialect.C23), "reproducible", "reproducible"},
	AttrUnsequenced:       {dialect.Of(dialect.C23), "unsequenced", "unsequenced"},
}

func cppOnly() dialect.Set {
	return dialect.Of(dialect.Cpp98, dialect.Cpp03, dialect.Cpp11, dialect.Cpp14, dialect.Cpp17, dialect.Cpp20, dialect.Cpp23)
}

func sinceDialects(from dialect.Dialect) dialect.Set {
	s := dialect.Of()
	for _, d := range dialect.All() {
		if dialect.RankOrder(d, from) >= 0 && dialect.FamilyOf(d) == dialect.FamilyOf(from) {
			s = s.Add(d)
		}
		if dialect.FamilyOf(d) != dialect.FamilyOf(from) {
			s = s.Add(d) // the other family is unaffected by a same-family "since" cutoff
		}
	}
	return s
}

// eachBase/eachStore/eachAttr iterate the single bits set in a mask.
func eachBase(b Base, fn func(Base)) {
	for bit := Base(1); bit != 0; bit <<= 1 {
		if b&bit != 0 {
			fn(bit)
		}
	}
}

func eachStore(s Store, fn func(Store)) {
	for bit := Store(1); bit != 0; bit <<= 1 {
		if s&bit != 0 {
			fn(bit)
		}
	}
}

func eachAttr(a Attr, fn func(Attr)) {
	for bit := Attr(1); bit != 0; bit <<= 1 {
		if a&bit != 0 {
			fn(bit)
		}
	}
}

// Check returns the DialectSet in which every bit of t is simultaneously
// legal: dialect.AllDialects if t is universally legal, or dialect.None
// if no dialect admits it (§4.2).
func Check(t Type) dialect.Set {
	legal := dialect.AllDialects
	eachBase(t.Base, func(b Base) {
		if info, ok := baseInfo[b]; ok {
			legal = legal.Intersect(info.dialects)
		}
	})
	eachStore(t.Store, func(s Store) {
		if info, ok := storeInfo[s]; ok {
			legal = legal.Intersect(info.dialects)
		}
	})
	eachAttr(t.Attr, func(a Attr) {
		if info, ok := attrInfo[a]; ok {
			legal = legal.Intersect(info.dialects)
		}
	})
	if t.Base&BaseLongLong != 0 {
		legal = legal.Intersect(sinceDialects(dialect.C99))
	}
	return legal
}
