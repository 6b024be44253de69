package typebits

import "strings"

// storeOrder is the canonical storage-bit emission order (§4.2).
var storeOrder = []Store{
	StoreExtern, StoreStatic, StoreThreadLocal, StoreInline, StoreConstexpr,
	StoreConsteval, StoreConstinit, StoreVirtual, StoreExplicit, StoreMutable,
	StoreFriend, StoreRegister, StoreTypedef, StorePure, StoreFinal,
	StoreOverride, StoreDefault, StoreDelete, StoreNoexcept, StoreThrow,
	StoreShared, StoreRelaxed, StoreStrict,
}

// qualifierOrder is the canonical qualifier emission order (§4.2).
var qualifierOrder = []Store{StoreConst, StoreVolatile, StoreRestrict}

// baseOrder is the canonical base emission order (§4.2): "signed unsigned
// short long long long int", then the remaining bases in declaration order.
var baseOrder = []Base{
	BaseSigned, BaseUnsigned, BaseShort, BaseLongLong, BaseLong, BaseInt,
	BaseVoid, BaseBool, BaseChar, BaseWChar, BaseChar8, BaseChar16, BaseChar32,
	BaseFloat, BaseDouble, BaseComplex, BaseImaginary, BaseBitInt, BaseAuto,
	BaseAccum, BaseFract, BaseSat, BaseEnum, BaseClass, BaseStruct, BaseUnion,
	BaseTypedef,
}

var attrOrder = []Attr{
	AttrCarriesDependency, AttrDeprecated, AttrMaybeUnused, AttrNodiscard,
	AttrNoreturn, AttrNoUniqueAddress, AttrReproducible, AttrUnsequenced,
}

// NameC renders t in C/C++ source form: attributes in [[...]], then
// storage bits, then qualifiers, then base bits, each in canonical order
// (§4.2). eastConst controls whether const/volatile attached to the base
// are emitted after the base words (east) or before (west, the default
// cdecl style for the base specifier itself; pointee placement is the
// gibberish renderer's concern).
func NameC(t Type, eastConst bool) string {
	var words []string

	var attrWords []string
	for _, a := range attrOrder {
		if t.Attr&a != 0 {
			attrWords = append(attrWords, attrInfo[a].cSpelling)
		}
	}
	if len(attrWords) > 0 {
		words = append(words, "[["+strings.Join(attrWords, ", ")+"]]")
	}

	var storeWords []string
	for _, s := range storeOrder {
		if t.Store&s != 0 {
			storeWords = append(storeWords, storeInfo[s].cSpelling)
		}
	}

	var qualWords []string
	for _, s := range qualifierOrder {
		if t.Store&s != 0 {
			qualWords = append(qualWords, storeInfo[s].cSpelling)
		}
	}

	var baseWords []string
	for _, b := range baseOrder {
		if t.Base&b != 0 {
			baseWords = append(baseWords, baseInfo[b].cSpelling)
		}
	}

	if eastConst {
		words = append(words, storeWords...)
		words = append(words, baseWords...)
		words = append(words, qualWords...)
	} else {
		words = append(words, storeWords...)
		words = append(words, qualWords...)
		words = append(words, baseWords...)
	}
	return strings.Join(words, " ")
}

// NameEnglishBase renders only t's base-bit words in English, omitting
// attributes/storage/qualifiers — the counterpart callers use after
// they have already rendered those via a Type with Base cleared, so the
// two calls together cover NameEnglish's full output with no overlap.
func NameEnglishBase(t Type) string {
	var words []string
	for _, b := range baseOrder {
		if t.Base&b != 0 {
			words = append(words, baseInfo[b].englishSpelling)
		}
	}
	return strings.Join(words, " ")
}

// NameEnglish renders t's non-kind portion in English prose: attributes,
// then storage words, then qualifiers, then base words, each
// hyphen-compounded per their canonical spelling (§4.2).
func NameEnglish(t Type) string {
	var words []string
	for _, a := range attrOrder {
		if t.Attr&a != 0 {
			words = append(words, attrInfo[a].englishSpelling)
		}
	}
	for _, s := range storeOrder {
		if t.Store&s != 0 {
			words = append(words, storeInfo[s].englishSpelling)
		}
	}
	for _, s := range qualifierOrder {
		if t.Store&s != 0 {
			words = append(words, storeInfo[s].englishSpelling)
		}
	}
	for _, b := range baseOrder {
		if t.Base&b != 0 {
			words = append(words, baseInfo[b].englishSpelling)
		}
	}
	return strings.Join(words, " ")
}
