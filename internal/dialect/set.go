package dialect

// Set is the set of dialects in which some feature is legal. It is
// represented as a bitmask over Dialect values so that union,
// intersection, and complement are cheap total operations, as required
// by §3.1.
type Set uint16

// All dialects, used as the "universally legal" sentinel by TypeBits.
var AllDialects = func() Set {
	var s Set
	for d := Dialect(0); d < numDialects; d++ {
		s = s.Add(d)
	}
	return s
}()

// None is the empty dialect set: legal nowhere.
const None Set = 0

// Of builds a Set from the given dialects.
func Of(ds ...Dialect) Set {
	var s Set
	for _, d := range ds {
		s = s.Add(d)
	}
	return s
}

// Add returns s with d added.
func (s Set) Add(d Dialect) Set { return s | (1 << d) }

// Remove returns s with d removed.
func (s Set) Remove(d Dialect) Set { return s &^ (1 << d) }

// Contains reports whether d is a member of s.
func (s Set) Contains(d Dialect) bool { return s&(1<<d) != 0 }

// Union returns the set union of s and other.
func (s Set) Union(other Set) Set { return s | other }

// Intersect returns the set intersection of s and other.
func (s Set) Intersect(other Set) Set { return s & other }

// Complement returns every dialect not in s.
func (s Set) Complement() Set { return AllDialects &^ s }

// IsSubset reports whether every member of s is also a member of other.
func (s Set) IsSubset(other Set) bool { return s&other == s }

// IsEmpty reports whether s has no members.
func (s Set) IsEmpty() bool { return s == None }

// IsAny reports whether s has at least one member in mask.
func (s Set) IsAny(mask Set) bool { return s&mask != 0 }

// IsAnyC reports whether s contains any C dialect.
func (s Set) IsAnyC() bool {
	for d := Dialect(0); d < numDialects; d++ {
		if s.Contains(d) && FamilyOf(d) == FamilyC {
			return true
		}
	}
	return false
}

// IsAnyCpp reports whether s contains any C++ dialect.
func (s Set) IsAnyCpp() bool {
	for d := Dialect(0); d < numDialects; d++ {
		if s.Contains(d) && FamilyOf(d) == FamilyCpp {
			return true
		}
	}
	return false
}

// Oldest returns the oldest dialect in s and true, or false if s is empty.
func Oldest(s Set) (Dialect, bool) {
	best, found := Dialect(0), false
	for d := Dialect(0); d < numDialects; d++ {
		if s.Contains(d) && (!found || Rank(d) < Rank(best)) {
			best, found = d, true
		}
	}
	return best, found
}

// Newest returns the newest dialect in s and true, or false if s is empty.
func Newest(s Set) (Dialect, bool) {
	best, found := Dialect(0), false
	for d := Dialect(0); d < numDialects; d++ {
		if s.Contains(d) && (!found || Rank(d) > Rank(best)) {
			best, found = d, true
		}
	}
	return best, found
}

// WhichPhrase renders the diagnostic fragment cdecl uses to describe
// where a feature is legal: "" when s covers every dialect, " until X",
// " since X", or " in X-Y" otherwise. Used verbatim in diagnostics (§4.1).
func WhichPhrase(s Set) string {
	if s == AllDialects || s.IsEmpty() {
		return ""
	}
	oldest, _ := Oldest(s)
	newest, _ := Newest(s)

	// Is s a contiguous "everything from oldest onward" run?
	sinceRun := Of()
	for d := oldest; d < numDialects; d++ {
		if FamilyOf(d) == FamilyOf(oldest) {
			sinceRun = sinceRun.Add(d)
		}
	}
	if s == sinceRun {
		return " since " + Name(oldest)
	}

	// Is s a contiguous "everything up through newest" run?
	untilRun := Of()
	for d := Dialect(0); d < numDialects; d++ {
		if FamilyOf(d) == FamilyOf(newest) && Rank(d) <= Rank(newest) {
			untilRun = untilRun.Add(d)
		}
	}
	if s == untilRun {
		return " until " + Name(newest)
	}

	if oldest == newest {
		return " in " + Name(oldest)
	}
	return " in " + Name(oldest) + "-" + Name(newest)
}
