package record

// Field declares one canonical field together with the ordered legacy and
// bilingual names it may appear under. The canonical name is always tried
// first; alias order decides which legacy spelling wins when several are
// present.
type Field struct {
	Canonical string
	Aliases   []string
}

// Resolve returns the first value present under the canonical name or, in
// declared order, one of its aliases. Pure lookup, no I/O, never fails; a
// missing field is simply (nil, false).
func Resolve(r RawRecord, canonical string, aliases ...string) (any, bool) {
	if v, ok := r.Get(canonical); ok {
		return v, true
	}
	for _, alias := range aliases {
		if v, ok := r.Get(alias); ok {
			return v, true
		}
	}
	return nil, false
}

// ResolveField is Resolve driven by a Field declaration.
func ResolveField(r RawRecord, f Field) (any, bool) {
	return Resolve(r, f.Canonical, f.Aliases...)
}

// ResolveString resolves a field and keeps it only if it is a string.
func ResolveString(r RawRecord, f Field) (string, bool) {
	v, ok := ResolveField(r, f)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// SourceKey returns which key (canonical or alias) actually satisfied the
// field, or "" when none did. Diagnostic counterpart of ResolveField.
func SourceKey(r RawRecord, f Field) string {
	if r.Has(f.Canonical) {
		return f.Canonical
	}
	for _, alias := range f.Aliases {
		if r.Has(alias) {
			return alias
		}
	}
	return ""
}
