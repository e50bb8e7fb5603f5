package loom

// access is the shared representation behind AccessRequest and
// AccessGrant. Invariant: when either world flag is set, both resource
// sets are empty — world access subsumes per-component access.
type access struct {
	worldImmut bool
	worldMut   bool
	immut      ComponentSpec
	mut        ComponentSpec
}

func (a access) equals(b access) bool {
	return a.worldImmut == b.worldImmut &&
		a.worldMut == b.worldMut &&
		a.immut.Equals(b.immut) &&
		a.mut.Equals(b.mut)
}

func (a access) isEmpty() bool {
	return !a.worldMut && !a.worldImmut && a.immut.IsEmpty() && a.mut.IsEmpty()
}

// conflictsWith implements the symmetric aliasing check shared by
// AccessRequest.ConflictsWith and the grant tracker's admission test.
func (a access) conflictsWith(b access) bool {
	if a.isEmpty() || b.isEmpty() {
		return false
	}
	if a.worldMut || b.worldMut {
		return true
	}
	if a.worldImmut {
		return !b.mut.IsEmpty()
	}
	if b.worldImmut {
		return !a.mut.IsEmpty()
	}
	if a.mut.ContainsAny(b.immut) {
		return true
	}
	if a.mut.ContainsAny(b.mut) {
		return true
	}
	if b.mut.ContainsAny(a.immut) {
		return true
	}
	return false
}

func (a access) merge(b access) access {
	out := access{
		worldImmut: a.worldImmut || b.worldImmut,
		worldMut:   a.worldMut || b.worldMut,
		immut:      a.immut.Union(b.immut),
		mut:        a.mut.Union(b.mut),
	}
	if out.worldMut || out.worldImmut {
		out.immut = ComponentSpec{}
		out.mut = ComponentSpec{}
	}
	return out
}

// grants reports whether a grant with this access satisfies a request
// with access r: grant's capability must be at least as strong as what
// is asked for.
func (a access) grants(r access) bool {
	if a.worldMut {
		return true
	}
	if a.worldImmut {
		return !r.worldMut && r.mut.IsEmpty()
	}
	if r.worldMut || r.worldImmut {
		return false
	}
	need := r.immut.Union(r.mut)
	return a.immut.ContainsAll(need) && a.mut.ContainsAll(r.mut)
}

// AccessRequest declares the data a system (or parameter) needs. It
// shares its representation with AccessGrant but the two are kept as
// distinct Go types so the compiler never lets one stand in for the
// other — the role a phantom type parameter plays in the source this is
// modeled on.
type AccessRequest struct{ access }

// AccessGrant is a capability proving a request was compatible with the
// world's outstanding access at the time it was issued.
type AccessGrant struct{ access }

// NewWorldImmutRequest builds a request for read-only access to the
// whole world (e.g. a `&World` parameter).
func NewWorldImmutRequest() AccessRequest {
	return AccessRequest{access{worldImmut: true}}
}

// NewWorldMutRequest builds a request for exclusive access to the whole
// world (e.g. command-buffer-free structural mutation systems).
func NewWorldMutRequest() AccessRequest {
	return AccessRequest{access{worldMut: true}}
}

// NewComponentRequest builds a request for the given immutable and
// mutable component sets.
func NewComponentRequest(immut, mut ComponentSpec) AccessRequest {
	return AccessRequest{access{immut: immut, mut: mut}}
}

func (r AccessRequest) IsWorldMut() bool   { return r.worldMut }
func (r AccessRequest) IsWorldImmut() bool { return r.worldImmut }
func (r AccessRequest) Immut() ComponentSpec { return r.immut }
func (r AccessRequest) Mut() ComponentSpec   { return r.mut }
func (r AccessRequest) IsEmpty() bool        { return r.access.isEmpty() }

// ConflictsWith reports whether r and other cannot be granted at the
// same time.
func (r AccessRequest) ConflictsWith(other AccessRequest) bool {
	return r.access.conflictsWith(other.access)
}

// Merge returns the union of r and other: world flags OR'd, resource
// sets unioned, with the world-subsumes-resources invariant restored.
func (r AccessRequest) Merge(other AccessRequest) AccessRequest {
	return AccessRequest{r.access.merge(other.access)}
}

// Equals reports whether r and other declare identical access — the
// bundling criterion the planner's unitize step uses.
func (r AccessRequest) Equals(other AccessRequest) bool {
	return r.worldImmut == other.worldImmut &&
		r.worldMut == other.worldMut &&
		r.immut.Equals(other.immut) &&
		r.mut.Equals(other.mut)
}

// Grants reports whether this grant's capability covers request r.
func (g AccessGrant) Grants(r AccessRequest) bool {
	return g.access.grants(r.access)
}

// ConflictsWith reports whether this grant overlaps with a request,
// the check the grant tracker performs on every outstanding grant
// before issuing a new one.
func (g AccessGrant) ConflictsWith(r AccessRequest) bool {
	return g.access.conflictsWith(r.access)
}

// AsRequest re-expresses a grant as the request it would satisfy —
// used when converting a held grant back into a lookup key.
func (g AccessGrant) AsRequest() AccessRequest {
	return AccessRequest{g.access}
}
