package loom

// executeMigration is the core structural mutation algorithm: move an
// entity from its current archetype to the one matching targetSpec,
// transferring shared components by ownership, dropping removed ones,
// and constructing newly-added ones from `additions`.
//
// Ownership transfer rules: components named in both the source and
// target specs move byte-for-byte (no drop, no copy-construction);
// components only in the source are dropped; components only in the
// target are constructed via `additions`.
func executeMigration(s *Storage, e Entity, targetSpec ComponentSpec, additions map[TypeId]interface{}) Location {
	loc, ok := s.entities.locationOf(e)
	if !ok {
		panic("loom: migrate called on a despawned entity")
	}
	sourceTable := s.tableAt(loc.Table)
	sourceSpec := sourceTable.Spec()
	targetArche := s.archetypeFor(targetSpec)
	targetTable := targetArche.table

	shared := sourceSpec.Intersection(targetSpec)

	extract, moved, movedOK := sourceTable.extractAndSwapRow(loc.Row, shared.Mask())
	if movedOK {
		s.entities.setLocation(moved, loc)
	}

	newRow := targetTable.addEntityFromExtract(e, extract, additions)
	newLoc := Location{Archetype: targetArche.id, Table: targetTable.id, Row: newRow}
	s.entities.setLocation(e, newLoc)
	return newLoc
}

// addComponents migrates e into source-spec ∪ {types of values}. Fails
// (returns false, no mutation) if any value's type is already present —
// add/remove are all-or-nothing.
func (s *Storage) addComponents(e Entity, values map[TypeId]interface{}) bool {
	loc, ok := s.entities.locationOf(e)
	if !ok {
		return false
	}
	sourceSpec := s.tableAt(loc.Table).Spec()
	for id := range values {
		if sourceSpec.contains(id) {
			return false
		}
	}
	adding := make([]TypeId, 0, len(values))
	for id := range values {
		adding = append(adding, id)
	}
	targetSpec := sourceSpec.Union(NewComponentSpec(adding...))
	executeMigration(s, e, targetSpec, values)
	return true
}

// removeComponents migrates e into source-spec \ ids. Fails if any id
// is absent from the source spec.
func (s *Storage) removeComponents(e Entity, ids ...TypeId) bool {
	loc, ok := s.entities.locationOf(e)
	if !ok {
		return false
	}
	sourceSpec := s.tableAt(loc.Table).Spec()
	removing := NewComponentSpec(ids...)
	if !sourceSpec.ContainsAll(removing) {
		return false
	}
	targetSpec := sourceSpec.Difference(removing)
	executeMigration(s, e, targetSpec, nil)
	return true
}
