package gesture

import "sort"

// registry maps live contact identifiers to their pointer sessions. It is
// only touched from the dispatch goroutine.
type registry struct {
	sessions map[Identifier]*session
}

func newRegistry() *registry {
	return &registry{sessions: make(map[Identifier]*session)}
}

// lookup returns the session for id, or nil.
func (r *registry) lookup(id Identifier) *session {
	return r.sessions[id]
}

// add stores s under its contact identifier. The caller must have removed
// any previous session for that identifier.
func (r *registry) add(s *session) {
	if _, ok := r.sessions[s.contact.Identifier]; ok {
		panic("gesture: duplicate session for identifier")
	}
	r.sessions[s.contact.Identifier] = s
}

// remove deletes the entry for s. An entry that has since been replaced by
// another session is left alone.
func (r *registry) remove(s *session) {
	if cur, ok := r.sessions[s.contact.Identifier]; ok && cur == s {
		delete(r.sessions, s.contact.Identifier)
	}
}

func (r *registry) len() int {
	return len(r.sessions)
}

// sorted returns the live sessions ordered by identifier, mouse first.
func (r *registry) sorted() []*session {
	out := make([]*session, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].contact.Identifier < out[j].contact.Identifier
	})
	return out
}
