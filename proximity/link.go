package proximity

import (
	"fmt"

	"github.com/slicerbits/walloverlap/dbg"
)

// Link records the proximity of two polygon points implicitly, as the
// distance between two nodes on two rings (or one and the same ring). The
// order of the two endpoints does not matter.
type Link struct {
	A, B Ref
	Dist int64
}

func (l *Link) String() string {
	return fmt.Sprintf("Link %s {(%d,%d) ↔ (%d,%d) dist %d}",
		dbg.Name(l),
		l.A.Point().X, l.A.Point().Y,
		l.B.Point().X, l.B.Point().Y,
		l.Dist,
	)
}

// pairKey is the unordered-pair identity of a link: the two refs,
// canonicalised so that {a, b} and {b, a} produce the same key.
type pairKey struct {
	a, b Ref
}

func newPairKey(a, b Ref) pairKey {
	if b.less(a) {
		a, b = b, a
	}
	return pairKey{a, b}
}

func (k pairKey) less(other pairKey) bool {
	if k.a != other.a {
		return k.a.less(other.a)
	}
	return k.b.less(other.b)
}

// linkSet is a set of links with unordered-pair identity that remembers
// insertion order. The order matters: proximity endings must be generated by
// iterating primary links in the order phase 2 produced them, or the set of
// inserted vertices stops being deterministic.
type linkSet struct {
	byKey map[pairKey]*Link
	order []*Link
}

func newLinkSet(sizeHint int) *linkSet {
	return &linkSet{
		byKey: make(map[pairKey]*Link, sizeHint),
		order: make([]*Link, 0, sizeHint),
	}
}

// add inserts the link {a, b} and reports whether it was not yet present.
func (s *linkSet) add(a, b Ref, dist int64) (*Link, bool) {
	key := newPairKey(a, b)
	if existing, ok := s.byKey[key]; ok {
		return existing, false
	}
	link := &Link{A: a, B: b, Dist: dist}
	s.byKey[key] = link
	s.order = append(s.order, link)
	return link, true
}

func (s *linkSet) get(a, b Ref) *Link {
	return s.byKey[newPairKey(a, b)]
}

func (s *linkSet) len() int {
	return len(s.order)
}
