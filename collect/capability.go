package collect

// Inserter is the generic insertion capability: the container places each
// element at whatever position its own semantics dictate (end of a list,
// membership in a set). This is the preferred capability whenever a kind
// offers it.
type Inserter[E any] interface {
	Insert(E)
}

// FrontInserter is the logical-front insertion capability exposed by
// singly-linked kinds that cannot insert anywhere else. The populator uses
// it only when [Inserter] is unavailable; note that front-inserting a
// sequence reverses its order in the result.
type FrontInserter[E any] interface {
	InsertFront(E)
}
