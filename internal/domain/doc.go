// Package domain holds the journal's core entities and business rules:
// entries, their lifecycle states, and the dispatch records produced when
// published entries are relayed downstream. It depends on nothing above it;
// transport and storage layers translate to and from these types at their
// boundaries.
package domain
