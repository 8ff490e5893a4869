package search

// NotFound is the sentinel index reported when the target is absent.
// It is distinct from every valid index.
const NotFound = -1
