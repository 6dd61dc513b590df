package rowsync

// Record is a domain value backed by one database row.
//
// The type parameter K is the primary-key type, and PrimaryKey is the
// caller-supplied projection used to decide whether two records describe
// the same logical entity. Key equality is the sole identity criterion:
// reconciliation never inspects any other field, and it replaces matched
// records wholesale rather than merging them.
//
// A Record is constructed fresh from each row decode on every query result
// and is never mutated in place.
//
//	type Foo struct {
//		ID   uint32
//		Text string
//		Flag bool
//	}
//
//	func (f Foo) PrimaryKey() uint32 { return f.ID }
type Record[K comparable] interface {
	PrimaryKey() K
}
