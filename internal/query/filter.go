package query

type filterKind int

const (
	filterNone filterKind = iota
	filterSearch
	filterOwner
)

// Filter is the single optional predicate of a list query: no filter, a
// title search, or an owner-username filter. Exactly one state is active,
// so search/filter precedence is decided where the Filter is built, not
// inside the composer.
type Filter struct {
	kind filterKind
	term string
}

func NoFilter() Filter { return Filter{} }

func Search(term string) Filter { return Filter{kind: filterSearch, term: term} }

func ByOwner(term string) Filter { return Filter{kind: filterOwner, term: term} }

// FromParams maps the request's search/filter query params to a Filter.
// Search wins when both are present.
func FromParams(search, filter string) Filter {
	if search != "" {
		return Search(search)
	}
	if filter != "" {
		return ByOwner(filter)
	}
	return NoFilter()
}

// Term returns the active term, false when no filter is set.
func (f Filter) Term() (string, bool) {
	if f.kind == filterNone {
		return "", false
	}
	return f.term, true
}
