package kli

// registry indexes an ordered option collection by short and long id
type registry struct {
	byShort map[rune]Option
	byLong  map[string]Option
}

// newRegistry builds both lookup maps in one pass. Two options sharing an id
// is a definition error; nothing is overwritten silently.
func newRegistry(options []Option) (*registry, error) {
	r := &registry{
		byShort: make(map[rune]Option, len(options)),
		byLong:  make(map[string]Option, len(options)),
	}
	for _, opt := range options {
		if s := opt.ShortID(); s != 0 {
			if prev, exists := r.byShort[s]; exists {
				return nil, duplicateError("-"+string(s), prev, opt)
			}
			r.byShort[s] = opt
		}
		if l := opt.LongID(); l != "" {
			if prev, exists := r.byLong[l]; exists {
				return nil, duplicateError("--"+l, prev, opt)
			}
			r.byLong[l] = opt
		}
	}
	return r, nil
}

func (r *registry) short(id rune) Option {
	return r.byShort[id]
}

func (r *registry) long(id string) Option {
	return r.byLong[id]
}

// longIDs lists the registered long ids (for suggestions)
func (r *registry) longIDs() []string {
	ids := make([]string, 0, len(r.byLong))
	for id := range r.byLong {
		ids = append(ids, id)
	}
	return ids
}

func duplicateError(id string, first, second Option) *DefinitionError {
	return &DefinitionError{
		Type: ErrorTypeDuplicateOption,
		Message: "option id '" + id + "' is declared by both '" + first.Description() +
			"' and '" + second.Description() + "'",
	}
}
