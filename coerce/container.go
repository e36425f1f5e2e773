package coerce

// ToList coerces any iterable to a List. Text becomes its characters,
// byte buffers their byte values, sets and mappings their keys. The
// result never shares storage with the input.
func ToList(value any) (any, error) {
	elems, err := elements(value)
	if err != nil {
		return nil, newError(value, "list", err)
	}

	return List(elems), nil
}

// ToTuple coerces any iterable to a Tuple. It accepts the same inputs as
// ToList.
func ToTuple(value any) (any, error) {
	elems, err := elements(value)
	if err != nil {
		return nil, newError(value, "tuple", err)
	}

	return Tuple(elems), nil
}

// ToSet coerces any iterable to a Set. Duplicates collapse and every
// element must be usable as a map key.
func ToSet(value any) (any, error) {
	s, err := collectSet(value, "set")
	if err != nil {
		return nil, err
	}

	return s, nil
}

// ToFrozenSet coerces any iterable to a FrozenSet.
func ToFrozenSet(value any) (any, error) {
	s, err := collectSet(value, "frozenset")
	if err != nil {
		return nil, err
	}

	return FrozenSet(s), nil
}

func collectSet(value any, target string) (Set, error) {
	elems, err := elements(value)
	if err != nil {
		return nil, newError(value, target, err)
	}

	s := make(Set, len(elems))

	for _, el := range elems {
		if err := s.Add(el); err != nil {
			return nil, newError(value, target, err)
		}
	}

	return s, nil
}

// ToDict coerces a mapping or an iterable of key/value pairs to a Dict.
func ToDict(value any) (any, error) {
	kvs, err := pairs(value)
	if err != nil {
		return nil, newError(value, "dict", err)
	}

	d := make(Dict, len(kvs))

	for _, kv := range kvs {
		if err := d.put(kv[0], kv[1]); err != nil {
			return nil, newError(value, "dict", err)
		}
	}

	return d, nil
}
