package helper

import "iter"

func IterMap[T any, A iter.Seq[T], O any](input A, mapper func(elem T) O) iter.Seq[O] {
	return func(yield func(O) bool) {
		for e := range input {
			if !yield(mapper(e)) {
				return
			}
		}
	}
}

func Map[T any, A ~[]T, O any](input A, mapper func(elem T) O) []O {
	res := make([]O, len(input))
	for i, e := range input {
		res[i] = mapper(e)
	}
	return res
}

// ErrorStrings maps errors to their messages, nil errors are skipped.
func ErrorStrings[A ~[]error](errs A) []string {
	kept := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			kept = append(kept, err)
		}
	}
	return Map(kept, error.Error)
}
