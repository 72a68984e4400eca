package helper

type (
	// Option mutates a configuration value in place.
	Option[T any] func(configure *T)
	// OptionError is an Option that can reject its input.
	OptionError[T any] func(configure *T) error
)

func Configure[T any, O ~func(*T)](input T, opt ...O) T {
	for _, o := range opt {
		if o != nil {
			o(&input)
		}
	}
	return input
}

func ConfigureWithError[T any, O ~func(*T) error](input T, opt ...O) (T, error) {
	for _, o := range opt {
		if o != nil {
			if err := o(&input); err != nil {
				return input, err
			}
		}
	}
	return input, nil
}
