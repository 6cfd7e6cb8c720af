package qformat

// Returns the largest representable value of the format.
func MaxOf[F Format, P Policy]() Q[F, P] {
	return Q[F, P]{ raw: specOf[F]().MaxRaw() }
}

// Returns the lowest representable value of the format (the most
// negative one for signed formats, zero for unsigned ones).
func MinOf[F Format, P Policy]() Q[F, P] {
	return Q[F, P]{ raw: specOf[F]().MinRaw() }
}

// Returns the smallest positive value of the format, 2^-FractionBits.
func EpsilonOf[F Format, P Policy]() Q[F, P] {
	return Q[F, P]{ raw: 1 }
}

// Returns zero. Equivalent to the zero value of [Q].
func Zero[F Format, P Policy]() Q[F, P] {
	return Q[F, P]{}
}

// Returns one, or the policy's resolution of it for formats without
// integer bits (saturated Q0_15 gives 1 - 2^-15).
func One[F Format, P Policy]() Q[F, P] {
	return FromInt[F, P](1)
}
