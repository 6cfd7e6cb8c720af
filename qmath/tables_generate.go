package qmath

// The kernel constants and the CORDIC tables are computed with
// math/big at 256 bits of precision and printed as Go source, so
// evaluation never depends on floating point rounding at run time.
// Must be run from the qmath directory.
//go:generate go run -tags GENERATE_QMATH_TABLES ../test/generate/qmath_tables/tables.go
