// debugview renders fixed point values for debuggers, loggers and
// other tools that only want a readable number.
//
// The functions here accept any value and never panic: they only rely
// on a Float64() method (or String() for [Exact]), so they can be
// pointed at arbitrary expressions from a debugger session without
// risking the host process. For delve, for example:
//   (dlv) call debugview.Summary(x)
package debugview

import "fmt"
import "math"
import "strconv"

// Result for values that can't be rendered.
const Invalid = "<invalid result>"

type floater interface {
	Float64() float64
}

// Returns the value as a float followed by " (qformat)", like
// "1.5 (qformat)". Values without a Float64() method or returning NaN
// give [Invalid], and panics are reported as "<error: ...>".
func Summary(value any) (summary string) {
	defer func() {
		if err := recover(); err != nil {
			summary = fmt.Sprintf("<error: %v>", err)
		}
	}()

	converter, ok := value.(floater)
	if !ok { return Invalid }
	float := converter.Float64()
	if math.IsNaN(float) { return Invalid }
	return strconv.FormatFloat(float, 'g', -1, 64) + " (qformat)"
}

// Like [Summary], but uses the exact decimal String() representation
// when available.
func Exact(value any) (summary string) {
	defer func() {
		if err := recover(); err != nil {
			summary = fmt.Sprintf("<error: %v>", err)
		}
	}()

	stringer, ok := value.(fmt.Stringer)
	if !ok { return Summary(value) }
	return stringer.String() + " (qformat)"
}
