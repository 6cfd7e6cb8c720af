// dimcheck verifies that dimension mismatches between quantities are
// rejected by the type checker. The package also holds the valid and
// invalid expressions used as fixtures; the invalid ones are only
// compiled with the "dimcheck" build tag.
package dimcheck

import "strings"

import "github.com/pkg/errors"
import "golang.org/x/tools/go/packages"

import "github.com/tinne26/qformat"
import "github.com/tinne26/qformat/quantity"

// Magnitude used by the fixtures.
type Num = qformat.Q[qformat.Q15_16, qformat.Saturate]

// Valid fixture: adds distances and divides them by a time.
func Speed(a, b quantity.Quantity[quantity.Length, Num], time quantity.Quantity[quantity.Time, Num]) (quantity.Quantity[quantity.Velocity, Num], error) {
	quo, err := quantity.Div(a.Add(b), time)
	if err != nil { return quantity.Quantity[quantity.Velocity, Num]{}, err }
	return quantity.Cast[quantity.Velocity](quo)
}

// Loads the package in dir with the given build tags and returns its
// type errors, each formatted as "file:line:column: message".
func TypeErrors(dir string, tags ...string) ([]string, error) {
	config := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo,
		Dir: dir,
	}
	if len(tags) > 0 {
		config.BuildFlags = []string{ "-tags=" + strings.Join(tags, ",") }
	}

	pkgs, err := packages.Load(config, ".")
	if err != nil { return nil, errors.Wrapf(err, "loading %s", dir) }
	var messages []string
	for _, pkg := range pkgs {
		for _, pkgErr := range pkg.Errors {
			if pkgErr.Kind == packages.TypeError {
				messages = append(messages, pkgErr.Error())
			}
		}
	}
	return messages, nil
}
