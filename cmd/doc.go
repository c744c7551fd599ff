/*
Package cmd implements the command line front end 'vec' for package vector.

Vectors are written as comma separated lists of their components, e.g.

    vec add 1,2,3 4,5,6
    vec mag --vector 4,3
    vec random --size 3 --seed 42

Use '--' to separate flags from positional vectors starting with a minus sign.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cmd

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'linalg.cmd'.
func tracer() tracing.Trace {
	return tracing.Select("linalg.cmd")
}
