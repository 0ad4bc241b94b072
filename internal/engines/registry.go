// Package engines is the single place every concrete engine is wired into
// the shared registry (§4.1, §5): this is the only "write" to the registry
// the process ever performs, at startup, before the HTTP server starts
// accepting requests.
package engines

import (
	"github.com/witnessos/engine-core/internal/astro"
	"github.com/witnessos/engine-core/internal/engine"
	"github.com/witnessos/engine-core/internal/engines/biofield"
	"github.com/witnessos/engine-core/internal/engines/biorhythm"
	"github.com/witnessos/engine-core/internal/engines/enneagram"
	"github.com/witnessos/engine-core/internal/engines/facereading"
	"github.com/witnessos/engine-core/internal/engines/genekeys"
	"github.com/witnessos/engine-core/internal/engines/humandesign"
	"github.com/witnessos/engine-core/internal/engines/iching"
	"github.com/witnessos/engine-core/internal/engines/numerology"
	"github.com/witnessos/engine-core/internal/engines/sacredgeometry"
	"github.com/witnessos/engine-core/internal/engines/sigilforge"
	"github.com/witnessos/engine-core/internal/engines/tarot"
	"github.com/witnessos/engine-core/internal/engines/vedicclock"
	"github.com/witnessos/engine-core/internal/engines/vimshottari"
)

// RegisterAll builds a Registry carrying all thirteen engines, wiring eph
// into every engine that needs real astronomical positions. It panics on
// duplicate registration, which can only happen from a programming error
// in this function itself (§4.1's "fails fast at initialisation").
func RegisterAll(eph astro.Ephemeris) *engine.Registry {
	reg := engine.NewRegistry()

	reg.Register(numerology.New())
	reg.Register(biorhythm.New())
	reg.Register(humandesign.New(eph))
	reg.Register(vimshottari.New(eph))
	reg.Register(tarot.New())
	reg.Register(iching.New())
	reg.Register(genekeys.New(eph))
	reg.Register(enneagram.New())
	reg.Register(sacredgeometry.New())
	reg.Register(sigilforge.New())
	reg.Register(facereading.New())
	reg.Register(biofield.New())
	reg.Register(vedicclock.New(eph))

	return reg
}
