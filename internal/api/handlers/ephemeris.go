package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/witnessos/engine-core/internal/astro"
	"github.com/witnessos/engine-core/internal/engine"
)

// EphemerisHandler exposes the astronomy facade directly for callers that
// need raw planetary longitudes without running a full engine (§4.8
// POST /swiss_ephemeris/calculate).
type EphemerisHandler struct {
	eph astro.Ephemeris
}

func NewEphemerisHandler(eph astro.Ephemeris) *EphemerisHandler {
	return &EphemerisHandler{eph: eph}
}

type ephemerisRequest struct {
	Timestamp time.Time `json:"timestamp" binding:"required"`
	Bodies    []string  `json:"bodies"`
}

var bodyByName = map[string]astro.Body{
	"sun":      astro.Sun,
	"moon":     astro.Moon,
	"mercury":  astro.Mercury,
	"venus":    astro.Venus,
	"mars":     astro.Mars,
	"jupiter":  astro.Jupiter,
	"saturn":   astro.Saturn,
	"uranus":   astro.Uranus,
	"neptune":  astro.Neptune,
	"pluto":    astro.Pluto,
	"meanNode": astro.MeanNode,
}

var allBodyNames = []string{
	"sun", "moon", "mercury", "venus", "mars", "jupiter",
	"saturn", "uranus", "neptune", "pluto", "meanNode",
}

func (h *EphemerisHandler) Calculate(c *gin.Context) {
	var req ephemerisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(engine.NewInvalidInput("body", err))
		c.Abort()
		return
	}

	names := req.Bodies
	if len(names) == 0 {
		names = allBodyNames
	}

	bodies := make([]astro.Body, 0, len(names))
	for _, n := range names {
		b, ok := bodyByName[n]
		if !ok {
			c.Error(engine.NewInvalidInput("bodies", errUnknownBody(n)))
			c.Abort()
			return
		}
		bodies = append(bodies, b)
	}

	jd := astro.JulianDay(req.Timestamp)
	positions, err := h.eph.Positions(jd, bodies)
	if err != nil {
		c.Error(engine.NewDependencyUnavailable("ephemeris", err))
		c.Abort()
		return
	}
	ayanamsa, err := h.eph.Ayanamsa(jd)
	if err != nil {
		c.Error(engine.NewDependencyUnavailable("ephemeris", err))
		c.Abort()
		return
	}

	out := make(map[string]astro.PlanetaryPosition, len(positions))
	for name, b := range bodyByName {
		if pos, ok := positions[b]; ok {
			out[name] = pos
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"julian_day": jd,
		"ayanamsa":   ayanamsa,
		"positions":  out,
	})
}

type errUnknownBody string

func (e errUnknownBody) Error() string { return "unknown celestial body: " + string(e) }
