package humandesign

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/witnessos/engine-core/internal/astro"
)

func testInput() []byte {
	return []byte(`{"birth_date":"1990-05-15","birth_time":"14:30","timezone":"UTC","latitude":40.7,"longitude":-74.0}`)
}

func TestEngine_DecodeInput_RequiresTimezone(t *testing.T) {
	e := New(astro.NewStubEphemeris())
	_, err := e.DecodeInput([]byte(`{"birth_date":"1990-05-15","birth_time":"14:30","timezone":"Not/AZone","latitude":1,"longitude":1}`))
	require.Error(t, err)
}

func TestEngine_DecodeInput_RejectsBadTime(t *testing.T) {
	e := New(astro.NewStubEphemeris())
	_, err := e.DecodeInput([]byte(`{"birth_date":"1990-05-15","birth_time":"not-a-time","timezone":"UTC"}`))
	require.Error(t, err)
}

func TestEngine_Calculate_ProducesTypeAndProfile(t *testing.T) {
	e := New(astro.NewStubEphemeris())
	in, err := e.DecodeInput(testInput())
	require.NoError(t, err)

	raw, err := e.Calculate(in)
	require.NoError(t, err)

	out := raw.(*Output)
	assert.NotEmpty(t, out.Type.Name)
	assert.Contains(t, []string{"Generator", "Manifestor", "Projector", "Reflector"}, out.Type.Name)
	assert.NotEmpty(t, out.Profile.Name)
	assert.Len(t, out.PersonalityGates, 12) // Sun, Earth, + 10 other tracked bodies
	assert.Len(t, out.DesignGates, 12)
}

func TestEngine_Interpret_MentionsStrategy(t *testing.T) {
	e := New(astro.NewStubEphemeris())
	in, err := e.DecodeInput(testInput())
	require.NoError(t, err)

	raw, err := e.Calculate(in)
	require.NoError(t, err)

	summary, err := e.Interpret(raw, in)
	require.NoError(t, err)
	assert.Contains(t, summary.(string), "Strategy")
}

func TestDetermineType_NoDefinedCentersIsReflector(t *testing.T) {
	info := DetermineType(map[int]bool{})
	assert.Equal(t, "Reflector", info.Name)
}

func TestDetermineType_SacralDefinedIsGenerator(t *testing.T) {
	info := DetermineType(map[int]bool{5: true})
	assert.Equal(t, "Generator", info.Name)
}

func TestDetermineType_MotorToThroatWithoutSacralIsManifestor(t *testing.T) {
	info := DetermineType(map[int]bool{21: true, 45: true})
	assert.Equal(t, "Manifestor", info.Name)
}

func TestDetermineType_OtherCenterOnlyIsProjector(t *testing.T) {
	info := DetermineType(map[int]bool{1: true}) // G center only
	assert.Equal(t, "Projector", info.Name)
}
