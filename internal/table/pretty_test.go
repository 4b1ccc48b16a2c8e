package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/benchtable/tablegen/internal/table"
)

func TestPrettyMemory(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1 MB", table.PrettyMemory(1_000_000))
	assert.Equal(t, "1 MB", table.PrettyMemory(1_999_999))
	assert.Equal(t, "0 MB", table.PrettyMemory(999_999))
}

func TestPrettyFrequency(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2400 MHz", table.PrettyFrequency(2_400_000_000))
}

func TestPrettyTimeLimit(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "900 s", table.PrettyTimeLimit("900s"))
	assert.Equal(t, "900 s", table.PrettyTimeLimit("900 s"))
	assert.Equal(t, "-1", table.PrettyTimeLimit("-1"))
}

func TestMergeTurboStates(t *testing.T) {
	t.Parallel()

	assert.Equal(t, table.TurboAbsent, table.MergeTurboStates(nil))
	assert.Equal(t, table.TurboEnabled, table.MergeTurboStates([]string{"true", "true"}))
	assert.Equal(t, table.TurboDisabled, table.MergeTurboStates([]string{"false"}))
	assert.Equal(t, table.TurboMixed, table.MergeTurboStates([]string{"true", "false"}))
	assert.Equal(t, table.TurboMixed, table.MergeTurboStates([]string{"unknown"}))
}

func TestTurboState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "enabled", table.TurboEnabled.String())
	assert.Equal(t, "disabled", table.TurboDisabled.String())
	assert.Equal(t, "mixed", table.TurboMixed.String())
	assert.Equal(t, "", table.TurboAbsent.String())
}
