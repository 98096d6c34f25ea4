package systems

import (
	"math"
	"testing"
)

func TestStepCueLevelsRampsAndFadesOut(t *testing.T) {
	levels := map[string]float64{"ambient": 0, "strings": 1}
	targets := map[string]float64{"ambient": 0.8}

	stepCueLevels(levels, targets, 0.1)
	if math.Abs(levels["ambient"]-0.1) > 1e-9 {
		t.Errorf("ambient = %v, want 0.1 after one step", levels["ambient"])
	}
	if math.Abs(levels["strings"]-0.9) > 1e-9 {
		t.Errorf("strings = %v, want fading toward 0", levels["strings"])
	}

	for i := 0; i < 100; i++ {
		stepCueLevels(levels, targets, 0.1)
	}
	if math.Abs(levels["ambient"]-0.8) > 1e-9 {
		t.Errorf("ambient settled at %v, want exactly 0.8", levels["ambient"])
	}
	if levels["strings"] != 0 {
		t.Errorf("strings settled at %v, want 0", levels["strings"])
	}
}
