package processing

import (
	"testing"

	"StageDJ/emulator"

	"github.com/google/go-cmp/cmp"
)

func TestDetectTable(t *testing.T) {
	const oldStage, newStage = emulator.StageID(2), emulator.StageID(8)

	statuses := []emulator.Status{emulator.Menu, emulator.Playing, emulator.Paused}
	want := map[[2]emulator.Status][]Event{
		{emulator.Menu, emulator.Playing}:   {GameJoin{Info: emulator.GameSnapshot{Stage: newStage, Status: emulator.Playing}}},
		{emulator.Playing, emulator.Menu}:   {GameLeave{}},
		{emulator.Playing, emulator.Paused}: {GamePause{}},
		{emulator.Paused, emulator.Menu}:    {GameLeave{}},
		{emulator.Paused, emulator.Playing}: {GameResume{}},
	}

	for _, from := range statuses {
		for _, to := range statuses {
			old := emulator.GameSnapshot{Stage: oldStage, Status: from}
			new := emulator.GameSnapshot{Stage: newStage, Status: to}

			got := Detect(old, new)
			if diff := cmp.Diff(want[[2]emulator.Status{from, to}], got); diff != "" {
				t.Errorf("%s -> %s (-want +got):\n%s", from, to, diff)
			}
		}
	}
}

func TestDetectSelfTransitionIgnoresStage(t *testing.T) {
	for _, s := range []emulator.Status{emulator.Menu, emulator.Playing, emulator.Paused} {
		for stage := 0; stage < 256; stage += 17 {
			old := emulator.GameSnapshot{Stage: 1, Status: s}
			new := emulator.GameSnapshot{Stage: emulator.StageID(stage), Status: s}
			if got := Detect(old, new); len(got) != 0 {
				t.Fatalf("%s with stage %d -> %d produced %v", s, 1, stage, got)
			}
		}
	}
}

func TestDetectJoinCarriesNewStage(t *testing.T) {
	old := emulator.GameSnapshot{Stage: 31, Status: emulator.Menu}
	new := emulator.GameSnapshot{Stage: 8, Status: emulator.Playing}

	events := Detect(old, new)
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	join, ok := events[0].(GameJoin)
	if !ok {
		t.Fatalf("got %T, want GameJoin", events[0])
	}
	if join.Info.Stage != 8 {
		t.Fatalf("join stage %d, want 8", join.Info.Stage)
	}
}

func TestDetectIdenticalSnapshots(t *testing.T) {
	snap := emulator.GameSnapshot{Stage: 8, Status: emulator.Playing}
	for i := 0; i < 3; i++ {
		if got := Detect(snap, snap); got != nil {
			t.Fatalf("tick %d: unexpected events %v", i, got)
		}
	}
}
