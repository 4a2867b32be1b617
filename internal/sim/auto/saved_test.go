package auto

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"colobot.info/gold/internal/sim/catalogs"
)

func TestReadSaved(t *testing.T) {
	cases := []struct {
		name string
		typ  catalogs.ObjectType
		line string
		want *Saved
	}{
		{"mush", catalogs.ObjectMushroom2, "CreateObject type=Mushroom2 pos=1;2 aExist=1 aPhase=3 aProgress=0.25 aSpeed=1", &Saved{Phase: 3, Progress: 0.25, Speed: 1}},
		{"mush bad phase", catalogs.ObjectMushroom2, "CreateObject aExist=1 aPhase=9", &Saved{Phase: int(MushWait), Speed: 1 / MushWaitTime}},
		{"research", catalogs.ObjectResearch, "CreateObject aExist=1 aPhase=2 aProgress=0.5 aSpeed=0.1 aResearch=4", &Saved{Phase: 2, Progress: 0.5, Speed: 0.1, Research: 4}},
		{"not saved", catalogs.ObjectMushroom2, "CreateObject type=Mushroom2 pos=1;2", nil},
		{"no automaton", catalogs.ObjectHuman, "CreateObject aExist=1 aPhase=2", nil},
	}
	for _, tc := range cases {
		got := ReadSaved(tc.typ, tc.line)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("%s (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestSavedWriteReadsBack(t *testing.T) {
	in := Saved{Phase: int(ResearchSearch), Progress: 0.123, Speed: 1.0 / 30, Research: catalogs.ResearchFly}
	got := ReadSaved(catalogs.ObjectResearch, "CreateObject type=ResearchCenter"+in.Write())
	if got == nil || *got != in {
		t.Fatalf("got %+v want %+v", got, in)
	}
}
