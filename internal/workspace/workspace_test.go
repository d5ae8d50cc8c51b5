package workspace

import (
	"reflect"
	"testing"

	"github.com/partwm/partwm/internal/client"
)

func TestInsertAppliesRefreshLaw(t *testing.T) {
	var w Workspace
	w.Insert(1)
	if !w.IsMaster(1) {
		t.Fatalf("first inserted id should be promoted to master, got master=%v aux=%v", w.Master, w.Aux)
	}

	w.Insert(2)
	if !w.IsAux(2) {
		t.Errorf("second inserted id should land in aux, got master=%v aux=%v", w.Master, w.Aux)
	}
	if len(w.Master) != 1 || len(w.Aux) != 1 {
		t.Errorf("master=%v aux=%v, want 1 master 1 aux", w.Master, w.Aux)
	}
}

func TestRemoveRefillsEmptyMaster(t *testing.T) {
	w := Workspace{Master: []client.WindowID{1}, Aux: []client.WindowID{2, 3}}
	w.Remove(1)

	if !w.IsMaster(2) {
		t.Errorf("removing the sole master client should promote the first aux client, got master=%v aux=%v", w.Master, w.Aux)
	}
	if !reflect.DeepEqual(w.Aux, []client.WindowID{3}) {
		t.Errorf("aux = %v, want [3]", w.Aux)
	}
}

func TestSwitchStackMovesBetweenStacks(t *testing.T) {
	w := Workspace{Master: []client.WindowID{1}, Aux: []client.WindowID{2}}
	w.SwitchStack(2)

	if !reflect.DeepEqual(w.Master, []client.WindowID{1, 2}) || len(w.Aux) != 0 {
		t.Errorf("after SwitchStack(2), master=%v aux=%v, want master=[1 2] aux=[]", w.Master, w.Aux)
	}
}

func TestSwitchStackNoopForUnknownID(t *testing.T) {
	w := Workspace{Master: []client.WindowID{1}}
	w.SwitchStack(99)

	if !reflect.DeepEqual(w.Master, []client.WindowID{1}) || len(w.Aux) != 0 {
		t.Errorf("SwitchStack on unknown id mutated workspace: master=%v aux=%v", w.Master, w.Aux)
	}
}

func TestMasterAuxDisjoint(t *testing.T) {
	var w Workspace
	for _, id := range []client.WindowID{1, 2, 3, 4} {
		w.Insert(id)
	}
	seen := map[client.WindowID]bool{}
	for _, id := range append(append([]client.WindowID{}, w.Master...), w.Aux...) {
		if seen[id] {
			t.Fatalf("id %d present in both stacks", id)
		}
		seen[id] = true
	}
}
