package commands

import "testing"

func TestAllOrdersCommandsForHelp(t *testing.T) {
	want := []string{"look", "move", "pick", "inventory", "help", "quit"}
	all := All()
	if len(all) != len(want) {
		t.Fatalf("All() returned %d commands, want %d", len(all), len(want))
	}
	for i, name := range want {
		if all[i].Name != name {
			t.Fatalf("All()[%d] = %q, want %q", i, all[i].Name, name)
		}
	}
}

func TestFindResolvesAliases(t *testing.T) {
	cmd, ok := Find("EXIT")
	if !ok || cmd != Quit {
		t.Fatalf("Find(EXIT) = %v, %v; want quit command", cmd, ok)
	}
	if _, ok := Find("dance"); ok {
		t.Fatalf("Find(dance) succeeded, want failure")
	}
}

func TestDefineRejectsDuplicates(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for duplicate registration")
		}
	}()
	Define(Definition{Name: "look"}, func(*Context) bool { return false })
}

func TestDefineRequiresName(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for unnamed command")
		}
	}()
	Define(Definition{Name: "  "}, func(*Context) bool { return false })
}
