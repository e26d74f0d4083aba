package profile

import "testing"

func TestMemoryStoreFindProject(t *testing.T) {
	store := NewMemoryStore(Seed())

	project, ok := store.FindProject("mujgpt")
	if !ok {
		t.Fatal("expected mujgpt project")
	}
	if project.Name == "" || len(project.Impact) == 0 {
		t.Fatalf("unexpected project: %+v", project)
	}

	if _, ok := store.FindProject("missing"); ok {
		t.Fatal("expected missing project lookup to fail")
	}
}

func TestMemoryStoreFlagshipFirst(t *testing.T) {
	projects := NewMemoryStore(Seed()).Projects()
	if len(projects) == 0 || !projects[0].Flagship {
		t.Fatal("expected flagship project first")
	}
	for _, p := range projects[1:] {
		if p.Flagship {
			t.Fatalf("unexpected second flagship %s", p.ID)
		}
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	store := NewMemoryStore(Seed())

	projects := store.Projects()
	projects[0].Impact[0] = "tampered"
	projects[0].Name = "tampered"

	roles := store.Experience()
	roles[0].Bullets[0] = "tampered"

	topics := store.Lab()
	topics[0].Bullets[0] = "tampered"

	fresh := store.Profile()
	if fresh.Projects[0].Name == "tampered" || fresh.Projects[0].Impact[0] == "tampered" {
		t.Fatal("project mutation leaked into store")
	}
	if fresh.Experience[0].Bullets[0] == "tampered" {
		t.Fatal("experience mutation leaked into store")
	}
	if fresh.Lab[0].Bullets[0] == "tampered" {
		t.Fatal("lab mutation leaked into store")
	}
}
