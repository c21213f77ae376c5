package menu

import (
	"errors"
	"testing"

	"github.com/tohojo/stgit-console/internal/stgit"
)

func TestRegistryBindingsAreUnique(t *testing.T) {
	// BuildRegistry panics on duplicates; reaching the assertions below
	// means the command table is consistent.
	r := BuildRegistry()
	if len(r.Ordered()) != len(Commands()) {
		t.Fatalf("registry lost commands")
	}
	for _, cmd := range Commands() {
		got, ok := r.ByID(cmd.ID)
		if !ok || got.Verb != cmd.Verb {
			t.Fatalf("lookup by id failed for %q", cmd.ID)
		}
		got, ok = r.ByKey(cmd.Key)
		if !ok || got.ID != cmd.ID {
			t.Fatalf("lookup by key failed for %q", cmd.Key)
		}
	}
}

func TestEveryVerbHasACommand(t *testing.T) {
	verbs := map[string]bool{
		stgit.VerbInit: false, stgit.VerbNew: false, stgit.VerbEdit: false,
		stgit.VerbFloat: false, stgit.VerbRename: false, stgit.VerbSink: false,
		stgit.VerbCommit: false, stgit.VerbUncommit: false, stgit.VerbRefresh: false,
		stgit.VerbRepair: false, stgit.VerbRebase: false, stgit.VerbDelete: false,
		stgit.VerbGoto: false, stgit.VerbUndo: false, stgit.VerbRedo: false,
		stgit.VerbMail: false,
	}
	for _, cmd := range Commands() {
		if cmd.Verb == "" {
			continue
		}
		if _, known := verbs[cmd.Verb]; !known {
			t.Fatalf("command %q uses unknown verb %q", cmd.ID, cmd.Verb)
		}
		verbs[cmd.Verb] = true
	}
	for verb, covered := range verbs {
		if !covered {
			t.Fatalf("verb %q has no command", verb)
		}
	}
}

func TestDestructiveCommandsNarrowByMarks(t *testing.T) {
	r := BuildRegistry()
	del, _ := r.ByID("delete")
	if !del.Policy.UseRange || !del.Policy.UseMarks {
		t.Fatalf("delete must narrow a range by marks")
	}
	if !del.Policy.RequireExact {
		t.Fatalf("delete prompt must require an exact match")
	}
}

func TestBackgroundCommands(t *testing.T) {
	r := BuildRegistry()
	for _, id := range []string{"new", "edit", "mail"} {
		cmd, _ := r.ByID(id)
		if !cmd.Background {
			t.Fatalf("%s must run backgrounded", id)
		}
	}
	refresh, _ := r.ByID("refresh")
	if refresh.Background {
		t.Fatalf("refresh must block")
	}
}

func TestPolicyRequestMapping(t *testing.T) {
	p := Policy{UseRange: true, UsePoint: true, RequireExact: true, Prompt: "Pick"}
	req := p.Request()
	if !req.UseRange || req.UseMarks || !req.UsePoint || !req.RequireExact || req.Prompt != "Pick" {
		t.Fatalf("unexpected request %#v", req)
	}
}

func TestPreconditionError(t *testing.T) {
	var err error = &PreconditionError{Reason: "no upstream"}
	var precond *PreconditionError
	if !errors.As(err, &precond) || precond.Error() != "no upstream" {
		t.Fatalf("unexpected precondition error %v", err)
	}
}
