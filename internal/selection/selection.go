// Package selection resolves the target patch list for a command from the
// four competing sources: visual range, mark set, point, and interactive
// prompt. Which sources a command is willing to consume is declared per
// command; the precedence between eligible sources is fixed here.
package selection

import (
	"errors"
	"fmt"

	"github.com/tohojo/stgit-console/internal/marks"
	"github.com/tohojo/stgit-console/internal/stgit"
)

// ErrNoneSelected reports that no eligible source produced a target and no
// prompt was offered. The command aborts without invoking the engine.
var ErrNoneSelected = errors.New("no patch selected")

// Request declares, for one command invocation, which selection sources are
// eligible and whether a prompted name must match an existing patch.
type Request struct {
	UseRange     bool
	UseMarks     bool
	UsePoint     bool
	RequireExact bool
	Prompt       string
}

// Context carries the live selection state for one resolution: the visual
// range over patch entries in display order, the patch under point, the
// session mark store, and the authoritative series.
type Context struct {
	Range  []string
	Point  string
	Marks  *marks.Store
	Series stgit.Series
}

// Resolution is the outcome of a resolve pass. Exactly one of Patches and
// Prompt is set: either the target list is known, or the caller must ask
// the user for a single patch name and feed the answer through Answer.
type Resolution struct {
	Patches []string
	Prompt  *Prompt
}

// Prompt describes the interactive fallback request.
type Prompt struct {
	Message      string
	RequireExact bool
}

// Resolve applies the source precedence:
//
//  1. An active visual range wins when the command accepts ranges. When the
//     command also accepts marks and some range entries are marked, the
//     marked subset narrows the range; otherwise the whole range is taken
//     verbatim. One gesture thus expresses either "act on the marked
//     subset" or "act on the whole range" depending on command policy.
//  2. Otherwise a non-empty mark set, reordered into canonical stack order.
//  3. Otherwise the patch under point.
//  4. Otherwise the prompt, when the command supplied one.
//
// With no source available and no prompt, resolution fails with
// ErrNoneSelected.
func Resolve(req Request, ctx Context) (Resolution, error) {
	if req.UseRange && len(ctx.Range) > 0 {
		if req.UseMarks {
			if narrowed := intersectMarked(ctx.Range, ctx.Marks); len(narrowed) > 0 {
				return Resolution{Patches: narrowed}, nil
			}
		}
		return Resolution{Patches: append([]string(nil), ctx.Range...)}, nil
	}
	if req.UseMarks && ctx.Marks.Len() > 0 {
		if ordered := ctx.Series.CanonicalOrder(ctx.Marks.Names()); len(ordered) > 0 {
			return Resolution{Patches: ordered}, nil
		}
		// Every mark is stale; fall through to the remaining sources.
	}
	if req.UsePoint && ctx.Point != "" {
		return Resolution{Patches: []string{ctx.Point}}, nil
	}
	if req.Prompt != "" {
		return Resolution{Prompt: &Prompt{Message: req.Prompt, RequireExact: req.RequireExact}}, nil
	}
	return Resolution{}, ErrNoneSelected
}

// Answer validates the typed response to a prompt fallback and returns it
// as the single-element target list.
func Answer(req Request, ctx Context, input string) ([]string, error) {
	if input == "" {
		return nil, ErrNoneSelected
	}
	if req.RequireExact && !ctx.Series.Contains(input) {
		return nil, fmt.Errorf("no patch named %q in the series", input)
	}
	return []string{input}, nil
}

// intersectMarked returns the range entries that are marked, preserving
// range order.
func intersectMarked(rangeNames []string, store *marks.Store) []string {
	if store.Len() == 0 {
		return nil
	}
	narrowed := make([]string, 0, len(rangeNames))
	for _, name := range rangeNames {
		if store.Contains(name) {
			narrowed = append(narrowed, name)
		}
	}
	if len(narrowed) == 0 {
		return nil
	}
	return narrowed
}
