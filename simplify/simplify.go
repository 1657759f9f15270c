// Package simplify implements §4.D: literal-prefix extraction, duplicate
// transition removal, ε-elimination, and dead-state pruning, run in that
// fixed order. The result satisfies the post-simplification invariants of
// §3: no ε-transitions, no duplicate outgoing transitions per state, every
// state reachable from a start state and able to reach a terminal state.
package simplify

import "github.com/djohn49/fastregex/nfa"

// Simplify runs all five phases over n and returns a new, independent NFA.
// n itself is never mutated.
func Simplify(n *nfa.NFA) *nfa.NFA {
	states := cloneStates(n.States)
	starts := cloneSet(n.Starts)
	terminal := cloneSet(n.Terminal)

	starts, prefix := extractLiteralPrefix(states, starts)
	states = dedupeTransitions(states)
	states, starts, terminal = eliminateEpsilon(states, starts, terminal)
	states = dedupeTransitions(states)
	states, starts, terminal = pruneDead(states, starts, terminal)

	return &nfa.NFA{States: states, Starts: starts, Terminal: terminal, Prefix: prefix}
}

func cloneStates(states []nfa.State) []nfa.State {
	out := make([]nfa.State, len(states))
	for i, s := range states {
		trans := make([]nfa.Transition, len(s.Transitions))
		copy(trans, s.Transitions)
		out[i] = nfa.State{ID: s.ID, Label: s.Label, Transitions: trans}
	}
	return out
}

func cloneSet(s map[nfa.StateID]struct{}) map[nfa.StateID]struct{} {
	out := make(map[nfa.StateID]struct{}, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

// extractLiteralPrefix implements phase 1. It runs only while there is
// exactly one start state with exactly one outgoing Literal transition;
// leftover unreachable states from shortened chains are swept up by
// pruneDead in phase 5 rather than removed here, which gives the same end
// state with a simpler implementation.
func extractLiteralPrefix(states []nfa.State, starts map[nfa.StateID]struct{}) (map[nfa.StateID]struct{}, string) {
	prefix := ""
	for {
		if len(starts) != 1 {
			break
		}
		var s nfa.StateID
		for k := range starts {
			s = k
		}
		trans := states[s].Transitions
		if len(trans) != 1 || trans[0].Condition.Kind != nfa.CondLiteral {
			break
		}
		prefix += string(trans[0].Condition.Literal)
		starts = map[nfa.StateID]struct{}{trans[0].Target: {}}
	}
	return starts, prefix
}

// dedupeTransitions implements phases 2 and 4: for every state, remove
// outgoing transitions that are structurally equal to one already kept.
func dedupeTransitions(states []nfa.State) []nfa.State {
	out := make([]nfa.State, len(states))
	for i, s := range states {
		var kept []nfa.Transition
		for _, t := range s.Transitions {
			dup := false
			for _, k := range kept {
				if k.Target == t.Target && k.Condition.Equal(t.Condition) {
					dup = true
					break
				}
			}
			if !dup {
				kept = append(kept, t)
			}
		}
		out[i] = nfa.State{ID: s.ID, Label: s.Label, Transitions: kept}
	}
	return out
}

// eliminateEpsilon implements phase 3.
func eliminateEpsilon(states []nfa.State, starts, terminal map[nfa.StateID]struct{}) ([]nfa.State, map[nfa.StateID]struct{}, map[nfa.StateID]struct{}) {
	reach := make([][]nfa.StateID, len(states))
	for i := range states {
		reach[i] = epsilonReach(states, nfa.StateID(i))
	}

	newStates := make([]nfa.State, len(states))
	for i, s := range states {
		var trans []nfa.Transition
		for _, member := range reach[i] {
			for _, t := range states[member].Transitions {
				if t.Condition.Kind != nfa.CondEpsilon {
					trans = append(trans, t)
				}
			}
		}
		newStates[i] = nfa.State{ID: s.ID, Label: s.Label, Transitions: trans}
	}

	newStarts := make(map[nfa.StateID]struct{})
	for s := range starts {
		for _, r := range reach[s] {
			newStarts[r] = struct{}{}
		}
	}

	newTerminal := make(map[nfa.StateID]struct{})
	for i := range states {
		for _, r := range reach[i] {
			if _, ok := terminal[r]; ok {
				newTerminal[nfa.StateID(i)] = struct{}{}
				break
			}
		}
	}

	return newStates, newStarts, newTerminal
}

// epsilonReach computes εReach(s): s plus every state reachable from s by
// zero or more ε-transitions.
func epsilonReach(states []nfa.State, s nfa.StateID) []nfa.StateID {
	visited := map[nfa.StateID]struct{}{s: {}}
	order := []nfa.StateID{s}
	queue := []nfa.StateID{s}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, t := range states[cur].Transitions {
			if t.Condition.Kind != nfa.CondEpsilon {
				continue
			}
			if _, seen := visited[t.Target]; seen {
				continue
			}
			visited[t.Target] = struct{}{}
			order = append(order, t.Target)
			queue = append(queue, t.Target)
		}
	}
	return order
}

// pruneDead implements phase 5: keep only states both forward-reachable
// from a start state and able to reach a terminal state, then renumber
// compactly in ascending original-id order.
func pruneDead(states []nfa.State, starts, terminal map[nfa.StateID]struct{}) ([]nfa.State, map[nfa.StateID]struct{}, map[nfa.StateID]struct{}) {
	forward := bfsForward(states, starts)
	backward := bfsBackward(states, terminal)

	var orderedKeep []nfa.StateID
	for i := range states {
		id := nfa.StateID(i)
		_, fwd := forward[id]
		_, bwd := backward[id]
		if fwd && bwd {
			orderedKeep = append(orderedKeep, id)
		}
	}

	mapping := make(map[nfa.StateID]nfa.StateID, len(orderedKeep))
	for newID, oldID := range orderedKeep {
		mapping[oldID] = nfa.StateID(newID)
	}

	newStates := make([]nfa.State, len(orderedKeep))
	for newID, oldID := range orderedKeep {
		old := states[oldID]
		var trans []nfa.Transition
		for _, t := range old.Transitions {
			if nt, ok := mapping[t.Target]; ok {
				trans = append(trans, nfa.Transition{Target: nt, Condition: t.Condition})
			}
		}
		newStates[newID] = nfa.State{ID: nfa.StateID(newID), Label: old.Label, Transitions: trans}
	}

	newStarts := remap(starts, mapping)
	newTerminal := remap(terminal, mapping)
	return newStates, newStarts, newTerminal
}

func remap(s map[nfa.StateID]struct{}, mapping map[nfa.StateID]nfa.StateID) map[nfa.StateID]struct{} {
	out := make(map[nfa.StateID]struct{})
	for id := range s {
		if nid, ok := mapping[id]; ok {
			out[nid] = struct{}{}
		}
	}
	return out
}

func bfsForward(states []nfa.State, starts map[nfa.StateID]struct{}) map[nfa.StateID]struct{} {
	visited := make(map[nfa.StateID]struct{})
	var queue []nfa.StateID
	for s := range starts {
		if _, ok := visited[s]; !ok {
			visited[s] = struct{}{}
			queue = append(queue, s)
		}
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, t := range states[cur].Transitions {
			if _, ok := visited[t.Target]; ok {
				continue
			}
			visited[t.Target] = struct{}{}
			queue = append(queue, t.Target)
		}
	}
	return visited
}

func bfsBackward(states []nfa.State, terminal map[nfa.StateID]struct{}) map[nfa.StateID]struct{} {
	reverse := make(map[nfa.StateID][]nfa.StateID)
	for i, s := range states {
		for _, t := range s.Transitions {
			reverse[t.Target] = append(reverse[t.Target], nfa.StateID(i))
		}
	}

	visited := make(map[nfa.StateID]struct{})
	var queue []nfa.StateID
	for t := range terminal {
		if _, ok := visited[t]; !ok {
			visited[t] = struct{}{}
			queue = append(queue, t)
		}
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, pred := range reverse[cur] {
			if _, ok := visited[pred]; ok {
				continue
			}
			visited[pred] = struct{}{}
			queue = append(queue, pred)
		}
	}
	return visited
}
