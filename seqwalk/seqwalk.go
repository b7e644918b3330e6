// Package seqwalk traverses activation trees while tracking how many times each entity is
// currently activated.
package seqwalk

import (
	"oss.terrastruct.com/seqdiag/lib/countmap"
	"oss.terrastruct.com/seqdiag/seqgraph"
)

// Strategy bundles the callbacks invoked during a Walk.
//
// fromLevel is the activation level of the message source at the time the message is sent.
// toLevel is the level the target reaches because of the message, always 0 when the target
// was not activated. The value returned by Pre is handed to Post for the same node.
type Strategy[S any] struct {
	ShouldActivate func(node *seqgraph.Activation) bool
	Pre            func(node *seqgraph.Activation, fromLevel, toLevel int, active bool) S
	Post           func(node *seqgraph.Activation, fromLevel, toLevel int, state S)
}

// Walk visits root and its descendants depth first, children in order. Levels start at 0 for
// every entity on each call.
func Walk[S any](root *seqgraph.Activation, s Strategy[S]) {
	walk(root, s, countmap.New[string]())
}

func walk[S any](node *seqgraph.Activation, s Strategy[S], levels *countmap.CountMap[string]) {
	from := node.Message.Source()
	to := node.Message.Target()

	fromLevel := 0
	if from != nil {
		fromLevel = levels.Get(from.ID)
	}
	toLevel := 0
	if to != nil && s.ShouldActivate != nil && s.ShouldActivate(node) {
		toLevel = levels.IncrementAndGet(to.ID)
	}

	var state S
	if s.Pre != nil {
		state = s.Pre(node, fromLevel, toLevel, toLevel > 0)
	}
	for _, child := range node.Children {
		walk(child, s, levels)
	}
	if s.Post != nil {
		s.Post(node, fromLevel, toLevel, state)
	}

	// toLevel is only ever non-zero after an increment.
	if to != nil && toLevel > 0 {
		levels.Decrement(to.ID)
	}
}
