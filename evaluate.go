// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retree

package retree

import "fmt"

// Evaluate folds the tree in post-order.
//
// Literal children reach reducers as literal parts, nested pattern nodes as their reduced
// values. Pattern nodes use their rule reducer and memoize the result; the root uses
// rootReducer and is recomputed on every call. Evaluating one tree from several goroutines
// at once is not supported.
func Evaluate[T any](root *Node[T], rootReducer Reducer[T]) (T, error) {
	if root == nil {
		var zero T
		return zero, fmt.Errorf("%w: nil tree", ErrInvalidInput)
	}

	return reduceNode(root, rootReducer)
}

// reduceNode resolves node value, recursing into pattern children.
func reduceNode[T any](node *Node[T], rootReducer Reducer[T]) (T, error) {
	var zero T

	switch node.Kind {
	case KindLiteral:
		return leafValue(node), nil
	case KindPattern:
		if node.hasReduced {
			return node.reduced, nil
		}

		if node.Rule == nil || node.Rule.Reduce == nil {
			return zero, fmt.Errorf("%w: rule %d (%s)", ErrMissingReducer, node.RuleIndex, ruleLabel(node.Rule))
		}

		if len(node.Children) == 0 {
			return leafValue(node), nil
		}
	case KindRoot:
		if rootReducer == nil {
			return zero, fmt.Errorf("%w: root reducer is nil", ErrMissingReducer)
		}
	default:
		return zero, fmt.Errorf("%w: unexpected node kind %s", ErrInvalidInput, node.Kind)
	}

	parts := make([]Part[T], 0, len(node.Children))
	for _, child := range node.Children {
		if child.Kind == KindLiteral {
			parts = append(parts, Part[T]{Literal: true, Text: child.Raw})
			continue
		}

		value, err := reduceNode(child, rootReducer)
		if err != nil {
			return zero, err
		}

		parts = append(parts, Part[T]{Value: value, Text: child.Raw})
	}

	if node.Kind == KindRoot {
		return rootReducer(parts), nil
	}

	node.reduced = node.Rule.Reduce(parts)
	node.hasReduced = true
	return node.reduced, nil
}

// leafValue returns node raw text as T when T is a string type, zero value otherwise.
func leafValue[T any](node *Node[T]) T {
	if v, ok := any(node.Raw).(T); ok {
		return v
	}

	var zero T
	return zero
}

// ruleLabel returns rule name and pattern, tolerant to nil rule.
func ruleLabel[T any](rule *Rule[T]) string {
	if rule == nil {
		return "<nil rule>"
	}

	if rule.Name != "" && rule.Pattern != nil {
		return rule.Name + " /" + rule.Pattern.String() + "/"
	}

	return rule.Label()
}
