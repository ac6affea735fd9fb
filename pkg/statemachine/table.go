// Package statemachine хранит неизменяемые таблицы допустимых переходов статусов.
package statemachine

import (
	"errors"
	"fmt"
)

var ErrInvalidTransition = errors.New("invalid status transition")

// TransitionError описывает отклонённый переход и список разрешённых целей.
type TransitionError[S comparable] struct {
	From    S
	To      S
	Allowed []S
}

func (e *TransitionError[S]) Error() string {
	return fmt.Sprintf("%s: %v -> %v (allowed: %v)", ErrInvalidTransition, e.From, e.To, e.Allowed)
}

func (e *TransitionError[S]) Is(target error) bool {
	return target == ErrInvalidTransition
}

// Table строится один раз и дальше только читается, поэтому безопасна для конкурентного доступа.
type Table[S comparable] struct {
	edges map[S][]S
	known map[S]struct{}
}

func New[S comparable](edges map[S][]S) Table[S] {
	t := Table[S]{
		edges: make(map[S][]S, len(edges)),
		known: make(map[S]struct{}, len(edges)),
	}
	for from, targets := range edges {
		copied := make([]S, len(targets))
		copy(copied, targets)
		t.edges[from] = copied
		t.known[from] = struct{}{}
		for _, to := range targets {
			t.known[to] = struct{}{}
		}
	}
	return t
}

// Allowed возвращает копию, чтобы вызывающий не мог испортить таблицу.
func (t Table[S]) Allowed(from S) []S {
	targets := t.edges[from]
	out := make([]S, len(targets))
	copy(out, targets)
	return out
}

func (t Table[S]) Can(from, to S) bool {
	for _, s := range t.edges[from] {
		if s == to {
			return true
		}
	}
	return false
}

func (t Table[S]) Known(s S) bool {
	_, ok := t.known[s]
	return ok
}

func (t Table[S]) IsTerminal(s S) bool {
	return t.Known(s) && len(t.edges[s]) == 0
}

// Reachable сообщает, можно ли попасть из from в to за один или несколько шагов.
func (t Table[S]) Reachable(from, to S) bool {
	visited := map[S]struct{}{from: {}}
	queue := []S{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range t.edges[cur] {
			if next == to {
				return true
			}
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}
			queue = append(queue, next)
		}
	}
	return false
}

func (t Table[S]) Validate(from, to S) error {
	if t.Can(from, to) {
		return nil
	}
	return &TransitionError[S]{From: from, To: to, Allowed: t.Allowed(from)}
}

// Path возвращает кратчайшую цепочку допустимых шагов из from в to, не включая from.
// Для from == to путь пустой, если пути нет, второй результат false.
func (t Table[S]) Path(from, to S) ([]S, bool) {
	if from == to {
		return nil, true
	}
	prev := map[S]S{}
	visited := map[S]struct{}{from: {}}
	queue := []S{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range t.edges[cur] {
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}
			prev[next] = cur
			if next == to {
				return unwind(prev, from, to), true
			}
			queue = append(queue, next)
		}
	}
	return nil, false
}

func unwind[S comparable](prev map[S]S, from, to S) []S {
	var path []S
	for cur := to; cur != from; cur = prev[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
