package state

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIs(t *testing.T) {
	p := &pair{A: 1}
	m := map[string]int{"a": 1}
	sl := []int{1, 2, 3}
	fn := func() {}
	makeClosure := func(n int) func() int { return func() int { return n } }
	c1, c2 := makeClosure(1), makeClosure(1)
	type holder struct {
		P  *pair
		N  int
		Fn func()
	}

	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"nil nil", nil, nil, true},
		{"nil vs value", nil, 0, false},
		{"same pointer", p, p, true},
		{"equal pointees", p, &pair{A: 1}, false},
		{"same map", m, m, true},
		{"equal maps", m, map[string]int{"a": 1}, false},
		{"same slice", sl, sl, true},
		{"resliced", sl, sl[:2], false},
		{"same func", fn, fn, true},
		{"same closure", c1, c1, true},
		{"closures from one literal", c1, c2, false},
		{"ints", 3, 3, true},
		{"different types", 3, int64(3), false},
		{"strings", "a", "a", true},
		{"NaN", math.NaN(), math.NaN(), true},
		{"signed zero", 0.0, math.Copysign(0, -1), false},
		{"struct of identical parts", holder{P: p, N: 1, Fn: fn}, holder{P: p, N: 1, Fn: fn}, true},
		{"struct with different pointer", holder{P: p}, holder{P: &pair{A: 1}}, false},
		{"arrays", [2]int{1, 2}, [2]int{1, 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Is(tt.a, tt.b))
		})
	}
}

type handle struct {
	get func() int
}

type wrapped struct {
	h     handle
	iface any
}

//go:noinline
func makeHandle(n int) handle {
	return handle{get: func() int { return n }}
}

func TestIs_ClosuresInUnexportedFields(t *testing.T) {
	h1, h2 := makeHandle(1), makeHandle(2)

	assert.True(t, Is(h1, h1))
	assert.False(t, Is(h1, h2))
	assert.True(t, Is(wrapped{h: h1}, wrapped{h: h1}))
	assert.False(t, Is(wrapped{h: h1}, wrapped{h: h2}))
	assert.True(t, Is(wrapped{iface: h1}, wrapped{iface: h1}))
	assert.False(t, Is(wrapped{iface: h1}, wrapped{iface: h2}))
	assert.False(t, Is(&wrapped{h: h1}, &wrapped{h: h1}))
	assert.True(t, Shallow(&wrapped{h: h1}, &wrapped{h: h1}))
	assert.False(t, Shallow(&wrapped{h: h1}, &wrapped{h: h2}))
}

func TestShallow(t *testing.T) {
	p := &pair{A: 1}

	assert.True(t, Shallow(map[string]*pair{"a": p}, map[string]*pair{"a": p}))
	assert.False(t, Shallow(map[string]*pair{"a": p}, map[string]*pair{"a": {A: 1}}))
	assert.False(t, Shallow(map[string]int{"a": 1}, map[string]int{"b": 1}))
	assert.True(t, Shallow([]int{1, 2}, []int{1, 2}))
	assert.False(t, Shallow([]int{1, 2}, []int{1, 2, 3}))
	assert.True(t, Shallow(&pair{A: 1, B: 2}, &pair{A: 1, B: 2}))
	assert.False(t, Shallow(&pair{A: 1}, &pair{A: 2}))
	assert.False(t, Shallow[*pair](nil, &pair{}))
	assert.True(t, Shallow[*pair](nil, nil))
	assert.False(t, Shallow(1, 2))
}
