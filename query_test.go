package behaviorkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// scout answers hurry/retreat queries and picks aim points.
type scout struct {
	recorder
	hurry  QueryResult
	target *Vector
}

func (s *scout) ShouldHurry(actor *testActor) QueryResult {
	return s.hurry
}

func (s *scout) SelectTargetPoint(actor *testActor, subject Entity) (Vector, bool) {
	if s.target == nil {
		return Vector{}, false
	}
	return *s.target, true
}

// coward always wants to retreat and never wants to fight.
type coward struct {
	recorder
}

func (c *coward) ShouldRetreat(actor *testActor) QueryResult {
	return QueryYes
}

func (c *coward) ShouldAttack(actor *testActor, threat Entity) QueryResult {
	return QueryNo
}

func TestQuery_UndefinedWhenNobodyAnswers(t *testing.T) {
	j := &journal{}
	b := New[*testActor](newRecorder(j, "root"))
	actor := &testActor{}
	b.Update(actor, tick)

	assert.Equal(t, QueryUndefined, b.ShouldHurry(actor))
	assert.Equal(t, QueryUndefined, b.ShouldRetreat(actor))
	assert.Equal(t, QueryUndefined, b.ShouldAttack(actor, "enemy"))
	assert.Equal(t, QueryUndefined, b.IsHindrance(actor, "crate"))
	assert.Equal(t, QueryUndefined, b.ShouldPickUp(actor, "medkit"))
	assert.Equal(t, QueryUndefined, b.IsPositionAllowed(actor, Vector{}))

	_, ok := b.SelectTargetPoint(actor, "enemy")
	assert.False(t, ok)
	assert.Nil(t, b.SelectMoreDangerousThreat(actor, "me", "a", "b"))
}

func TestQuery_InnermostChildAnsweredFirst(t *testing.T) {
	j := &journal{}
	inner := &scout{recorder: recorder{name: "inner", j: j}, hurry: QueryNo}
	outer := &scout{recorder: recorder{name: "outer", j: j}, hurry: QueryYes}
	outer.childFn = func(actor *testActor) Action[*testActor] { return inner }
	b := New[*testActor](outer)
	actor := &testActor{}
	b.Update(actor, tick)

	assert.Equal(t, QueryNo, b.ShouldHurry(actor),
		"the most specific action's answer wins")
}

func TestQuery_UndefinedDefersOutward(t *testing.T) {
	j := &journal{}
	inner := &scout{recorder: recorder{name: "inner", j: j}, hurry: QueryUndefined}
	outer := &scout{recorder: recorder{name: "outer", j: j}, hurry: QueryYes}
	outer.childFn = func(actor *testActor) Action[*testActor] { return inner }
	b := New[*testActor](outer)
	actor := &testActor{}
	b.Update(actor, tick)

	assert.Equal(t, QueryYes, b.ShouldHurry(actor),
		"no opinion falls through to the containing action")
}

func TestQuery_BuriedActionConsultedAfterActive(t *testing.T) {
	j := &journal{}
	buried := &coward{recorder: recorder{name: "buried", j: j}}
	interrupter := newRecorder(j, "interrupter")
	buried.updateFn = func(r *recorder, actor *testActor) Result[*testActor] {
		return r.SuspendFor(interrupter, "interrupted")
	}
	b := New[*testActor](buried)
	actor := &testActor{}
	b.Update(actor, tick)
	b.Update(actor, tick)

	assert.Equal(t, QueryYes, b.ShouldRetreat(actor),
		"a suspended action still answers when the active one has no opinion")
	assert.Equal(t, QueryNo, b.ShouldAttack(actor, "enemy"))
}

func TestQuery_SelectTargetPoint(t *testing.T) {
	j := &journal{}
	aim := Vector{X: 1, Y: 2, Z: 3}
	root := &scout{recorder: recorder{name: "root", j: j}, target: &aim}
	b := New[*testActor](root)
	actor := &testActor{}
	b.Update(actor, tick)

	point, ok := b.SelectTargetPoint(actor, "enemy")
	assert.True(t, ok)
	assert.Equal(t, aim, point)
}

// bodyguard ranks threats by which one menaces the ward.
type bodyguard struct {
	recorder
	ward Entity
}

func (g *bodyguard) SelectMoreDangerousThreat(actor *testActor, subject, threat1, threat2 Entity) Entity {
	if threat1 == g.ward {
		return threat2
	}
	return threat1
}

func TestQuery_SelectMoreDangerousThreat(t *testing.T) {
	j := &journal{}
	root := &bodyguard{recorder: recorder{name: "root", j: j}, ward: "vip"}
	b := New[*testActor](root)
	actor := &testActor{}
	b.Update(actor, tick)

	assert.Equal(t, "sniper", b.SelectMoreDangerousThreat(actor, "me", "vip", "sniper"))
	assert.Equal(t, "grunt", b.SelectMoreDangerousThreat(actor, "me", "grunt", "sniper"))
}

func TestQuery_EmptyBehaviorHasNoOpinion(t *testing.T) {
	b := New[*testActor](nil)
	actor := &testActor{}

	assert.Equal(t, QueryUndefined, b.ShouldHurry(actor))
	_, ok := b.SelectTargetPoint(actor, "enemy")
	assert.False(t, ok)
}
