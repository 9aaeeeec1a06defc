package behaviorkit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAction_DefaultsAreNoOps(t *testing.T) {
	act := NewAction[*testActor]("idle").Build()
	b := New[*testActor](act)
	actor := &testActor{}

	b.Update(actor, tick)
	b.Update(actor, tick)

	assert.Equal(t, "idle", act.Name())
	assert.Equal(t, "idle", b.Snapshot().Name)
	assert.True(t, act.IsStarted())
}

func TestActionBuilder_LifecycleHooks(t *testing.T) {
	var log []string
	countdown := 2
	act := NewAction[*testActor]("countdown").
		OnStart(func(f *FuncAction[*testActor], actor *testActor, prior Action[*testActor]) Result[*testActor] {
			log = append(log, "start")
			return f.Continue()
		}).
		OnUpdate(func(f *FuncAction[*testActor], actor *testActor, interval time.Duration) Result[*testActor] {
			countdown--
			log = append(log, "update")
			if countdown == 0 {
				return f.Done("expired")
			}
			return f.Continue()
		}).
		OnEnd(func(f *FuncAction[*testActor], actor *testActor, next Action[*testActor]) {
			log = append(log, "end")
		}).
		Build()

	b := New[*testActor](act)
	actor := &testActor{}
	for i := 0; i < 4; i++ {
		b.Update(actor, tick)
	}

	require.Equal(t, []string{"start", "update", "update", "end"}, log)
	assert.True(t, b.IsEmpty())
}

func TestActionBuilder_WithInitialChild(t *testing.T) {
	j := &journal{}
	act := NewAction[*testActor]("parent").
		WithInitialChild(func(f *FuncAction[*testActor], actor *testActor) Action[*testActor] {
			return newRecorder(j, "nested")
		}).
		Build()

	b := New[*testActor](act)
	actor := &testActor{}
	b.Update(actor, tick)

	require.Equal(t, []string{"nested:start"}, j.entries)
	snap := b.Snapshot()
	require.NotNil(t, snap.Child)
	assert.Equal(t, "nested", snap.Child.Name)
}

func TestActionBuilder_SuspendResumeHooks(t *testing.T) {
	var log []string
	alarm := newRecorder(&journal{}, "alarm")
	act := NewAction[*testActor]("worker").
		OnSuspend(func(f *FuncAction[*testActor], actor *testActor, interrupter Action[*testActor]) Result[*testActor] {
			log = append(log, "suspend:"+interrupter.Name())
			return f.Continue()
		}).
		OnResume(func(f *FuncAction[*testActor], actor *testActor, interrupter Action[*testActor]) Result[*testActor] {
			log = append(log, "resume")
			return f.Continue()
		}).
		Handle(EventInjured, func(f *FuncAction[*testActor], actor *testActor, ev Event) EventResult[*testActor] {
			return f.TrySuspendFor(alarm, PriorityImportant, "hit")
		}).
		Build()

	b := New[*testActor](act)
	actor := &testActor{}
	b.Update(actor, tick)

	b.DispatchEvent(actor, Injured{Amount: 1})
	b.Update(actor, tick)
	require.Equal(t, []string{"suspend:alarm"}, log)

	alarm.updateFn = func(r *recorder, actor *testActor) Result[*testActor] {
		return r.Done("resolved")
	}
	b.Update(actor, tick)
	require.Equal(t, []string{"suspend:alarm", "resume"}, log)
	assert.Equal(t, "worker", b.DebugString())
}

func TestFuncAction_HandleEvent_UnregisteredKindContinues(t *testing.T) {
	act := NewAction[*testActor]("listener").
		Handle(EventSound, func(f *FuncAction[*testActor], actor *testActor, ev Event) EventResult[*testActor] {
			return f.TrySustain(PriorityTry, "listening")
		}).
		Build()
	b := New[*testActor](act)
	actor := &testActor{}
	b.Update(actor, tick)

	b.DispatchEvent(actor, Injured{Amount: 1})
	b.Update(actor, tick)

	assert.Equal(t, "listener", b.Snapshot().Name, "unregistered kinds propose nothing")
}
