package behaviorkit

import "testing"

func benchActor() *testActor { return &testActor{} }

func BenchmarkBehavior_Update_FlatStack(b *testing.B) {
	j := &journal{}
	root := &recorder{name: "root", j: j}
	root.updateFn = func(r *recorder, actor *testActor) Result[*testActor] {
		return r.Continue()
	}
	bh := New[*testActor](root)
	actor := benchActor()
	bh.Update(actor, tick)
	j.entries = j.entries[:0]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		j.entries = j.entries[:0]
		bh.Update(actor, tick)
	}
}

func BenchmarkBehavior_Update_NestedStack(b *testing.B) {
	j := &journal{}
	depth3 := &recorder{name: "d3", j: j}
	depth2 := &recorder{name: "d2", j: j}
	depth2.childFn = func(actor *testActor) Action[*testActor] { return depth3 }
	root := &recorder{name: "d1", j: j}
	root.childFn = func(actor *testActor) Action[*testActor] { return depth2 }
	bh := New[*testActor](root)
	actor := benchActor()
	bh.Update(actor, tick)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		j.entries = j.entries[:0]
		bh.Update(actor, tick)
	}
}

func BenchmarkBehavior_SuspendResumeCycle(b *testing.B) {
	j := &journal{}
	root := &recorder{name: "root", j: j}
	bh := New[*testActor](root)
	actor := benchActor()
	bh.Update(actor, tick)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		j.entries = j.entries[:0]
		interrupt := &recorder{name: "interrupt", j: j}
		interrupt.startFn = func(r *recorder, actor *testActor, prior Action[*testActor]) Result[*testActor] {
			return r.Done("instant")
		}
		root.updateFn = func(r *recorder, actor *testActor) Result[*testActor] {
			r.updateFn = nil
			return r.SuspendFor(interrupt, "bench")
		}
		bh.Update(actor, tick)
	}
}

func BenchmarkBehavior_DispatchEvent_Unhandled(b *testing.B) {
	j := &journal{}
	bh := New[*testActor](&recorder{name: "root", j: j})
	actor := benchActor()
	bh.Update(actor, tick)
	ev := Sound{Pos: Vector{X: 1}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bh.DispatchEvent(actor, ev)
	}
}

func BenchmarkBehavior_Snapshot(b *testing.B) {
	j := &journal{}
	bh, _, _, _, _ := buildSentryStack(b, j)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bh.Snapshot()
	}
}
