package export

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/felixgeelhaar/behaviorkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type guard struct{ done bool }

type watch struct {
	behaviorkit.Base[*guard]
}

func (w *watch) Name() string { return "Watch" }

type standby struct {
	behaviorkit.Base[*guard]
}

func (s *standby) Name() string { return "Standby" }

func (s *standby) InitialContainedAction(g *guard) behaviorkit.Action[*guard] {
	return &watch{}
}

func liveBehavior(t *testing.T) *behaviorkit.Behavior[*guard] {
	t.Helper()
	b := behaviorkit.New[*guard](&standby{}, behaviorkit.WithName[*guard]("guard"))
	b.Update(&guard{}, 100*time.Millisecond)
	return b
}

func TestSnapshot_WritesJSON(t *testing.T) {
	b := liveBehavior(t)
	var buf bytes.Buffer

	err := Snapshot(SnapshotFunc(b.Snapshot), Options{Output: &buf})
	require.NoError(t, err)

	var frame behaviorkit.StackFrame
	require.NoError(t, json.Unmarshal(buf.Bytes(), &frame))
	assert.Equal(t, "Standby", frame.Name)
	require.NotNil(t, frame.Child)
	assert.Equal(t, "Watch", frame.Child.Name)
}

func TestSnapshot_PrettyPrint(t *testing.T) {
	b := liveBehavior(t)
	var buf bytes.Buffer

	err := Snapshot(SnapshotFunc(b.Snapshot), Options{Output: &buf, PrettyPrint: true, Indent: "    "})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "\n    \"name\": \"Standby\"")
}

func TestSnapshotAll_KeyedByName(t *testing.T) {
	b := liveBehavior(t)
	var buf bytes.Buffer

	behaviors := map[string]Snapshotter{
		"one": SnapshotFunc(b.Snapshot),
		"two": SnapshotFunc(b.Snapshot),
	}
	err := SnapshotAll(behaviors, Options{Output: &buf})
	require.NoError(t, err)

	var out map[string]*behaviorkit.StackFrame
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Len(t, out, 2)
	assert.Equal(t, "Standby", out["one"].Name)
}

func TestSnapshotAll_UnknownNameFails(t *testing.T) {
	var buf bytes.Buffer
	err := SnapshotAll(map[string]Snapshotter{}, Options{Output: &buf, Name: "missing"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestWriteTree_RendersIndentedStack(t *testing.T) {
	frame := &behaviorkit.StackFrame{
		Name:    "Investigate",
		Started: true,
		Child:   &behaviorkit.StackFrame{Name: "LookAround", Started: true},
		Buried: &behaviorkit.StackFrame{
			Name:      "Patrol",
			Started:   true,
			Suspended: true,
			Child:     &behaviorkit.StackFrame{Name: "Scan", Started: true, Suspended: true},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTree(&buf, frame))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"Investigate",
		"  LookAround",
		"Patrol (suspended)",
		"  Scan (suspended)",
	}, lines)
}

func TestWriteTree_EmptyStack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTree(&buf, nil))
	assert.Equal(t, "(empty)\n", buf.String())
}

func TestRunCLI_List(t *testing.T) {
	behaviors := map[string]Snapshotter{
		"guard": SnapshotFunc(func() *behaviorkit.StackFrame { return nil }),
	}
	require.NoError(t, RunCLI(behaviors, []string{"-list"}))
}

func TestRunCLI_ExportToFile(t *testing.T) {
	b := liveBehavior(t)
	path := t.TempDir() + "/stacks.json"
	behaviors := map[string]Snapshotter{"guard": SnapshotFunc(b.Snapshot)}

	require.NoError(t, RunCLI(behaviors, []string{"-o", path, "-pretty"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var out map[string]*behaviorkit.StackFrame
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "Standby", out["guard"].Name)
}
