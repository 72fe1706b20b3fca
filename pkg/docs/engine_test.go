package docs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHook struct {
	paths   []string
	members [][]string
	err     error
}

func (h *recordingHook) OnClassInstance(node *ClassNode, cls *Class, agent *Agent) error {
	h.paths = append(h.paths, cls.Path)
	var names []string
	for name := range agent.Current.Members {
		names = append(names, name)
	}
	h.members = append(h.members, names)
	return h.err
}

func TestEngineDocument(t *testing.T) {
	dir := t.TempDir()
	src := `package sample

// First is a class.
type First struct {
	// a field
	N int
}

// Second is another class.
type Second struct{}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "s.go"), []byte(src), 0o644))

	hook := &recordingHook{}
	model, err := NewEngine(hook).Document(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"sample.First", "sample.Second"}, hook.paths)
	require.Len(t, model.Classes, 2)
	assert.Equal(t, "First", model.Classes[0].Name)

	// The agent scope is rebuilt per class: First's members do not leak
	// into Second's visit.
	assert.Equal(t, []string{"N"}, hook.members[0])
	assert.Empty(t, hook.members[1])
}

func TestEngineHookErrorAborts(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "s.go"), []byte("package sample\n\ntype T struct{}\n"), 0o644))

	wantErr := errors.New("boom")
	_, err := NewEngine(&recordingHook{err: wantErr}).Document(dir)
	require.ErrorIs(t, err, wantErr)
	assert.Contains(t, err.Error(), "sample.T")
}
