package docs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentVisitFieldDecl(t *testing.T) {
	agent := NewAgent()
	agent.Visit(&FieldDecl{Name: "Port", Type: "int", Doc: "listen port\n"})

	m := agent.Current.Members["Port"]
	require.NotNil(t, m)
	assert.Equal(t, "int", m.Annotation.String())
	require.NotNil(t, m.Docstring)
	assert.Equal(t, "listen port", m.Docstring.Value)
}

func TestAgentVisitMethodDecl(t *testing.T) {
	agent := NewAgent()
	agent.Visit(&MethodDecl{Name: "Close"})

	m := agent.Current.Members["Close"]
	require.NotNil(t, m)
	assert.Nil(t, m.Annotation)
	assert.Nil(t, m.Docstring)
}

func TestAgentSwapMembers(t *testing.T) {
	agent := NewAgent()
	agent.Visit(&FieldDecl{Name: "A", Type: "int"})

	prev := agent.SwapMembers(map[string]*Member{})
	assert.Empty(t, agent.Current.Members)
	agent.Visit(&FieldDecl{Name: "B", Type: "string"})
	assert.Len(t, agent.Current.Members, 1)

	agent.SwapMembers(prev)
	assert.Len(t, agent.Current.Members, 1)
	assert.Contains(t, agent.Current.Members, "A")
	assert.NotContains(t, agent.Current.Members, "B")
}

func TestRegistryImport(t *testing.T) {
	type widget struct{}
	Register("agent_test.widget", widget{})

	obj, err := Import("agent_test.widget")
	require.NoError(t, err)
	assert.IsType(t, widget{}, obj)

	_, err = Import("agent_test.missing")
	require.ErrorIs(t, err, ErrImport)
}

func TestParseAnnotation(t *testing.T) {
	assert.Nil(t, ParseAnnotation("", nil))
	assert.Nil(t, ParseAnnotation("   ", nil))
	assert.Equal(t, "int", ParseAnnotation("int", nil).String())

	cls := &Class{Name: "Server"}
	ds := NewDocstring("doc", cls)
	assert.Equal(t, "Server", ParseAnnotation("Self", ds).String())
}
