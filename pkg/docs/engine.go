package docs

import "fmt"

// Hook is the extension contract: the host calls OnClassInstance once per
// class encountered during a documentation pass. Returned errors abort the
// pass; expected per-class conditions are handled inside the extension.
type Hook interface {
	OnClassInstance(node *ClassNode, cls *Class, agent *Agent) error
}

// Model is the result of one documentation pass.
type Model struct {
	Classes []*Class `json:"classes" yaml:"classes"`
}

// Engine drives a documentation pass: it loads classes from source, visits
// each one with the traversal agent and hands it to every registered hook.
type Engine struct {
	loader *Loader
	agent  *Agent
	hooks  []Hook
}

// NewEngine returns an engine that applies hooks in the given order.
func NewEngine(hooks ...Hook) *Engine {
	return &Engine{loader: NewLoader(), agent: NewAgent(), hooks: hooks}
}

// Agent exposes the engine's traversal agent.
func (e *Engine) Agent() *Agent { return e.agent }

// Document runs one documentation pass over the Go source in dir.
func (e *Engine) Document(dir string) (*Model, error) {
	loaded, err := e.loader.LoadDirectory(dir)
	if err != nil {
		return nil, err
	}

	model := &Model{}
	for _, lc := range loaded {
		e.agent.Current = &Scope{Members: map[string]*Member{}}
		if syntax, ok := lc.Node.Syntax(); ok {
			e.agent.VisitClass(syntax)
		}
		for _, h := range e.hooks {
			if err := h.OnClassInstance(lc.Node, lc.Class, e.agent); err != nil {
				return nil, fmt.Errorf("documenting %s: %w", lc.Class.Path, err)
			}
		}
		model.Classes = append(model.Classes, lc.Class)
	}
	return model, nil
}
