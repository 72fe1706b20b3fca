package extension

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	// Registers the example runtime objects.
	_ "github.com/example/fielddoc/examples"
	"github.com/example/fielddoc/pkg/docs"
)

func documentExamples(t *testing.T, opts Options) map[string]*docs.Class {
	t.Helper()
	model, err := docs.NewEngine(New(opts)).Document("../../examples")
	require.NoError(t, err)

	byPath := map[string]*docs.Class{}
	for _, cls := range model.Classes {
		byPath[cls.Path] = cls
	}
	return byPath
}

func TestExamplesServerMerge(t *testing.T) {
	classes := documentExamples(t, Options{})

	server := classes["examples.Server"]
	require.NotNil(t, server)
	require.NotNil(t, server.Docstring)

	params := server.Docstring.FindSection(docs.SectionParameters)
	require.NotNil(t, params)
	assert.Equal(t, []string{"Host", "Port", "Timeout"}, entryNames(params))

	// The hand-written entry survives the merge untouched.
	assert.Equal(t, "address the preview server binds to.", params.Fields[0].Description)

	// Port is documented through its tag, Timeout through its doc comment.
	assert.Equal(t, "listen port", params.Fields[1].Description)
	assert.Equal(t, "8080", params.Fields[1].Value)
	assert.Equal(t, "connect timeout in seconds", params.Fields[2].Description)
	assert.Equal(t, "30", params.Fields[2].Value)

	attrs := server.Docstring.FindSection(docs.SectionAttributes)
	require.NotNil(t, attrs)
	assert.Equal(t, []string{"TLS"}, entryNames(attrs))
}

func TestExamplesRetryFactory(t *testing.T) {
	classes := documentExamples(t, Options{})

	retry := classes["examples.Retry"]
	require.NotNil(t, retry)
	params := retry.Docstring.FindSection(docs.SectionParameters)
	require.NotNil(t, params)
	require.Equal(t, []string{"Attempts", "Backoff"}, entryNames(params))

	assert.Equal(t, "3", params.Fields[0].Value)
	assert.Equal(t, "250ms", params.Fields[1].Value)
	assert.Equal(t, "time.Duration", params.Fields[1].Annotation.String())
}

func TestExamplesPipelineFielder(t *testing.T) {
	classes := documentExamples(t, Options{IncludePrivate: true})

	pipeline := classes["examples.Pipeline"]
	require.NotNil(t, pipeline)
	params := pipeline.Docstring.FindSection(docs.SectionParameters)
	require.NotNil(t, params)
	require.Equal(t, []string{"Name", "Workers"}, entryNames(params))

	// Workers has no description of its own; the metadata mapping supplies
	// one.
	assert.Equal(t, "worker pool size", params.Fields[1].Description)
	assert.Equal(t, "4", params.Fields[1].Value)

	attrs := pipeline.Docstring.FindSection(docs.SectionAttributes)
	require.NotNil(t, attrs)
	assert.Equal(t, []string{"state"}, entryNames(attrs))
}

func TestExamplesSkippedClasses(t *testing.T) {
	classes := documentExamples(t, Options{})

	for _, path := range []string{"examples.Clock", "examples.Draft"} {
		cls := classes[path]
		require.NotNil(t, cls, path)
		if cls.Docstring == nil {
			continue
		}
		assert.Nil(t, cls.Docstring.FindSection(docs.SectionParameters), path)
		assert.Nil(t, cls.Docstring.FindSection(docs.SectionAttributes), path)
	}
}
