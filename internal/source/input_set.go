package source

import (
	"fmt"

	"fortio.org/safecast"
)

// InputID uniquely identifies a registered input within an InputSet.
type InputID uint32

// Input is a single expression submitted to the calculator: one REPL line,
// one eval argument. Inputs are always in-memory; there is no disk loading.
type Input struct {
	ID      InputID
	Name    string // display name, e.g. "repl:3" or "arg:1"
	Content []byte
}

// Snippet returns the input bytes covered by sp, clamped to the content.
func (in *Input) Snippet(sp Span) string {
	start, end := sp.Start, sp.End
	n, err := safecast.Conv[uint32](len(in.Content))
	if err != nil {
		panic(fmt.Errorf("input length overflow: %w", err))
	}
	if start > n {
		start = n
	}
	if end > n {
		end = n
	}
	return string(in.Content[start:end])
}

// InputSet registers calculator inputs and resolves spans back to them.
// Diagnostics carry only Spans; rendering asks the set for the input text.
type InputSet struct {
	inputs []Input
}

// NewInputSet creates an empty InputSet.
func NewInputSet() *InputSet {
	return &InputSet{inputs: make([]Input, 0)}
}

// Add registers an input and returns its ID.
func (set *InputSet) Add(name string, content []byte) InputID {
	lenInputs, err := safecast.Conv[uint32](len(set.inputs))
	if err != nil {
		panic(fmt.Errorf("input count overflow: %w", err))
	}
	id := InputID(lenInputs)
	set.inputs = append(set.inputs, Input{
		ID:      id,
		Name:    name,
		Content: content,
	})
	return id
}

// Get returns the input for id, or nil if the id was never issued.
func (set *InputSet) Get(id InputID) *Input {
	if int(id) >= len(set.inputs) {
		return nil
	}
	return &set.inputs[id]
}

// Len returns the number of registered inputs.
func (set *InputSet) Len() int {
	return len(set.inputs)
}
