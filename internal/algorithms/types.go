package algorithms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/san-kum/sortvis/internal/sequence"
)

var ErrUnknownType = errors.New("algorithms: unknown algorithm type")

type Type int

const (
	Quick Type = iota
	Merge
	Bubble
	Heap
)

// Info describes an algorithm for display.
type Info struct {
	Name    string
	Key     string
	Average string
	Worst   string
}

var infos = [...]Info{
	Quick:  {Name: "Quick Sort", Key: "quick", Average: "O(n log n)", Worst: "O(n²)"},
	Merge:  {Name: "Merge Sort", Key: "merge", Average: "O(n log n)", Worst: "O(n log n)"},
	Bubble: {Name: "Bubble Sort", Key: "bubble", Average: "O(n²)", Worst: "O(n²)"},
	Heap:   {Name: "Heap Sort", Key: "heap", Average: "O(n log n)", Worst: "O(n log n)"},
}

// Types lists every algorithm in enum order.
func Types() []Type {
	return []Type{Quick, Merge, Bubble, Heap}
}

func (t Type) Valid() bool { return t >= Quick && t <= Heap }

func (t Type) Info() Info {
	if !t.Valid() {
		return Info{Name: "Unknown", Key: "unknown"}
	}
	return infos[t]
}

func (t Type) String() string { return t.Info().Name }

// Next returns the following type, wrapping around.
func (t Type) Next() Type {
	return Type((int(t) + 1) % len(infos))
}

// ParseType accepts the short key ("quick"), the key with a "sort" suffix
// ("quicksort", "quick_sort") or the display name ("Quick Sort").
func ParseType(name string) (Type, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.NewReplacer(" ", "", "_", "", "-", "").Replace(n)
	n = strings.TrimSuffix(n, "sort")
	for _, t := range Types() {
		if infos[t].Key == n {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// Result is the outcome of a single Step call.
type Result struct {
	Continue bool
	Finished bool
}

var finished = Result{Continue: false, Finished: true}

// Cursors are the stepper-specific indices shown by a visualizer. -1 means
// the cursor is not in use.
type Cursors struct {
	Current   int
	Compare   int
	Partition int
}

var noCursors = Cursors{Current: -1, Compare: -1, Partition: -1}

type Stepper interface {
	// Init derives the control state from the sequence's current contents.
	Init(s *sequence.Sequence)
	// Step performs one primitive unit of work. Once Finished has been
	// reported, further calls are no-ops.
	Step(s *sequence.Sequence) Result
	Done() bool
	Cursors() Cursors
}

// New builds an uninitialized stepper for t.
func New(t Type) (Stepper, error) {
	switch t {
	case Quick:
		return newQuick(), nil
	case Merge:
		return newMerge(), nil
	case Bubble:
		return newBubble(), nil
	case Heap:
		return newHeap(), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}
}

// progress reports the result of a step that did work.
func progress(done bool) Result {
	return Result{Continue: true, Finished: done}
}
