package testsupport

import (
	"context"
	"sync"
)

// Call records one command issued through FakeExecutor.
type Call struct {
	Dir  string
	Name string
	Args []string
}

// FakeExecutor records commands and hands them to Handler, which may create
// the files the real tool would have produced.
type FakeExecutor struct {
	Handler func(call Call) (string, error)

	mu    sync.Mutex
	calls []Call
}

func (f *FakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return f.ExecuteInDir(ctx, "", name, args...)
}

func (f *FakeExecutor) ExecuteInDir(_ context.Context, dir string, name string, args ...string) (string, error) {
	call := Call{Dir: dir, Name: name, Args: append([]string(nil), args...)}

	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()

	if f.Handler == nil {
		return "", nil
	}
	return f.Handler(call)
}

// Calls returns a copy of every recorded call in order.
func (f *FakeExecutor) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// CallsTo filters Calls by command name.
func (f *FakeExecutor) CallsTo(name string) []Call {
	var out []Call
	for _, c := range f.Calls() {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// ArgAfter returns the argument following flag, or "" when flag is absent.
func (c Call) ArgAfter(flag string) string {
	for i := 0; i < len(c.Args)-1; i++ {
		if c.Args[i] == flag {
			return c.Args[i+1]
		}
	}
	return ""
}

// LastArg is the output path for ffmpeg-style invocations.
func (c Call) LastArg() string {
	if len(c.Args) == 0 {
		return ""
	}
	return c.Args[len(c.Args)-1]
}
