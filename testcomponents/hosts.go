package testcomponents

import (
	"github.com/vcrobe/ecomarket/vdom"
)

// RecordingHost is a vdom.Host with a single mount element. It records the
// trees appended to it and how many times it was cleared.
type RecordingHost struct {
	// Selector is the only selector that resolves. Empty matches "body".
	Selector string

	Lookups  int
	Clears   int
	Attached []*vdom.VNode

	// AppendErr, if set, is returned from every Append.
	AppendErr error
}

var _ vdom.Host = (*RecordingHost)(nil)

// Lookup resolves Selector to the recording target.
func (h *RecordingHost) Lookup(selector string) (vdom.Target, error) {
	h.Lookups++
	want := h.Selector
	if want == "" {
		want = "body"
	}
	if selector != want {
		return nil, vdom.TargetUnavailable(selector, "mount element not found")
	}
	return (*recordingTarget)(h), nil
}

type recordingTarget RecordingHost

func (t *recordingTarget) Clear() {
	t.Clears++
	t.Attached = nil
}

func (t *recordingTarget) Append(n *vdom.VNode) error {
	if t.AppendErr != nil {
		return t.AppendErr
	}
	t.Attached = append(t.Attached, n)
	return nil
}

// MissingHost models an environment with no document: every lookup fails.
type MissingHost struct {
	Lookups int
}

var _ vdom.Host = (*MissingHost)(nil)

// Lookup always fails with vdom.ErrMountTargetUnavailable.
func (h *MissingHost) Lookup(selector string) (vdom.Target, error) {
	h.Lookups++
	return nil, vdom.TargetUnavailable(selector, "no document")
}
