package vdom

import "github.com/pkg/errors"

// ErrMountTargetUnavailable is returned when the hosting document cannot
// supply an element to attach a rendered tree to.
var ErrMountTargetUnavailable = errors.New("mount target unavailable")

// Target is a document element that rendered trees are attached to.
type Target interface {
	// Clear removes every child of the target.
	Clear()

	// Append materializes n and appends it as the last child of the target.
	Append(n *VNode) error
}

// Host resolves mount selectors to targets.
// Implementations return an error wrapping ErrMountTargetUnavailable when
// there is no document or no element matches.
type Host interface {
	Lookup(selector string) (Target, error)
}

// TargetUnavailable wraps ErrMountTargetUnavailable with the selector and a reason.
func TargetUnavailable(selector, reason string) error {
	return errors.Wrapf(ErrMountTargetUnavailable, "%s (selector %q)", reason, selector)
}
