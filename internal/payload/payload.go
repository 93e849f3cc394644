// Package payload navigates decoded JSON trees whose shape we do not control.
// Upstream responses arrive as plain any values (maps, slices, scalars); a
// missing, null or wrongly typed node reads as an absent value, never an
// error. Numeric fields coalesce to zero.
package payload

import (
	"strconv"
	"strings"
)

// Error marker shape produced by the transport layer when an upstream call
// fails: {"error": true, "status": <int>, "message": <string>}.
const (
	errorKey   = "error"
	statusKey  = "status"
	messageKey = "message"
)

// ErrorMarker builds the canonical error payload for a failed upstream call.
func ErrorMarker(status int, message string) map[string]any {
	return map[string]any{
		errorKey:   true,
		statusKey:  status,
		messageKey: message,
	}
}

// IsErrorMarker reports whether the tree is an upstream error marker.
func IsErrorMarker(tree any) bool {
	m, ok := tree.(map[string]any)
	if !ok {
		return false
	}
	flag, ok := m[errorKey].(bool)
	return ok && flag
}

// ErrorStatus returns the HTTP status recorded in an error marker, or 0.
func ErrorStatus(tree any) int {
	if !IsErrorMarker(tree) {
		return 0
	}
	return Int(tree, statusKey)
}

// ErrorMessage returns the message recorded in an error marker, or "".
func ErrorMessage(tree any) string {
	if !IsErrorMarker(tree) {
		return ""
	}
	s, _ := String(tree, messageKey)
	return s
}

// Get walks a dot-separated path of object keys and returns the node found
// there. Only map nodes are traversed; any other node type along the way
// makes the whole path absent.
func Get(tree any, path string) (any, bool) {
	node := tree
	for _, key := range strings.Split(path, ".") {
		m, ok := node.(map[string]any)
		if !ok {
			return nil, false
		}
		node, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	if node == nil {
		return nil, false
	}
	return node, true
}

// String resolves the first path holding a usable text value and returns it.
// Scalars render the way upstream wrote them; a leaf object with a "default"
// key yields that key's text, which is how the NHL API localizes names.
// Empty strings count as absent so fallback chains keep going.
func String(tree any, paths ...string) (string, bool) {
	for _, path := range paths {
		node, ok := Get(tree, path)
		if !ok {
			continue
		}
		if s, ok := asString(node); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

// Int resolves the first path holding a numeric value, coalescing to zero
// when every path misses. Numeric strings parse; fractions truncate.
func Int(tree any, paths ...string) int {
	for _, path := range paths {
		node, ok := Get(tree, path)
		if !ok {
			continue
		}
		if n, ok := asFloat(node); ok {
			return int(n)
		}
	}
	return 0
}

// Float is Int's counterpart for decimal fields, with the same coalescing.
func Float(tree any, paths ...string) float64 {
	for _, path := range paths {
		node, ok := Get(tree, path)
		if !ok {
			continue
		}
		if n, ok := asFloat(node); ok {
			return n
		}
	}
	return 0
}

// Array resolves the first path holding an array node.
func Array(tree any, paths ...string) ([]any, bool) {
	for _, path := range paths {
		node, ok := Get(tree, path)
		if !ok {
			continue
		}
		if arr, ok := node.([]any); ok {
			return arr, true
		}
	}
	return nil, false
}

func asString(node any) (string, bool) {
	switch v := node.(type) {
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case bool:
		return strconv.FormatBool(v), true
	case map[string]any:
		// Localized name objects: {"default": "...", "cs": "...", ...}
		if s, ok := v["default"].(string); ok {
			return s, true
		}
	}
	return "", false
}

func asFloat(node any) (float64, bool) {
	switch v := node.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		if n, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return n, true
		}
	}
	return 0, false
}
