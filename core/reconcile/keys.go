package reconcile

import "strings"

// DefaultPartition is assumed for keys that carry no partition.
const DefaultPartition = "Common"

// KeyStrategy converts a raw key into a canonical "/Partition/Name" path.
// It returns false when the raw key is not in the encoding it understands.
type KeyStrategy struct {
	Name    string
	Convert func(raw string) (string, bool)
}

// KeyStrategies is the ordered list of encodings tried by Normalize and
// Resolve. Earlier strategies win.
var KeyStrategies = []KeyStrategy{
	{Name: "canonical", Convert: canonicalKey},
	{Name: "composite", Convert: compositeKey},
	{Name: "tilde", Convert: tildeKey},
	{Name: "tilde-short", Convert: tildeShortKey},
	{Name: "relative", Convert: relativeKey},
	{Name: "bare", Convert: bareKey},
}

// Normalize returns the canonical form of raw using the first strategy
// that accepts it. Normalize is idempotent.
func Normalize(raw string) string {
	raw = strings.TrimSpace(raw)
	for _, s := range KeyStrategies {
		if key, ok := s.Convert(raw); ok {
			return key
		}
	}
	return raw
}

// Candidates returns the distinct canonical keys produced by every strategy
// that accepts raw, in strategy order.
func Candidates(raw string) []string {
	raw = strings.TrimSpace(raw)
	var out []string
	seen := make(map[string]struct{})
	for _, s := range KeyStrategies {
		key, ok := s.Convert(raw)
		if !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}

// Resolve returns the first candidate of raw for which known reports true.
// An exact match of raw itself is tried before any conversion.
func Resolve(raw string, known func(key string) bool) (string, bool) {
	if raw == "" {
		return "", false
	}
	if known(raw) {
		return raw, true
	}
	for _, key := range Candidates(raw) {
		if known(key) {
			return key, true
		}
	}
	return "", false
}

// canonicalKey accepts "/Partition/Name" (and deeper folder paths) as is.
func canonicalKey(raw string) (string, bool) {
	if !strings.HasPrefix(raw, "/") || strings.Contains(raw, "~") || strings.Contains(raw, "://") {
		return "", false
	}
	trimmed := strings.Trim(raw, "/")
	if trimmed == "" {
		return "", false
	}
	if !strings.Contains(trimmed, "/") {
		return "/" + DefaultPartition + "/" + trimmed, true
	}
	return "/" + trimmed, true
}

// compositeKey accepts stats entry keys such as
// "https://localhost/mgmt/tm/ltm/virtual/~Common~vs_web/stats".
func compositeKey(raw string) (string, bool) {
	if !strings.Contains(raw, "://") && !strings.Contains(raw, "/mgmt/") {
		return "", false
	}
	p := raw
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	p = strings.TrimSuffix(strings.TrimSuffix(p, "/"), "/stats")
	segment := p
	if i := strings.LastIndex(p, "/"); i >= 0 {
		segment = p[i+1:]
	}
	if segment == "" {
		return "", false
	}
	if key, ok := tildeKey(segment); ok {
		return key, true
	}
	return bareKey(segment)
}

// tildeKey accepts "~Partition~Folder~Name", keeping every segment.
func tildeKey(raw string) (string, bool) {
	if !strings.HasPrefix(raw, "~") || strings.Contains(raw, "/") {
		return "", false
	}
	parts := tildeSegments(raw)
	if len(parts) < 2 {
		return "", false
	}
	return "/" + strings.Join(parts, "/"), true
}

// tildeShortKey accepts any string containing tildes and keeps only the last
// two tilde-delimited segments. Extra URL segments in front are ignored.
func tildeShortKey(raw string) (string, bool) {
	if !strings.Contains(raw, "~") {
		return "", false
	}
	if i := strings.LastIndex(raw, "/"); i >= 0 && strings.Contains(raw[:i], "~") {
		// "~P~N/stats": drop whatever trails the tilde path.
		raw = raw[:i]
	}
	parts := tildeSegments(raw)
	switch len(parts) {
	case 0:
		return "", false
	case 1:
		return "/" + DefaultPartition + "/" + parts[0], true
	}
	last := parts[len(parts)-2:]
	if i := strings.LastIndex(last[0], "/"); i >= 0 {
		last[0] = last[0][i+1:]
	}
	if last[0] == "" {
		return "/" + DefaultPartition + "/" + last[1], true
	}
	return "/" + last[0] + "/" + last[1], true
}

// relativeKey accepts "Partition/Name" without the leading slash.
func relativeKey(raw string) (string, bool) {
	if strings.HasPrefix(raw, "/") || !strings.Contains(raw, "/") || strings.ContainsAny(raw, "~:") {
		return "", false
	}
	return "/" + strings.Trim(raw, "/"), true
}

// bareKey accepts a plain "Name" and places it in the default partition.
func bareKey(raw string) (string, bool) {
	if raw == "" || strings.ContainsAny(raw, "/~") {
		return "", false
	}
	return "/" + DefaultPartition + "/" + raw, true
}

func tildeSegments(raw string) []string {
	var parts []string
	for _, p := range strings.Split(raw, "~") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
