// keys.go -- dedup helpers callers run before Build/Builder.Freeze
//
// (c) Sudhi Herle 2018
//
// License GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package phf

// Uniq returns keys with duplicates removed, preserving the order of
// first occurrence. Build panics on a duplicate key; callers that cannot
// guarantee a unique input set should run it through Uniq or UniqBytes
// first.
func Uniq[K comparable](keys []K) []K {
	seen := make(map[K]struct{}, len(keys))
	out := make([]K, 0, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// UniqBytes is Uniq for BytesKey, which is a slice and so not comparable
// with Go's built-in map key machinery.
func UniqBytes(keys []BytesKey) []BytesKey {
	seen := make(map[string]struct{}, len(keys))
	out := make([]BytesKey, 0, len(keys))
	for _, k := range keys {
		s := string(k)
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, k)
	}
	return out
}
