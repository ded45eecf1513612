package binding

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-inputfield/pkg/dyna"
)

// MaxIndex is the highest index a path may address. It matches the default
// bound of dyna lists so posted keys cannot force unbounded growth.
const MaxIndex = dyna.MaxIndex

type segment struct {
	name  string
	index int
	// push marks a trailing "[]": every posted value fills the list in order.
	push bool
}

func (s segment) indexed() bool {
	return s.name == ""
}

func (s segment) String() string {
	if s.push {
		return "[]"
	}
	if s.indexed() {
		return "[" + strconv.Itoa(s.index) + "]"
	}
	return s.name
}

// parsePath splits paths such as "value.[0]", "tags[2]" or "[1].name" into
// segments. An empty index is only allowed at the end ("tags[]").
func parsePath(path string) ([]segment, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	var (
		segments []segment
		name     strings.Builder
	)
	flush := func() {
		if name.Len() > 0 {
			segments = append(segments, segment{name: name.String()})
			name.Reset()
		}
	}

	for i := 0; i < len(trimmed); i++ {
		ch := trimmed[i]
		switch ch {
		case '.':
			flush()
		case '[':
			flush()
			end := strings.IndexByte(trimmed[i:], ']')
			if end < 0 {
				return nil, fmt.Errorf("%w: unclosed index in %q", ErrInvalidPath, path)
			}
			raw := strings.TrimSpace(trimmed[i+1 : i+end])
			i += end
			if raw == "" {
				if i != len(trimmed)-1 {
					return nil, fmt.Errorf("%w: empty index before end of %q", ErrInvalidPath, path)
				}
				segments = append(segments, segment{push: true})
				continue
			}
			idx, err := strconv.Atoi(raw)
			if err != nil || idx < 0 {
				return nil, fmt.Errorf("%w: bad index %q in %q", ErrInvalidPath, raw, path)
			}
			if idx > MaxIndex {
				return nil, fmt.Errorf("%w: index %d exceeds %d in %q", ErrInvalidPath, idx, MaxIndex, path)
			}
			segments = append(segments, segment{index: idx})
		case ']':
			return nil, fmt.Errorf("%w: unexpected ']' in %q", ErrInvalidPath, path)
		default:
			name.WriteByte(ch)
		}
	}
	flush()

	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: %q has no segments", ErrInvalidPath, path)
	}
	return segments, nil
}
