package domain

import "encoding/json"

// List is an ordered sequence of tasks. Insertion order is the only order.
type List []Task

// Len returns the number of tasks.
func (l List) Len() int {
	return len(l)
}

// Clone returns a copy that shares no backing array with l.
// The copy of an empty or nil list is an empty, non-nil list.
func (l List) Clone() List {
	out := make(List, len(l))
	copy(out, l)
	return out
}

// CheckIndex returns an *IndexError unless 0 <= i < l.Len().
func (l List) CheckIndex(i int) error {
	if i < 0 || i >= len(l) {
		return &IndexError{Index: i, Len: len(l)}
	}
	return nil
}

// Append returns a new list with t added at the end.
func (l List) Append(t Task) List {
	return append(l.Clone(), t)
}

// Insert returns a new list with t placed before the task currently at i.
// Inserting at l.Len() is not allowed; use Append.
func (l List) Insert(i int, t Task) (List, error) {
	if err := l.CheckIndex(i); err != nil {
		return nil, err
	}
	out := make(List, 0, len(l)+1)
	out = append(out, l[:i]...)
	out = append(out, t)
	out = append(out, l[i:]...)
	return out, nil
}

// Edit returns a new list with the description at i replaced.
// The completion flag is preserved.
func (l List) Edit(i int, description string) (List, error) {
	if err := l.CheckIndex(i); err != nil {
		return nil, err
	}
	out := l.Clone()
	out[i].Description = description
	return out, nil
}

// Toggle returns a new list with the completion flag at i flipped.
func (l List) Toggle(i int) (List, error) {
	if err := l.CheckIndex(i); err != nil {
		return nil, err
	}
	out := l.Clone()
	out[i].Done = !out[i].Done
	return out, nil
}

// Delete returns a new list without the task at i.
func (l List) Delete(i int) (List, error) {
	if err := l.CheckIndex(i); err != nil {
		return nil, err
	}
	out := make(List, 0, len(l)-1)
	out = append(out, l[:i]...)
	out = append(out, l[i+1:]...)
	return out, nil
}

// MarshalJSON encodes an empty or nil list as [] rather than null.
func (l List) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Task(l))
}
