package workflow

// Marks is the set of record ids chosen for bulk deletion. Ids are kept
// in the order they were marked, which is the order they are deleted in.
type Marks struct {
	order []int64
	set   map[int64]struct{}
}

func NewMarks() *Marks {
	return &Marks{set: map[int64]struct{}{}}
}

// Toggle marks id, or unmarks it if already marked.
func (m *Marks) Toggle(id int64) {
	if m.Marked(id) {
		m.remove(id)
		return
	}
	m.Mark(id)
}

// Mark adds id if absent.
func (m *Marks) Mark(id int64) {
	if m.Marked(id) {
		return
	}
	m.set[id] = struct{}{}
	m.order = append(m.order, id)
}

func (m *Marks) remove(id int64) {
	delete(m.set, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			return
		}
	}
}

func (m *Marks) Marked(id int64) bool {
	_, ok := m.set[id]
	return ok
}

func (m *Marks) Len() int {
	return len(m.order)
}

// IDs returns a copy of the marked ids in marking order.
func (m *Marks) IDs() []int64 {
	return append([]int64(nil), m.order...)
}

func (m *Marks) Clear() {
	m.order = nil
	m.set = map[int64]struct{}{}
}

// SelectAllOrClear clears the marks when every id in ids is already
// marked, and otherwise replaces the marks with ids.
func (m *Marks) SelectAllOrClear(ids []int64) {
	all := true
	for _, id := range ids {
		if !m.Marked(id) {
			all = false
			break
		}
	}
	m.Clear()
	if all {
		return
	}
	for _, id := range ids {
		m.Mark(id)
	}
}
