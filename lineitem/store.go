package lineitem

// Store is the ordered working set of one document's rows. Identity is a
// monotonic counter owned by the store; ids are never reused within a
// store's lifetime, and rows hydrated with server-assigned ids keep them.
// The store is not safe for concurrent use: one document edit session
// has exactly one writer.
type Store struct {
	mapping Mapping
	items   []Item
	index   map[int64]int
	nextID  int64
}

func NewStore(mapping Mapping) *Store {
	return &Store{
		mapping: mapping,
		index:   map[int64]int{},
		nextID:  1,
	}
}

func (s *Store) Mapping() Mapping {
	return s.mapping
}

// Insert appends a row, assigning a fresh id when the row carries none.
// Hydrating a second row under an id already present replaces the first
// in place, so the index never points past a shadowed row. Returns the
// id of the stored row.
func (s *Store) Insert(item Item) int64 {
	row := item.clone()
	if row.Qty == nil {
		row.Qty = map[Role]Quantity{}
	}
	if row.ID == 0 {
		row.ID = s.nextID
	}
	if row.ID >= s.nextID {
		s.nextID = row.ID + 1
	}
	if pos, ok := s.index[row.ID]; ok {
		s.items[pos] = row
		return row.ID
	}
	s.index[row.ID] = len(s.items)
	s.items = append(s.items, row)
	return row.ID
}

// Update runs the reconciler against one row and swaps only that row.
// Unknown ids are a silent no-op: a delete racing an in-flight edit is a
// UI race, not a business error.
func (s *Store) Update(id int64, changed Role, raw string) {
	pos, ok := s.index[id]
	if !ok {
		return
	}
	s.items[pos] = Reconcile(s.mapping, s.items[pos], changed, raw)
}

// Remove drops a row; no-op when the id is absent.
func (s *Store) Remove(id int64) {
	pos, ok := s.index[id]
	if !ok {
		return
	}
	s.items = append(s.items[:pos], s.items[pos+1:]...)
	delete(s.index, id)
	for i := pos; i < len(s.items); i++ {
		s.index[s.items[i].ID] = i
	}
}

// ReplaceAll swaps the whole list in one operation, used by cascade
// resolution and by hydration on edit. Prior contents are discarded.
func (s *Store) ReplaceAll(items []Item) {
	s.items = s.items[:0]
	s.index = map[int64]int{}
	for _, item := range items {
		s.Insert(item)
	}
}

func (s *Store) Clear() {
	s.ReplaceAll(nil)
}

// Get returns a copy of one row.
func (s *Store) Get(id int64) (Item, bool) {
	pos, ok := s.index[id]
	if !ok {
		return Item{}, false
	}
	return s.items[pos].clone(), true
}

// Items returns the rows in insertion order. The slice is a copy; rows
// share no state with the store.
func (s *Store) Items() []Item {
	out := make([]Item, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item.clone())
	}
	return out
}

func (s *Store) Len() int {
	return len(s.items)
}
