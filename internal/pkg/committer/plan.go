package committer

// Write is a single key/value write inside a Plan. Value is the already
// encoded JSON document.
type Write struct {
	Key   string
	Value []byte
}

// Plan collects the slice writes produced by one store operation so a backend
// can apply them in one batch.
type Plan struct {
	writes []Write
	index  map[string]int
}

func NewPlan() *Plan {
	return &Plan{
		writes: make([]Write, 0),
		index:  make(map[string]int),
	}
}

// Add appends a write. A second write to the same key replaces the first one
// in place so the plan never carries two values for a key.
func (p *Plan) Add(key string, value []byte) {
	if key == "" {
		return
	}
	if i, ok := p.index[key]; ok {
		p.writes[i].Value = value
		return
	}
	p.index[key] = len(p.writes)
	p.writes = append(p.writes, Write{Key: key, Value: value})
}

func (p *Plan) IsEmpty() bool {
	return p == nil || len(p.writes) == 0
}

func (p *Plan) Writes() []Write {
	if p == nil {
		return nil
	}
	return p.writes
}

func (p *Plan) Keys() []string {
	keys := make([]string, 0, len(p.Writes()))
	for _, w := range p.Writes() {
		keys = append(keys, w.Key)
	}
	return keys
}
