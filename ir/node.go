package ir

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String string
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromString(v string) *Node {
	return FromStringAt(&Node{}, v)
}

func FromStringAt(p *Node, v string) *Node {
	p.Type = StringType
	p.String = v
	return p
}

func NewObject() *Node {
	return &Node{Type: ObjectType}
}

func FromKeyVals(kvs ...KeyVal) *Node {
	res := NewObject()
	for _, kv := range kvs {
		res.Set(kv.Key, kv.Val)
	}
	return res
}

func (y *Node) KeyVals() []KeyVal {
	res := make([]KeyVal, len(y.Fields))
	for i, f := range y.Fields {
		res[i] = KeyVal{Key: f.String, Val: y.Values[i]}
	}
	return res
}

func (y *Node) Keys() []string {
	res := make([]string, len(y.Fields))
	for i, f := range y.Fields {
		res[i] = f.String
	}
	return res
}

func (y *Node) Len() int {
	return len(y.Fields)
}

func (y *Node) index(key string) int {
	for i, f := range y.Fields {
		if f.String == key {
			return i
		}
	}
	return -1
}

// Get returns the value under key, or nil.
func (y *Node) Get(key string) *Node {
	if y.Type != ObjectType {
		return nil
	}
	i := y.index(key)
	if i == -1 {
		return nil
	}
	return y.Values[i]
}

// Set places v under key. An existing key keeps its position and has its
// value replaced; a new key is appended.
func (y *Node) Set(key string, v *Node) *Node {
	y.Type = ObjectType
	i := y.index(key)
	if i == -1 {
		i = len(y.Fields)
		y.Fields = append(y.Fields, &Node{
			Parent:      y,
			ParentIndex: i,
			ParentField: key,
			Type:        StringType,
			String:      key,
		})
		y.Values = append(y.Values, v)
	} else {
		y.Values[i] = v
	}
	v.Parent = y
	v.ParentIndex = i
	v.ParentField = key
	return y
}

// PutObject places a new empty object under key, replacing any existing
// value, and returns it.
func (y *Node) PutObject(key string) *Node {
	res := NewObject()
	y.Set(key, res)
	return res
}

// Delete removes key, returning the removed value or nil.
func (y *Node) Delete(key string) *Node {
	i := y.index(key)
	if i == -1 {
		return nil
	}
	v := y.Values[i]
	y.Fields = append(y.Fields[:i], y.Fields[i+1:]...)
	y.Values = append(y.Values[:i], y.Values[i+1:]...)
	y.reindex(i)
	v.Parent = nil
	v.ParentIndex = 0
	v.ParentField = ""
	return v
}

func (y *Node) reindex(from int) {
	for i := from; i < len(y.Fields); i++ {
		y.Fields[i].ParentIndex = i
		y.Values[i].ParentIndex = i
	}
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.String = y.String
	dst.Fields = nil
	dst.Values = nil
	for _, kv := range y.KeyVals() {
		dst.Set(kv.Key, kv.Val.Clone())
	}
	return dst
}
