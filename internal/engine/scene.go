package engine

type Scene struct {
	Name        string
	GameObjects []*GameObject
	uidMap      map[uint64]*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		uidMap:      make(map[uint64]*GameObject),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	if s.uidMap == nil {
		s.uidMap = make(map[uint64]*GameObject)
	}
	g.Scene = s
	g.destroyed = false
	s.GameObjects = append(s.GameObjects, g)
	s.uidMap[g.UID] = g
}

// RemoveGameObject removes g and all of its descendants from the scene.
func (s *Scene) RemoveGameObject(g *GameObject) {
	for _, child := range g.Children {
		s.RemoveGameObject(child)
	}
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			break
		}
	}
	delete(s.uidMap, g.UID)
	if g.Scene == s {
		g.Scene = nil
	}
}

// Destroy removes g (and descendants) from the scene and marks them destroyed.
// Any GameObjectRef or ComponentRef pointing at them stops resolving.
func (s *Scene) Destroy(g *GameObject) {
	if g == nil || g.destroyed {
		return
	}
	if g.Parent != nil {
		g.Parent.RemoveChild(g)
	}
	s.RemoveGameObject(g)
	markDestroyed(g)
}

func markDestroyed(g *GameObject) {
	g.destroyed = true
	for _, child := range g.Children {
		markDestroyed(child)
	}
}

// FindByUID is an O(1) lookup of a live GameObject.
func (s *Scene) FindByUID(uid uint64) *GameObject {
	if uid == 0 || s.uidMap == nil {
		return nil
	}
	return s.uidMap[uid]
}

// ResolveComponent resolves a weak component handle against the live scene.
// A zero ComponentUID refers to the object itself (its Transform).
func (s *Scene) ResolveComponent(ref ComponentRef) (*GameObject, Component, bool) {
	obj := s.FindByUID(ref.ObjectUID)
	if obj == nil || obj.destroyed {
		return nil, nil, false
	}
	if ref.ComponentUID == 0 {
		return obj, nil, true
	}
	c := obj.ComponentByUID(ref.ComponentUID)
	if c == nil {
		return obj, nil, false
	}
	return obj, c, true
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.GameObjects {
		g.Update(deltaTime)
	}
}
