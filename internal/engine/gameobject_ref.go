package engine

// GameObjectRef is a weak reference to a GameObject by UID.
// It never keeps the object alive; resolve it against the scene each time.
type GameObjectRef struct {
	UID uint64 // UID of the referenced GameObject (0 = none)
}

// Get resolves the reference to the actual GameObject.
// Returns nil if the reference is empty (UID = 0) or if the GameObject doesn't exist.
func (r GameObjectRef) Get(scene *Scene) *GameObject {
	if r.UID == 0 || scene == nil {
		return nil
	}
	return scene.FindByUID(r.UID)
}

// IsValid returns true if the reference points to something (UID != 0).
// Note: This doesn't check if the GameObject actually exists in the scene.
func (r GameObjectRef) IsValid() bool {
	return r.UID != 0
}

// Set sets the reference to point to the given GameObject.
// Pass nil to clear the reference.
func (r *GameObjectRef) Set(g *GameObject) {
	if g == nil {
		r.UID = 0
	} else {
		r.UID = g.UID
	}
}

// Clear clears the reference (sets UID to 0).
func (r *GameObjectRef) Clear() {
	r.UID = 0
}

// ComponentRef is a weak reference to a component on a GameObject.
// ComponentUID 0 means the GameObject's own Transform.
type ComponentRef struct {
	ObjectUID    uint64
	ComponentUID uint64
}

// RefTo builds a handle to c on g. A nil c refers to g's Transform.
func RefTo(g *GameObject, c Component) ComponentRef {
	ref := ComponentRef{}
	if g != nil {
		ref.ObjectUID = g.UID
	}
	if c != nil {
		ref.ComponentUID = c.UID()
	}
	return ref
}

// Object returns the GameObject part of the handle.
func (r ComponentRef) Object() GameObjectRef {
	return GameObjectRef{UID: r.ObjectUID}
}

// IsTransform reports whether the handle targets the Transform rather than a component.
func (r ComponentRef) IsTransform() bool {
	return r.ComponentUID == 0
}
