package engine

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
	SetUID(uid uint64)
	UID() uint64
}

// TypeNamer is implemented by components that want a display name in the
// inspector and history log other than their Go type name.
type TypeNamer interface {
	TypeName() string
}

// EditListener is implemented by components that need to refresh derived
// state after the editor writes one of their fields (undo, redo, history jump).
type EditListener interface {
	OnEditApplied(label string)
}

// Renamer is implemented by components whose custom name can be set from the inspector.
type Renamer interface {
	GetCustomName() string
	SetCustomName(name string)
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
	uid        uint64

	// CustomName is an optional user-facing name shown next to the type name.
	CustomName string `edit:"-"`
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}

func (b *BaseComponent) SetUID(uid uint64) {
	b.uid = uid
}

func (b *BaseComponent) UID() uint64 {
	return b.uid
}

// GetCustomName returns the user-facing name set in the inspector, if any.
func (b *BaseComponent) GetCustomName() string {
	return b.CustomName
}

func (b *BaseComponent) SetCustomName(name string) {
	b.CustomName = name
}
