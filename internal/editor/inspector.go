package editor

import (
	"reflect"

	"mirgo/internal/editvalue"
	"mirgo/internal/engine"
	"mirgo/internal/history"
)

const transformLabel = "Transform"

// Section is one inspector block: the Transform or a single component.
type Section struct {
	Title     string
	Component engine.Component // nil for the Transform section
	Owner     engine.ComponentRef
	Fields    []editvalue.NamedRef
}

// Inspect lists the editable fields of obj, Transform first.
func Inspect(obj *engine.GameObject) []Section {
	if obj == nil {
		return nil
	}
	sections := []Section{{
		Title: transformLabel,
		Owner: engine.RefTo(obj, nil),
		Fields: []editvalue.NamedRef{
			{Label: "Position", Ref: editvalue.Of(&obj.Transform.Position)},
			{Label: "Rotation", Ref: editvalue.Of(&obj.Transform.Rotation)},
			{Label: "Scale", Ref: editvalue.Of(&obj.Transform.Scale)},
		},
	}}
	for _, comp := range obj.Components() {
		sections = append(sections, Section{
			Title:     ComponentLabel(comp),
			Component: comp,
			Owner:     engine.RefTo(obj, comp),
			Fields:    editvalue.Fields(comp),
		})
	}
	return sections
}

// ComponentLabel is the type name of comp followed by its custom name, if set.
func ComponentLabel(comp engine.Component) string {
	if comp == nil {
		return transformLabel
	}
	var name string
	if n, ok := comp.(engine.TypeNamer); ok {
		name = n.TypeName()
	} else {
		t := reflect.TypeOf(comp)
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		name = t.Name()
	}
	if c, ok := comp.(engine.Renamer); ok && c.GetCustomName() != "" {
		name += " " + c.GetCustomName()
	}
	return name
}

// BeginFieldEdit starts capturing field of section. An open capture is
// settled first, so a change already made to another field is recorded
// rather than replaced. The component label is taken now so later renames
// do not rewrite history.
func (c *Context) BeginFieldEdit(section Section, field editvalue.NamedRef) {
	c.settle()
	c.Session.BeginEdit(field.Ref, field.Label, section.Title, section.Owner)
}

// EndFieldEdit commits the capture in progress. It returns the recorded
// action, or nil when nothing changed or nothing was being captured.
func (c *Context) EndFieldEdit() *history.Action {
	a, err := c.Session.EndEdit()
	if err != nil {
		c.logger.Printf("end edit: %v", err)
		return nil
	}
	return a
}

// AbandonFieldEdit restores the captured field to its before value and drops the capture.
func (c *Context) AbandonFieldEdit() {
	if p := c.Session.Pending(); p != nil {
		if err := p.Ref.Write(p.Before); err != nil {
			c.logger.Printf("abandon edit: %v", err)
		}
	}
	c.Session.Abandon()
}

// SetField records a one-shot change such as a checkbox toggle.
func (c *Context) SetField(section Section, field editvalue.NamedRef, v editvalue.Value) *history.Action {
	c.BeginFieldEdit(section, field)
	if err := field.Ref.Write(v); err != nil {
		c.logger.Printf("set %s: %v", field.Label, err)
		c.Session.Abandon()
		return nil
	}
	c.Touch(section, field.Label)
	return c.EndFieldEdit()
}

// Touch refreshes derived state after the UI wrote a field directly, the same
// way undo and redo do after replaying one.
func (c *Context) Touch(section Section, label string) {
	obj, comp, ok := c.Scene.ResolveComponent(section.Owner)
	if !ok {
		return
	}
	obj.MarkTransformDirty()
	if l, ok := comp.(engine.EditListener); ok {
		l.OnEditApplied(label)
	}
	c.SceneDirty = true
}
