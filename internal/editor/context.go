// Package editor is the in-engine scene editor: selection, inspector field
// editing, undo/redo shortcuts and the history panel.
package editor

import (
	"io"
	"log"
	"strings"

	"mirgo/internal/engine"
	"mirgo/internal/history"

	"github.com/prometheus/client_golang/prometheus"
)

// Context owns the editing state of one editor session. Everything that
// records or replays edits receives it explicitly.
type Context struct {
	Scene    *engine.Scene
	History  *history.Stack
	Session  *history.Session
	Config   Config
	Registry *prometheus.Registry

	// SceneDirty is set whenever history changes live values and cleared on save.
	SceneDirty bool

	logger *log.Logger
}

// NewContext builds a context over scene. Diagnostics go to logOut.
func NewContext(scene *engine.Scene, cfg Config, logOut io.Writer) *Context {
	if logOut == nil {
		logOut = io.Discard
	}
	historyOut := logOut
	if !cfg.LogSkippedEdits {
		historyOut = io.Discard
	}

	reg := prometheus.NewRegistry()
	stack := history.NewStack(scene,
		history.WithLimit(cfg.HistoryLimit),
		history.WithLogger(log.New(historyOut, "History: ", log.LstdFlags)),
		history.WithMetrics(history.NewMetrics(reg)),
	)

	c := &Context{
		Scene:    scene,
		History:  stack,
		Session:  history.NewSession(stack),
		Config:   cfg,
		Registry: reg,
		logger:   log.New(logOut, "Editor: ", log.LstdFlags),
	}
	stack.Changed.AddListener(func(ch history.Change) {
		if ch.Kind != history.ChangeCleared {
			c.SceneDirty = true
		}
	})
	return c
}

// Undo settles any open field edit, then steps the head back.
func (c *Context) Undo() bool {
	c.settle()
	return c.History.Undo()
}

// Redo settles any open field edit, then steps the head forward.
func (c *Context) Redo() bool {
	c.settle()
	return c.History.Redo()
}

// settle commits a capture whose field already changed and drops one that
// did not, so the head never moves under an open edit.
func (c *Context) settle() {
	if !c.Session.IsCapturing() {
		return
	}
	if c.Session.IsPendingCommit() {
		c.EndFieldEdit()
		return
	}
	c.Session.Abandon()
}

// ClearHistory drops all entries and any edit in progress.
func (c *Context) ClearHistory() {
	c.Session.Abandon()
	c.History.Clear()
}

// Destroy removes obj from the scene. Pending edits on it are abandoned;
// recorded ones stay in history and become inert when replayed.
func (c *Context) Destroy(obj *engine.GameObject) {
	if obj == nil {
		return
	}
	if p := c.Session.Pending(); p != nil && p.Owner.ObjectUID == obj.UID {
		c.Session.Abandon()
	}
	c.Scene.Destroy(obj)
	c.SceneDirty = true
	c.logger.Printf("Destroyed %s", obj.Name)
}

// RemoveComponent detaches the component of section from its object. Its
// recorded edits stay in history and become inert when replayed.
func (c *Context) RemoveComponent(section Section) bool {
	obj, comp, ok := c.Scene.ResolveComponent(section.Owner)
	if !ok || comp == nil {
		return false
	}
	if p := c.Session.Pending(); p != nil && p.Owner == section.Owner {
		c.Session.Abandon()
	}
	if !obj.RemoveComponent(comp) {
		return false
	}
	c.SceneDirty = true
	c.logger.Printf("Removed %s from %s", section.Title, obj.Name)
	return true
}

// RenameComponent sets the custom name shown after the component's type name.
// Renames are not recorded; entries keep the label they were recorded with.
func (c *Context) RenameComponent(section Section, name string) bool {
	_, comp, ok := c.Scene.ResolveComponent(section.Owner)
	if !ok {
		return false
	}
	r, ok := comp.(engine.Renamer)
	if !ok {
		return false
	}
	r.SetCustomName(strings.TrimSpace(name))
	c.SceneDirty = true
	return true
}
