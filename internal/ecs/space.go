package ecs

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/younwookim/pollo/internal/domain/entity"
)

// Space is the broad phase of collision detection.
// It mirrors the box of every collidable entity into a resolv grid so a pass only
// runs the exact overlap test against entities sharing a cell.
// World coordinates are shifted by an origin so spawns left of zero or above
// the screen stay inside the grid.
type Space struct {
	space   *resolv.Space
	objects map[donburi.Entity]*resolv.Object
	originX float64
	originY float64
}

// NewSpace creates a grid covering width x height world units starting at (-originX, -originY)
func NewSpace(width, height, originX, originY float64, cellSize int) *Space {
	return &Space{
		space:   resolv.NewSpace(int(width+originX), int(height+originY), cellSize, cellSize),
		objects: make(map[donburi.Entity]*resolv.Object),
		originX: originX,
		originY: originY,
	}
}

// Add inserts an entity's box
func (s *Space) Add(id donburi.Entity, r entity.Rect, tag string) {
	if _, ok := s.objects[id]; ok {
		s.Sync(id, r)
		return
	}
	obj := resolv.NewObject(r.Left+s.originX, r.Top+s.originY, r.Width(), r.Height(), tag)
	obj.SetShape(resolv.NewRectangle(0, 0, r.Width(), r.Height()))
	obj.Data = id
	s.objects[id] = obj
	s.space.Add(obj)
}

// Sync moves an entity's object to its current box
func (s *Space) Sync(id donburi.Entity, r entity.Rect) {
	obj, ok := s.objects[id]
	if !ok {
		return
	}
	obj.X = r.Left + s.originX
	obj.Y = r.Top + s.originY
	obj.W = r.Width()
	obj.H = r.Height()
	obj.Update()
}

// Remove drops an entity from the grid
func (s *Space) Remove(id donburi.Entity) {
	obj, ok := s.objects[id]
	if !ok {
		return
	}
	s.space.Remove(obj)
	delete(s.objects, id)
}

// Near returns the entities with the given tag that share a grid cell with id.
// It is a superset of the real overlaps.
func (s *Space) Near(id donburi.Entity, tag string) []donburi.Entity {
	obj, ok := s.objects[id]
	if !ok {
		return nil
	}
	check := obj.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	var out []donburi.Entity
	for _, o := range check.ObjectsByTags(tag) {
		if other, ok := o.Data.(donburi.Entity); ok {
			out = append(out, other)
		}
	}
	return out
}

// Len returns the number of tracked objects
func (s *Space) Len() int {
	return len(s.objects)
}

// Clear drops every object
func (s *Space) Clear() {
	for id := range s.objects {
		s.Remove(id)
	}
}
