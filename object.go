package threed

import "cogentcore.org/core/math32"

// Object is the capability shared by every scene node: transform by the
// composed outer matrix and append zero or more fragments to out.
//
// EmitFragments runs to completion before returning; the only shared
// mutable state during a traversal is out. Concurrent traversals of the
// same tree into distinct Buffers are safe, mutating the tree during a
// traversal is not.
type Object interface {
	EmitFragments(outer *math32.Matrix4, out *Buffer)
}

// Container groups child objects under a shared local transform. A child
// belongs to exactly one container and the containment graph must be a
// tree; the traversal is not cycle-safe.
type Container struct {
	Transform math32.Matrix4
	Objects   []Object
}

func NewContainer(objs ...Object) *Container {
	return &Container{
		Transform: *math32.Identity4(),
		Objects:   objs,
	}
}

// Add appends children in drawing order.
func (c *Container) Add(objs ...Object) {
	c.Objects = append(c.Objects, objs...)
}

// EmitFragments composes the outer transform with the container's own,
// outermost first, and recurses into the children in insertion order.
// Sequence-index bookkeeping is local to each child.
func (c *Container) EmitFragments(outer *math32.Matrix4, out *Buffer) {
	var total math32.Matrix4
	total.MulMatrices(outer, &c.Transform)
	for _, obj := range c.Objects {
		obj.EmitFragments(&total, out)
	}
}
